package render_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"parador_pricing/internal/adapters/render"
	"parador_pricing/internal/app"
	"parador_pricing/internal/domain"
)

func sampleReport() app.PropertyReport {
	return app.PropertyReport{
		PropertyID: "el_hierro",
		Config: domain.HotelConfig{
			Name:            "Parador de El Hierro",
			Inventory:       domain.RoomInventory{Standard: 20, Superior: 20},
			CoffeeBreakCost: 7,
			MeetingRoomCost: 200,
		},
		Nights:   5,
		MealCost: 38,
		Rows: []app.Row{
			{
				GroupSize: 30,
				Breakdown: domain.Breakdown{
					GroupSize:              30,
					AccommodationPerPerson: 395,
					MealsPerPerson:         418,
					CoffeePerPerson:        42,
					MeetingRoomPerPerson:   200.0 / 30,
					TotalPerPerson:         1061.6666666666667,
					GrandTotal:             31850,
				},
			},
			{GroupSize: 100, Err: errors.New("group size 100 exceeds maximum capacity 80")},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteText(&buf, []app.PropertyReport{sampleReport()}))
	out := buf.String()

	assert.Contains(t, out, "Parador de El Hierro")
	assert.Contains(t, out, "Maximum capacity: 80 people")
	assert.Contains(t, out, "Stay duration: 5 nights")
	assert.Contains(t, out, "395.00€")
	assert.Contains(t, out, "1061.67€")
	assert.Contains(t, out, "unavailable (group size 100 exceeds maximum capacity 80)")
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, render.WriteXLSX(path, []app.PropertyReport{sampleReport()}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Parador de El Hierro"
	assert.Contains(t, f.GetSheetList(), sheet)

	head, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Group size", head)

	size, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "30", size)

	marker, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Contains(t, marker, "unavailable")
}
