package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"parador_pricing/internal/app"
)

var xlsxHeader = []string{
	"Group size", "Accommodation/person", "Meals/person", "Coffee/person",
	"Meeting/person", "Total/person", "Total",
}

// WriteXLSX writes the comparison reports as a workbook, one sheet per
// property.
func WriteXLSX(path string, reports []app.PropertyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, rep := range reports {
		sheet := sheetName(rep.Config.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		for col, h := range xlsxHeader {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
		}

		for rowIdx, row := range rep.Rows {
			values := rowValues(row)
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
		}
	}
	return f.SaveAs(path)
}

func rowValues(row app.Row) []any {
	if row.Err != nil {
		return []any{row.GroupSize, fmt.Sprintf("unavailable (%v)", row.Err), "-", "-", "-", "-", "-"}
	}
	b := row.Breakdown
	return []any{
		row.GroupSize,
		b.AccommodationPerPerson, b.MealsPerPerson, b.CoffeePerPerson,
		b.MeetingRoomPerPerson, b.TotalPerPerson, b.GrandTotal,
	}
}

// Sheet names are capped at 31 characters by the xlsx format.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
