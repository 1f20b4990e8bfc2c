package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"parador_pricing/internal/domain"
)

func TestRoomAllocation(t *testing.T) {
	rates := domain.HotelRates{
		Standard: domain.RoomRate{Shared: 158, Single: 136},
		Superior: domain.RoomRate{Shared: 181, Single: 159},
	}
	alloc := domain.RoomAllocation{
		StandardShared: 20,
		SuperiorShared: 2,
		SuperiorSingle: 1,
	}

	assert.Equal(t, 45, alloc.People())
	assert.Equal(t, 23, alloc.RoomsUsed())
	assert.InDelta(t, 5*(20*158.0+2*181.0+1*159.0), alloc.TotalCost(rates, 5), 1e-9)
}

func TestRoomRate_SharedPerPerson(t *testing.T) {
	assert.InDelta(t, 79.0, domain.RoomRate{Shared: 158, Single: 136}.SharedPerPerson(), 1e-9)
}

func TestHotelConfig_MaxCapacity(t *testing.T) {
	cfg := domain.HotelConfig{Inventory: domain.RoomInventory{Standard: 21, Superior: 24}}
	assert.Equal(t, 90, cfg.MaxCapacity())
}
