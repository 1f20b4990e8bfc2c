package app

import (
	"fmt"

	"parador_pricing/internal/domain"
)

// Meal and coffee-break cadence over a stay: one meal on the arrival night,
// one on the departure day, three meals and two coffee breaks on each full
// middle day.
const (
	mealsArrivalAndDeparture = 2
	mealsPerMiddleDay        = 3
	coffeeBreaksPerMiddleDay = 2
)

// Pricing composes the four cost components for one (property, group size,
// nights) request. Every method is pure given its inputs; nothing is cached
// between calls.
type Pricing struct {
	catalog  domain.PropertyCatalog
	mealCost float64 // per meal per person
}

func NewPricing(catalog domain.PropertyCatalog, mealCost float64) *Pricing {
	return &Pricing{catalog: catalog, mealCost: mealCost}
}

// MealCost is the configured price of a single meal per person.
func (p *Pricing) MealCost() float64 { return p.mealCost }

// Properties lists the catalog's property identifiers in sorted order.
func (p *Pricing) Properties() []string { return p.catalog.List() }

// AllocateRooms resolves the property and runs the cost-minimizing room
// allocation for the group.
func (p *Pricing) AllocateRooms(propertyID string, groupSize int) (domain.RoomAllocation, error) {
	cfg, err := p.catalog.Lookup(propertyID)
	if err != nil {
		return domain.RoomAllocation{}, err
	}
	return NewAllocator(cfg).Allocate(groupSize)
}

// MealsPerPerson prices all meals of the stay for one person. The cadence is
// undefined below 2 nights.
func (p *Pricing) MealsPerPerson(nights int) (float64, error) {
	if nights < 2 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidDuration, nights)
	}
	meals := mealsArrivalAndDeparture + mealsPerMiddleDay*(nights-2)
	return float64(meals) * p.mealCost, nil
}

// TotalPerPerson is the sum of all four components for one person.
func (p *Pricing) TotalPerPerson(propertyID string, groupSize, nights int) (float64, error) {
	b, err := p.Breakdown(propertyID, groupSize, nights)
	if err != nil {
		return 0, err
	}
	return b.TotalPerPerson, nil
}

// Breakdown computes the full cost decomposition for one request.
func (p *Pricing) Breakdown(propertyID string, groupSize, nights int) (domain.Breakdown, error) {
	cfg, err := p.catalog.Lookup(propertyID)
	if err != nil {
		return domain.Breakdown{}, err
	}
	meals, err := p.MealsPerPerson(nights)
	if err != nil {
		return domain.Breakdown{}, err
	}
	alloc, err := NewAllocator(cfg).Allocate(groupSize)
	if err != nil {
		return domain.Breakdown{}, err
	}

	n := float64(groupSize)
	b := domain.Breakdown{
		PropertyID: propertyID,
		GroupSize:  groupSize,
		Nights:     nights,
		Allocation: alloc,

		AccommodationPerPerson: alloc.TotalCost(cfg.Rates, nights) / n,
		MealsPerPerson:         meals,
		CoffeePerPerson:        float64(coffeeBreaksPerMiddleDay*(nights-2)) * cfg.CoffeeBreakCost,
		MeetingRoomPerPerson:   cfg.MeetingRoomCost / n,
	}
	b.TotalPerPerson = b.AccommodationPerPerson + b.MealsPerPerson + b.CoffeePerPerson + b.MeetingRoomPerPerson

	b.AccommodationTotal = b.AccommodationPerPerson * n
	b.MealsTotal = b.MealsPerPerson * n
	b.CoffeeTotal = b.CoffeePerPerson * n
	b.MeetingRoomTotal = cfg.MeetingRoomCost
	b.GrandTotal = b.TotalPerPerson * n
	return b, nil
}
