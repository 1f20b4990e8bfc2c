package app_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parador_pricing/internal/app"
	"parador_pricing/internal/domain"
)

// ---- fakes ----

type fakeCatalog struct {
	props map[string]domain.HotelConfig
}

func (f *fakeCatalog) Lookup(id string) (domain.HotelConfig, error) {
	cfg, ok := f.props[id]
	if !ok {
		return domain.HotelConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownProperty, id)
	}
	return cfg, nil
}

func (f *fakeCatalog) List() []string {
	ids := make([]string, 0, len(f.props))
	for id := range f.props {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func newPricing() *app.Pricing {
	cat := &fakeCatalog{props: map[string]domain.HotelConfig{"el_hierro": elHierro()}}
	return app.NewPricing(cat, 38)
}

// ---- tests ----

func TestBreakdown_ReferenceScenario(t *testing.T) {
	b, err := newPricing().Breakdown("el_hierro", 30, 5)
	require.NoError(t, err)

	assert.Equal(t, domain.RoomAllocation{StandardShared: 15}, b.Allocation)
	assert.InDelta(t, 395.0, b.AccommodationPerPerson, 1e-9) // 5 nights * 15 rooms * 158 / 30
	assert.InDelta(t, 418.0, b.MealsPerPerson, 1e-9)         // (2 + 3*3) meals * 38
	assert.InDelta(t, 42.0, b.CoffeePerPerson, 1e-9)         // 2 breaks * 3 middle days * 7
	assert.InDelta(t, 200.0/30, b.MeetingRoomPerPerson, 1e-9)
	assert.InDelta(t, 395.0+418.0+42.0+200.0/30, b.TotalPerPerson, 1e-9)

	assert.InDelta(t, 11850.0, b.AccommodationTotal, 1e-9)
	assert.InDelta(t, 200.0, b.MeetingRoomTotal, 1e-9)
	assert.InDelta(t, b.TotalPerPerson*30, b.GrandTotal, 1e-6)
}

// Reconstructing the accommodation cost from the returned allocation must
// reproduce the aggregator's per-person figure.
func TestBreakdown_AccommodationRoundTrip(t *testing.T) {
	p := newPricing()
	for _, n := range []int{1, 7, 30, 45, 80} {
		b, err := p.Breakdown("el_hierro", n, 5)
		require.NoError(t, err, "n=%d", n)
		rebuilt := b.Allocation.TotalCost(elHierro().Rates, 5) / float64(n)
		assert.InDelta(t, b.AccommodationPerPerson, rebuilt, 1e-9, "n=%d", n)
	}
}

func TestMealsPerPerson(t *testing.T) {
	p := newPricing()

	got, err := p.MealsPerPerson(2)
	require.NoError(t, err)
	assert.InDelta(t, 76.0, got, 1e-9) // arrival dinner + departure breakfast only

	_, err = p.MealsPerPerson(1)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestBreakdown_TwoNightsHasNoCoffee(t *testing.T) {
	b, err := newPricing().Breakdown("el_hierro", 30, 2)
	require.NoError(t, err)
	assert.Zero(t, b.CoffeePerPerson)
	assert.Zero(t, b.CoffeeTotal)
}

func TestPricing_Errors(t *testing.T) {
	p := newPricing()

	_, err := p.Breakdown("tenerife", 30, 5)
	assert.ErrorIs(t, err, domain.ErrUnknownProperty)

	_, err = p.Breakdown("el_hierro", 30, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = p.Breakdown("el_hierro", 500, 5)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	_, err = p.TotalPerPerson("el_hierro", 500, 5)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	_, err = p.AllocateRooms("tenerife", 30)
	assert.ErrorIs(t, err, domain.ErrUnknownProperty)
}

func TestTotalPerPerson_MatchesBreakdown(t *testing.T) {
	p := newPricing()
	total, err := p.TotalPerPerson("el_hierro", 45, 5)
	require.NoError(t, err)
	b, err := p.Breakdown("el_hierro", 45, 5)
	require.NoError(t, err)
	assert.InDelta(t, b.TotalPerPerson, total, 1e-9)
}
