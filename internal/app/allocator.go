package app

import (
	"fmt"
	"sort"

	"parador_pricing/internal/domain"
)

// Allocator seats a group in one property's rooms at minimal nightly cost.
//
// The policy is a deterministic two-phase greedy: first fill shared rooms,
// cheapest per person first, two people at a time; then seat whoever is left
// in single rooms, again cheapest first. The phase order rests on the
// precondition that shared occupancy undercuts single occupancy per person
// in every category. The catalog checks rate tables against that assumption
// at construction; the allocator itself does not re-verify it between phases.
type Allocator struct {
	cfg domain.HotelConfig
}

func NewAllocator(cfg domain.HotelConfig) *Allocator { return &Allocator{cfg: cfg} }

type category int

const (
	catStandard category = iota
	catSuperior
)

// rankByCost orders the two categories ascending by cost per person. The
// input slice is standard-first and the sort is stable, so a tie always
// keeps standard ahead of superior.
func rankByCost(standard, superior float64) [2]category {
	ranked := []category{catStandard, catSuperior}
	cost := map[category]float64{catStandard: standard, catSuperior: superior}
	sort.SliceStable(ranked, func(i, j int) bool { return cost[ranked[i]] < cost[ranked[j]] })
	return [2]category{ranked[0], ranked[1]}
}

// Allocate houses exactly n people, or reports why it cannot. Identical
// inputs always produce the identical allocation.
func (al *Allocator) Allocate(n int) (domain.RoomAllocation, error) {
	if n <= 0 {
		return domain.RoomAllocation{}, fmt.Errorf("%w: got %d", domain.ErrInvalidGroupSize, n)
	}
	if maxCap := al.cfg.MaxCapacity(); n > maxCap {
		return domain.RoomAllocation{}, fmt.Errorf("%w: group size %d exceeds maximum capacity %d",
			domain.ErrCapacityExceeded, n, maxCap)
	}

	var alloc domain.RoomAllocation
	remaining := al.fillShared(&alloc, n)
	remaining = al.fillSingle(&alloc, remaining)
	if remaining > 0 {
		// Unreachable while every room sleeps 2, but the invariant is
		// cheap to state and the error names both sides if it ever trips.
		return domain.RoomAllocation{}, fmt.Errorf("%w: %d of %d people left unhoused (maximum capacity %d)",
			domain.ErrCapacityExceeded, remaining, n, al.cfg.MaxCapacity())
	}
	return alloc, nil
}

// fillShared allocates whole shared rooms only: an odd last person is left
// for the single phase.
func (al *Allocator) fillShared(alloc *domain.RoomAllocation, remaining int) int {
	inv, rates := al.cfg.Inventory, al.cfg.Rates
	for _, cat := range rankByCost(rates.Standard.SharedPerPerson(), rates.Superior.SharedPerPerson()) {
		if remaining < 2 {
			break
		}
		switch cat {
		case catStandard:
			use := min(inv.Standard-alloc.StandardShared, remaining/2)
			alloc.StandardShared += use
			remaining -= use * 2
		case catSuperior:
			use := min(inv.Superior-alloc.SuperiorShared, remaining/2)
			alloc.SuperiorShared += use
			remaining -= use * 2
		}
	}
	return remaining
}

// fillSingle seats the remainder one per room, in rooms the shared phase
// left untouched.
func (al *Allocator) fillSingle(alloc *domain.RoomAllocation, remaining int) int {
	inv, rates := al.cfg.Inventory, al.cfg.Rates
	for _, cat := range rankByCost(rates.Standard.Single, rates.Superior.Single) {
		if remaining == 0 {
			break
		}
		switch cat {
		case catStandard:
			use := min(inv.Standard-alloc.StandardShared-alloc.StandardSingle, remaining)
			alloc.StandardSingle += use
			remaining -= use
		case catSuperior:
			use := min(inv.Superior-alloc.SuperiorShared-alloc.SuperiorSingle, remaining)
			alloc.SuperiorSingle += use
			remaining -= use
		}
	}
	return remaining
}
