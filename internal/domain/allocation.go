package domain

// RoomAllocation records how many ROOMS of each category/occupancy pair a
// group uses. Counts are rooms, not people. Returned fully populated by the
// allocator and never mutated afterwards.
type RoomAllocation struct {
	StandardShared int
	StandardSingle int
	SuperiorShared int
	SuperiorSingle int
}

// People is how many guests the allocation houses: 2 per shared room, 1 per
// single room.
func (a RoomAllocation) People() int {
	return a.StandardShared*2 + a.StandardSingle + a.SuperiorShared*2 + a.SuperiorSingle
}

// RoomsUsed is the total number of physical rooms the allocation occupies.
func (a RoomAllocation) RoomsUsed() int {
	return a.StandardShared + a.StandardSingle + a.SuperiorShared + a.SuperiorSingle
}

// TotalCost prices the allocation for the whole stay.
func (a RoomAllocation) TotalCost(rates HotelRates, nights int) float64 {
	nightly := float64(a.StandardShared)*rates.Standard.Shared +
		float64(a.StandardSingle)*rates.Standard.Single +
		float64(a.SuperiorShared)*rates.Superior.Shared +
		float64(a.SuperiorSingle)*rates.Superior.Single
	return nightly * float64(nights)
}
