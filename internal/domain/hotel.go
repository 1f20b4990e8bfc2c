package domain

// RoomRate holds the nightly price of one room in a category, depending on
// how it is occupied.
type RoomRate struct {
	Shared float64 // per room and night when 2 people share
	Single float64 // per room and night when 1 person occupies
}

// SharedPerPerson is the nightly cost per person when the room is shared.
func (r RoomRate) SharedPerPerson() float64 { return r.Shared / 2 }

// RoomInventory caps the rooms available per category. The same physical pool
// serves shared and single use, so shared+single usage of a category must
// stay within its count.
type RoomInventory struct {
	Standard int
	Superior int
}

type HotelRates struct {
	Standard RoomRate
	Superior RoomRate
}

// HotelConfig is the full static configuration of one property. Immutable
// after construction.
type HotelConfig struct {
	Name            string
	Inventory       RoomInventory
	Rates           HotelRates
	CoffeeBreakCost float64 // per coffee break per person
	MeetingRoomCost float64 // total for the meeting room, split across the group
}

// MaxCapacity is the most people the property can house: every room sleeps
// at most 2.
func (c HotelConfig) MaxCapacity() int {
	return (c.Inventory.Standard + c.Inventory.Superior) * 2
}
