package domain

// PropertyCatalog is the read side of the static hotel configuration. All
// implementations are immutable after construction; lookups never block, so
// no context is threaded through.
type PropertyCatalog interface {
	// Lookup resolves a property identifier, returning ErrUnknownProperty
	// for identifiers the catalog does not carry.
	Lookup(id string) (HotelConfig, error)

	// List returns every known property identifier in sorted order.
	List() []string
}

// Breakdown is the read model for one priced (property, group size, nights)
// request: the chosen allocation plus each cost component, per person and
// for the whole group.
type Breakdown struct {
	PropertyID string
	GroupSize  int
	Nights     int

	Allocation RoomAllocation

	AccommodationPerPerson float64
	MealsPerPerson         float64
	CoffeePerPerson        float64
	MeetingRoomPerPerson   float64
	TotalPerPerson         float64

	AccommodationTotal float64
	MealsTotal         float64
	CoffeeTotal        float64
	MeetingRoomTotal   float64
	GrandTotal         float64
}
