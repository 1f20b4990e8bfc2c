package app

import "parador_pricing/internal/domain"

// Row is one (property, group size) line of the comparison. A row that could
// not be priced carries its error; the rest of the report is unaffected.
type Row struct {
	GroupSize int
	Breakdown domain.Breakdown
	Err       error
}

// PropertyReport is the comparison block for one property: its configuration
// (for the header) and one row per requested group size.
type PropertyReport struct {
	PropertyID string
	Config     domain.HotelConfig
	Nights     int
	MealCost   float64
	Rows       []Row
}

// Comparator drives the pricing service across every catalog property and a
// list of group sizes.
type Comparator struct {
	pricing *Pricing
	catalog domain.PropertyCatalog
}

func NewComparator(pricing *Pricing, catalog domain.PropertyCatalog) *Comparator {
	return &Comparator{pricing: pricing, catalog: catalog}
}

// Compare builds one report per property, properties in sorted id order,
// rows in the given size order. Per-row failures (capacity, duration) become
// row data; only a catalog inconsistency aborts the whole comparison.
func (c *Comparator) Compare(sizes []int, nights int) ([]PropertyReport, error) {
	ids := c.catalog.List()
	reports := make([]PropertyReport, 0, len(ids))
	for _, id := range ids {
		cfg, err := c.catalog.Lookup(id)
		if err != nil {
			return nil, err
		}
		rep := PropertyReport{
			PropertyID: id,
			Config:     cfg,
			Nights:     nights,
			MealCost:   c.pricing.MealCost(),
			Rows:       make([]Row, 0, len(sizes)),
		}
		for _, n := range sizes {
			b, err := c.pricing.Breakdown(id, n, nights)
			rep.Rows = append(rep.Rows, Row{GroupSize: n, Breakdown: b, Err: err})
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
