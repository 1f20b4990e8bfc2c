package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"parador_pricing/internal/domain"
)

// Catalog is an immutable in-memory property table implementing
// domain.PropertyCatalog. Build it once at startup, from the compiled-in
// reference data or from a YAML file, and share it freely.
type Catalog struct {
	props map[string]domain.HotelConfig
	ids   []string
}

// New validates the given property set and freezes it into a catalog.
func New(props map[string]domain.HotelConfig) (*Catalog, error) {
	c := &Catalog{props: make(map[string]domain.HotelConfig, len(props))}
	for id, cfg := range props {
		if err := validate(id, cfg); err != nil {
			return nil, err
		}
		warnOnInvertedRates(id, cfg)
		c.props[id] = cfg
		c.ids = append(c.ids, id)
	}
	sort.Strings(c.ids)
	return c, nil
}

// Builtin returns the reference catalog: the two Parador properties with
// their maximum room availability.
func Builtin() *Catalog {
	c, err := New(map[string]domain.HotelConfig{
		"el_hierro": {
			Name:      "Parador de El Hierro",
			Inventory: domain.RoomInventory{Standard: 20, Superior: 20},
			Rates: domain.HotelRates{
				Standard: domain.RoomRate{Shared: 158, Single: 136},
				Superior: domain.RoomRate{Shared: 181, Single: 159},
			},
			CoffeeBreakCost: 7,
			MeetingRoomCost: 200,
		},
		"la_palma": {
			Name:      "Parador de La Palma",
			Inventory: domain.RoomInventory{Standard: 21, Superior: 24},
			Rates: domain.HotelRates{
				Standard: domain.RoomRate{Shared: 164, Single: 144},
				Superior: domain.RoomRate{Shared: 186, Single: 166},
			},
			CoffeeBreakCost: 8,
			MeetingRoomCost: 800,
		},
	})
	if err != nil {
		panic("catalog: builtin reference data invalid: " + err.Error())
	}
	return c
}

// LoadFile builds a catalog from a YAML property file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc fileSchema
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	if len(doc.Properties) == 0 {
		return nil, fmt.Errorf("catalog: %s defines no properties", path)
	}

	props := make(map[string]domain.HotelConfig, len(doc.Properties))
	for id, p := range doc.Properties {
		props[id] = domain.HotelConfig{
			Name:      p.Name,
			Inventory: domain.RoomInventory{Standard: p.Inventory.Standard, Superior: p.Inventory.Superior},
			Rates: domain.HotelRates{
				Standard: domain.RoomRate{Shared: p.Rates.Standard.Shared, Single: p.Rates.Standard.Single},
				Superior: domain.RoomRate{Shared: p.Rates.Superior.Shared, Single: p.Rates.Superior.Single},
			},
			CoffeeBreakCost: p.CoffeeBreakCost,
			MeetingRoomCost: p.MeetingRoomCost,
		}
	}
	return New(props)
}

func (c *Catalog) Lookup(id string) (domain.HotelConfig, error) {
	cfg, ok := c.props[id]
	if !ok {
		return domain.HotelConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownProperty, id)
	}
	return cfg, nil
}

func (c *Catalog) List() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

type fileSchema struct {
	Properties map[string]propertySchema `yaml:"properties"`
}

type propertySchema struct {
	Name      string `yaml:"name"`
	Inventory struct {
		Standard int `yaml:"standard"`
		Superior int `yaml:"superior"`
	} `yaml:"inventory"`
	Rates struct {
		Standard rateSchema `yaml:"standard"`
		Superior rateSchema `yaml:"superior"`
	} `yaml:"rates"`
	CoffeeBreakCost float64 `yaml:"coffee_break_cost"`
	MeetingRoomCost float64 `yaml:"meeting_room_cost"`
}

type rateSchema struct {
	Shared float64 `yaml:"shared"`
	Single float64 `yaml:"single"`
}

func validate(id string, cfg domain.HotelConfig) error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("catalog: property %q: "+format, append([]any{id}, args...)...)
	}
	if cfg.Name == "" {
		return bad("name is required")
	}
	if cfg.Inventory.Standard < 0 || cfg.Inventory.Superior < 0 {
		return bad("negative room inventory %d/%d", cfg.Inventory.Standard, cfg.Inventory.Superior)
	}
	for _, r := range []struct {
		cat  string
		rate domain.RoomRate
	}{{"standard", cfg.Rates.Standard}, {"superior", cfg.Rates.Superior}} {
		if r.rate.Shared <= 0 || r.rate.Single <= 0 {
			return bad("%s rates must be positive, got shared=%.2f single=%.2f", r.cat, r.rate.Shared, r.rate.Single)
		}
	}
	if cfg.CoffeeBreakCost < 0 || cfg.MeetingRoomCost < 0 {
		return bad("negative fixed costs")
	}
	return nil
}

// warnOnInvertedRates flags rate tables that break the allocator's phase
// precondition (shared per person ≤ single per person). Such a table still
// loads; the greedy result is just no longer guaranteed minimal.
func warnOnInvertedRates(id string, cfg domain.HotelConfig) {
	check := func(cat string, rate domain.RoomRate) {
		if rate.SharedPerPerson() > rate.Single {
			log.Warn().
				Str("property", id).
				Str("category", cat).
				Float64("shared_per_person", rate.SharedPerPerson()).
				Float64("single", rate.Single).
				Msg("single occupancy undercuts shared per person; allocation may not be cost-minimal")
		}
	}
	check("standard", cfg.Rates.Standard)
	check("superior", cfg.Rates.Superior)
}
