package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"parador_pricing/internal/adapters/observability"
	"parador_pricing/internal/adapters/render"
	"parador_pricing/internal/app"
	"parador_pricing/internal/shared"
	"parador_pricing/internal/storage/catalog"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise); report goes to stdout
	log.Logger = observability.NewLogger(cfg.AppEnv)

	catalogPath := flag.String("catalog", cfg.CatalogPath, "YAML property catalog (builtin reference data when empty)")
	nights := flag.Int("nights", cfg.Nights, "stay duration in nights (minimum 2)")
	sizesFlag := flag.String("sizes", "", "comma-separated group sizes (default from GROUP_SIZES)")
	xlsxPath := flag.String("xlsx", cfg.ReportXLSX, "also write the report as an xlsx workbook")
	flag.Parse()

	groupSizes := cfg.GroupSizes
	if *sizesFlag != "" {
		groupSizes = shared.ParseSizes(*sizesFlag)
	}
	if len(groupSizes) == 0 {
		log.Fatal().Msg("no valid group sizes to report on")
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}

	pricing := app.NewPricing(cat, cfg.MealCost)
	comparator := app.NewComparator(pricing, cat)

	log.Info().
		Strs("properties", cat.List()).
		Ints("sizes", groupSizes).
		Int("nights", *nights).
		Msg("building comparison report")

	reports, err := comparator.Compare(groupSizes, *nights)
	if err != nil {
		log.Fatal().Err(err).Msg("comparison failed")
	}
	for _, rep := range reports {
		for _, row := range rep.Rows {
			if row.Err != nil {
				log.Warn().Str("property", rep.PropertyID).Int("size", row.GroupSize).
					Err(row.Err).Msg("row unavailable")
			}
		}
	}

	if err := render.WriteText(os.Stdout, reports); err != nil {
		log.Fatal().Err(err).Msg("writing report failed")
	}
	if *xlsxPath != "" {
		if err := render.WriteXLSX(*xlsxPath, reports); err != nil {
			log.Fatal().Err(err).Msg("writing xlsx failed")
		}
		log.Info().Str("path", *xlsxPath).Msg("workbook written")
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(path)
}

