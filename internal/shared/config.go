package shared

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	CatalogPath string  // optional YAML catalog; builtin reference data when empty
	Nights      int
	MealCost    float64 // per meal per person
	GroupSizes  []int
	ReportXLSX  string // optional workbook output path
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		CatalogPath: env("CATALOG_PATH", ""),
		Nights:      atoi("STAY_NIGHTS", 5),
		MealCost:    atof("MEAL_COST", 38),
		GroupSizes:  ParseSizes(env("GROUP_SIZES", "30,40,50")),
		ReportXLSX:  env("REPORT_XLSX", ""),
	}
	if c.Nights < 2 {
		log.Warn().Int("nights", c.Nights).Msg("STAY_NIGHTS below 2; meal and coffee formulas need at least 2")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// ParseSizes parses a comma-separated group size list, skipping entries that
// are not positive integers.
func ParseSizes(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			log.Warn().Str("entry", part).Msg("ignoring invalid group size")
			continue
		}
		out = append(out, n)
	}
	return out
}
