// Package source defines the wage-source adapter contract and the shared
// validation rules adapters apply before emitting an observation.
package source

import (
	"context"

	"github.com/sells-group/compscope/internal/model"
)

// Annualization factors for non-annual pay figures.
const (
	HoursPerYear  = 2080
	MonthsPerYear = 12
)

// Plausibility bounds for live-posting sources. Survey sources (BLS) publish
// vetted figures and skip this check.
const (
	MinPlausibleAnnual = 15_000
	MaxPlausibleAnnual = 1_000_000
)

// MinPostings is the minimum number of salary-disclosing postings a live
// source needs before its figure counts as evidence.
const MinPostings = 2

// Request asks one source for wage data at one geographic level. Each adapter
// derives its own geographic identifier from Geo: BLS builds OEWS area codes,
// the posting sources build location strings.
type Request struct {
	SOCCode string // canonical XX-XXXX.XX
	Title   string // normalized job title, for posting searches
	Level   model.GeoLevel
	Geo     model.GeoResolution
}

// Source is one wage data provider. Query returns nil when the source has
// nothing usable for the request; adapters log failures and never propagate
// them, so one broken source cannot take down a research run. Query must not
// fall back to a broader level on its own — level selection belongs to the
// pipeline.
type Source interface {
	Name() string
	// Blendable reports whether observations may enter the blended estimate.
	// Non-blendable sources are display-only reference data.
	Blendable() bool
	Query(ctx context.Context, req Request) *model.WageObservation
}

// Annualize converts a pay figure to annual USD given a period hint.
func Annualize(value float64, period string) float64 {
	switch period {
	case "HOUR", "PH":
		return value * HoursPerYear
	case "MONTH":
		return value * MonthsPerYear
	default:
		return value
	}
}

// Plausible reports whether an annual figure is within the sanity bounds.
func Plausible(annual float64) bool {
	return annual >= MinPlausibleAnnual && annual <= MaxPlausibleAnnual
}
