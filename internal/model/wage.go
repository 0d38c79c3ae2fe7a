// Package model defines the value records passed between pipeline stages.
package model

// GeoLevel identifies the geographic granularity of a wage observation.
type GeoLevel string

const (
	LevelMetro    GeoLevel = "metro"
	LevelState    GeoLevel = "state"
	LevelNational GeoLevel = "national"
)

// NationalAreaCode is the OEWS area code for the national series.
const NationalAreaCode = "0000000"

// Metro identifies a metropolitan statistical area in OEWS terms.
type Metro struct {
	AreaCode string `json:"area_code"` // OEWS area code, e.g. "M1242000"
	CBSA     string `json:"cbsa"`      // 5-digit CBSA code, e.g. "12420"
	Name     string `json:"name"`      // display name, e.g. "Austin-Round Rock-Georgetown, TX"
}

// State identifies a US state in OEWS terms.
type State struct {
	AreaCode string `json:"area_code"` // OEWS area code, e.g. "S4800000"
	FIPS     string `json:"fips"`      // 2-digit FIPS, e.g. "48"
	Abbr     string `json:"abbr"`      // e.g. "TX"
	Name     string `json:"name"`      // e.g. "Texas"
}

// GeoResolution is the immutable result of resolving a location string.
// Metro is present only when a metro-level mapping exists; State is present
// whenever the input carried a parseable two-letter state abbreviation.
type GeoResolution struct {
	Input string `json:"input"`
	City  string `json:"city"` // display-cased city portion of the input
	Metro *Metro `json:"metro,omitempty"`
	State *State `json:"state,omitempty"`
}

// HasLocal reports whether any sub-national geography resolved.
func (g GeoResolution) HasLocal() bool {
	return g.Metro != nil || g.State != nil
}

// MatchMethod describes which matcher tier produced an occupation match.
type MatchMethod string

const (
	MethodExact    MatchMethod = "exact"
	MethodFuzzy    MatchMethod = "fuzzy"
	MethodExternal MatchMethod = "external"
)

// OccupationMatch is one candidate mapping from a free-text job title to an
// SOC occupation code. Confidence is 1.0 exactly when Method is exact.
type OccupationMatch struct {
	Code       string      `json:"code"`  // canonical XX-XXXX.XX
	Title      string      `json:"title"` // canonical occupation label
	Confidence float64     `json:"confidence"`
	Method     MatchMethod `json:"method"`
	MatchedKey string      `json:"matched_key,omitempty"` // table spelling that produced the hit
}

// WageObservation is one source's wage data at one geographic level.
// All currency values are annualized USD. Median is always present; an
// observation without a derivable median is never constructed.
type WageObservation struct {
	SourceID   string   `json:"source_id"`
	Level      GeoLevel `json:"level"`
	GeoLabel   string   `json:"geo_label"`
	Median     float64  `json:"median"`
	Mean       float64  `json:"mean,omitempty"`  // survey sources only
	Pct10      float64  `json:"pct10,omitempty"`
	Pct25      float64  `json:"pct25,omitempty"`
	Pct75      float64  `json:"pct75,omitempty"`
	Pct90      float64  `json:"pct90,omitempty"`
	Min        float64  `json:"min,omitempty"` // advertised range floor, posting sources only
	Max        float64  `json:"max,omitempty"` // advertised range ceiling, posting sources only
	Year       string   `json:"year,omitempty"`       // survey year for static sources
	Employment int      `json:"employment,omitempty"` // surveyed employment for static sources
	Postings   int      `json:"postings,omitempty"`   // posting count for live sources
	Blendable  bool     `json:"blendable"`
}

// Local reports whether the observation is metro- or state-level.
func (o WageObservation) Local() bool {
	return o.Level == LevelMetro || o.Level == LevelState
}

// EstimateScope describes which geography tier fed the blended estimate.
type EstimateScope string

const (
	ScopeLocal            EstimateScope = "local"
	ScopeNationalFallback EstimateScope = "national-fallback"
)

// BlendedEstimate is the final blended wage estimate. Value is the arithmetic
// mean of the contributing medians; Min and Max bound those medians.
type BlendedEstimate struct {
	Value        float64       `json:"value"`
	Min          float64       `json:"min"`
	Max          float64       `json:"max"`
	Contributors int           `json:"contributors"`
	Scope        EstimateScope `json:"scope"`
}
