// Package geo resolves free-text "City, ST" locations to the OEWS geography
// hierarchy: metro area, state, and the national fallback.
package geo

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/model"
)

// Geocoder resolves a (city, state) pair to a CBSA code via an external
// service. Implemented by pkg/geocode.
type Geocoder interface {
	ResolveCBSA(ctx context.Context, city, state string) (cbsa, name string, err error)
}

// CacheStore persists geocoder results across runs. A hit with an empty CBSA
// is a negative entry: the geocoder already failed for this pair.
type CacheStore interface {
	GetCBSA(ctx context.Context, city, state string) (cbsa string, ok bool, err error)
	PutCBSA(ctx context.Context, city, state, cbsa string) error
}

// Resolver maps location strings to GeoResolutions. Resolution never fails:
// anything unparseable degrades to a national-only result. Results are
// memoized by trimmed input for the life of the resolver.
type Resolver struct {
	geocoder Geocoder
	cache    CacheStore

	mu   sync.Mutex
	memo map[string]model.GeoResolution
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGeocoder enables the Census geocoding fallback for cities absent from
// the static tables.
func WithGeocoder(g Geocoder) Option {
	return func(r *Resolver) { r.geocoder = g }
}

// WithCache enables persistent caching of geocoder results.
func WithCache(c CacheStore) Option {
	return func(r *Resolver) { r.cache = c }
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{memo: make(map[string]model.GeoResolution)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StateAreaCode builds the OEWS area code for a state FIPS code.
func StateAreaCode(fips string) string {
	return "S" + fips + "00000"
}

// MetroAreaCode builds the OEWS area code for a 5-digit CBSA code.
func MetroAreaCode(cbsa string) string {
	return "M" + cbsa + "00"
}

// Resolve maps a location string to the geography hierarchy. The zero result
// (national only) is returned for empty or unrecognized input.
func (r *Resolver) Resolve(ctx context.Context, location string) model.GeoResolution {
	key := strings.TrimSpace(location)

	r.mu.Lock()
	if res, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return res
	}
	r.mu.Unlock()

	res := r.resolve(ctx, key)

	r.mu.Lock()
	r.memo[key] = res
	r.mu.Unlock()
	return res
}

func (r *Resolver) resolve(ctx context.Context, input string) model.GeoResolution {
	city, abbr := parseLocation(input)
	res := model.GeoResolution{Input: input, City: titleCase(city)}

	if fips, ok := stateFIPS[abbr]; ok {
		res.State = &model.State{
			AreaCode: StateAreaCode(fips),
			FIPS:     fips,
			Abbr:     abbr,
			Name:     stateNames[fips],
		}
	}

	if city == "" {
		return res
	}

	cbsa, name := r.lookupCBSA(ctx, city, strings.ToLower(abbr))
	if cbsa != "" {
		res.Metro = &model.Metro{
			AreaCode: MetroAreaCode(cbsa),
			CBSA:     cbsa,
			Name:     name,
		}
	}
	return res
}

// lookupCBSA tries, in order: the (city, state) table, the city-only table,
// the persistent cache, and the geocoder. Only CBSAs with a known display
// name qualify, except geocoded ones, which carry the geocoder's name.
func (r *Resolver) lookupCBSA(ctx context.Context, city, state string) (string, string) {
	if cbsa, ok := cityCBSA[cityKey{city, state}]; ok {
		if name, ok := metroNames[cbsa]; ok {
			return cbsa, name
		}
		zap.L().Debug("geo: cbsa has no metro mapping", zap.String("cbsa", cbsa))
		return "", ""
	}

	if cbsa, ok := cityAnyState[city]; ok {
		if name, ok := metroNames[cbsa]; ok {
			zap.L().Debug("geo: city-only fallback",
				zap.String("city", city), zap.String("cbsa", cbsa))
			return cbsa, name
		}
		return "", ""
	}

	if r.cache != nil {
		cbsa, ok, err := r.cache.GetCBSA(ctx, city, state)
		if err != nil {
			zap.L().Warn("geo: cache lookup failed", zap.Error(err))
		} else if ok {
			if cbsa == "" {
				return "", ""
			}
			if name, ok := metroNames[cbsa]; ok {
				return cbsa, name
			}
			return cbsa, ""
		}
	}

	if r.geocoder == nil {
		return "", ""
	}
	cbsa, name, err := r.geocoder.ResolveCBSA(ctx, city, state)
	if err != nil {
		zap.L().Warn("geo: geocoding failed",
			zap.String("city", city), zap.String("state", state), zap.Error(err))
		return "", ""
	}
	if r.cache != nil {
		if err := r.cache.PutCBSA(ctx, city, state, cbsa); err != nil {
			zap.L().Warn("geo: cache write failed", zap.Error(err))
		}
	}
	if cbsa == "" {
		return "", ""
	}
	if known, ok := metroNames[cbsa]; ok {
		name = known
	}
	return cbsa, name
}

// parseLocation splits "City, ST" on the last comma. Input without a comma is
// treated as a bare city. The state portion must be a two-letter abbreviation
// to count; anything else is folded into degradation to national.
func parseLocation(input string) (city, abbr string) {
	i := strings.LastIndex(input, ",")
	if i < 0 {
		return strings.ToLower(strings.TrimSpace(input)), ""
	}
	city = strings.ToLower(strings.TrimSpace(input[:i]))
	abbr = strings.ToUpper(strings.TrimSpace(input[i+1:]))
	if len(abbr) != 2 {
		abbr = ""
	}
	return city, abbr
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		// Preserve the hyphenated and dotted forms used in the tables.
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

func upperFirst(w string) string {
	if w == "" {
		return w
	}
	if j := strings.IndexByte(w, '-'); j > 0 && j < len(w)-1 {
		return upperFirst(w[:j]) + "-" + upperFirst(w[j+1:])
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
