package source

import (
	"sort"

	"github.com/sells-group/compscope/internal/model"
)

// locationFor builds the posting-search location string and display label for
// a request level. ok is false when the resolution lacks the geography the
// level needs, which means the level simply is not queryable for this run.
func locationFor(req Request) (loc, label string, ok bool) {
	switch req.Level {
	case model.LevelMetro:
		if req.Geo.Metro == nil || req.Geo.State == nil || req.Geo.City == "" {
			return "", "", false
		}
		return req.Geo.City + ", " + req.Geo.State.Name, req.Geo.Metro.Name, true
	case model.LevelState:
		if req.Geo.State == nil {
			return "", "", false
		}
		return req.Geo.State.Name, req.Geo.State.Name, true
	case model.LevelNational:
		return "United States", "United States", true
	default:
		return "", "", false
	}
}

// medianOf returns the median of vals, which must be non-empty and is
// reordered in place.
func medianOf(vals []float64) float64 {
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}
