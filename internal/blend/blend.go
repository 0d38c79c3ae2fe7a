// Package blend combines wage observations into a single estimate.
//
// Local observations (metro and state) from blendable sources carry the
// estimate. National observations are a fallback used only when nothing local
// contributed. Non-blendable sources never contribute at any tier.
package blend

import (
	"github.com/sells-group/compscope/internal/model"
)

// Blend returns the blended estimate for a set of observations, or nil when
// no blendable observation exists at any tier.
func Blend(observations []model.WageObservation) *model.BlendedEstimate {
	local := medians(observations, func(o model.WageObservation) bool {
		return o.Blendable && o.Local()
	})
	if len(local) > 0 {
		return estimate(local, model.ScopeLocal)
	}

	national := medians(observations, func(o model.WageObservation) bool {
		return o.Blendable && o.Level == model.LevelNational
	})
	if len(national) > 0 {
		return estimate(national, model.ScopeNationalFallback)
	}
	return nil
}

// LocalMedian returns the mean of a single source's local medians, for the
// per-source display line. ok is false when the source has no local
// observation.
func LocalMedian(sourceID string, observations []model.WageObservation) (float64, bool) {
	vals := medians(observations, func(o model.WageObservation) bool {
		return o.SourceID == sourceID && o.Local()
	})
	if len(vals) == 0 {
		return 0, false
	}
	return mean(vals), true
}

func medians(observations []model.WageObservation, keep func(model.WageObservation) bool) []float64 {
	var vals []float64
	for _, o := range observations {
		if keep(o) {
			vals = append(vals, o.Median)
		}
	}
	return vals
}

func estimate(vals []float64, scope model.EstimateScope) *model.BlendedEstimate {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return &model.BlendedEstimate{
		Value:        mean(vals),
		Min:          min,
		Max:          max,
		Contributors: len(vals),
		Scope:        scope,
	}
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
