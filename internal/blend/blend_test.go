package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compscope/internal/model"
)

func obs(source string, level model.GeoLevel, median float64, blendable bool) model.WageObservation {
	return model.WageObservation{
		SourceID:  source,
		Level:     level,
		Median:    median,
		Blendable: blendable,
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name string
		in   []model.WageObservation
		want *model.BlendedEstimate
	}{
		{
			name: "local medians averaged, national ignored",
			in: []model.WageObservation{
				obs("bls-oews", model.LevelMetro, 90_000, true),
				obs("bls-oews", model.LevelState, 95_000, true),
				obs("bls-oews", model.LevelNational, 80_000, true),
			},
			want: &model.BlendedEstimate{
				Value:        92_500,
				Min:          90_000,
				Max:          95_000,
				Contributors: 2,
				Scope:        model.ScopeLocal,
			},
		},
		{
			name: "multiple sources pool local tiers",
			in: []model.WageObservation{
				obs("bls-oews", model.LevelMetro, 100_000, true),
				obs("bls-oews", model.LevelState, 90_000, true),
				obs("jsearch", model.LevelMetro, 110_000, true),
				obs("jsearch", model.LevelNational, 70_000, true),
			},
			want: &model.BlendedEstimate{
				Value:        100_000,
				Min:          90_000,
				Max:          110_000,
				Contributors: 3,
				Scope:        model.ScopeLocal,
			},
		},
		{
			name: "national fallback when nothing local",
			in: []model.WageObservation{
				obs("bls-oews", model.LevelNational, 80_000, true),
			},
			want: &model.BlendedEstimate{
				Value:        80_000,
				Min:          80_000,
				Max:          80_000,
				Contributors: 1,
				Scope:        model.ScopeNationalFallback,
			},
		},
		{
			name: "non-blendable never contributes",
			in: []model.WageObservation{
				obs("usajobs", model.LevelMetro, 120_000, false),
				obs("usajobs", model.LevelNational, 110_000, false),
			},
			want: nil,
		},
		{
			name: "non-blendable local does not mask blendable national",
			in: []model.WageObservation{
				obs("usajobs", model.LevelMetro, 120_000, false),
				obs("bls-oews", model.LevelNational, 80_000, true),
			},
			want: &model.BlendedEstimate{
				Value:        80_000,
				Min:          80_000,
				Max:          80_000,
				Contributors: 1,
				Scope:        model.ScopeNationalFallback,
			},
		},
		{
			name: "no observations",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestLocalMedian(t *testing.T) {
	observations := []model.WageObservation{
		obs("bls-oews", model.LevelMetro, 90_000, true),
		obs("bls-oews", model.LevelState, 95_000, true),
		obs("bls-oews", model.LevelNational, 80_000, true),
		obs("usajobs", model.LevelMetro, 120_000, false),
		obs("jsearch", model.LevelNational, 70_000, true),
	}

	v, ok := LocalMedian("bls-oews", observations)
	require.True(t, ok)
	assert.Equal(t, 92_500.0, v)

	// Non-blendable sources still get a display line.
	v, ok = LocalMedian("usajobs", observations)
	require.True(t, ok)
	assert.Equal(t, 120_000.0, v)

	_, ok = LocalMedian("jsearch", observations)
	assert.False(t, ok)

	_, ok = LocalMedian("unknown", observations)
	assert.False(t, ok)
}
