package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compscope/internal/model"
	"github.com/sells-group/compscope/pkg/usajobs"
)

type fakeUSAJobs struct {
	postings []usajobs.Posting
	err      error
	gotLoc   string
}

func (f *fakeUSAJobs) Search(_ context.Context, _, location string) ([]usajobs.Posting, error) {
	f.gotLoc = location
	return f.postings, f.err
}

func TestUSAJobsQuery(t *testing.T) {
	f := &fakeUSAJobs{postings: []usajobs.Posting{
		{Title: "IT Specialist", Remuneration: []usajobs.Remuneration{
			{Min: 94199, Max: 122459, Interval: usajobs.IntervalAnnual},
		}},
		{Title: "IT Project Manager", Remuneration: []usajobs.Remuneration{
			{Min: 50, Max: 60, Interval: usajobs.IntervalHourly},
		}},
		{Title: "No Pay Listed"},
	}}
	s := NewUSAJobs(f)

	obs := s.Query(context.Background(), Request{
		SOCCode: "15-1252.00",
		Title:   "software developer",
		Level:   model.LevelMetro,
		Geo:     austinGeo(),
	})

	require.NotNil(t, obs)
	assert.Equal(t, "Austin, Texas", f.gotLoc)
	assert.False(t, obs.Blendable)
	assert.Equal(t, 2, obs.Postings)
	// Pool: 94199, 122459, 104000, 124800 -> median (104000+122459)/2.
	assert.InDelta(t, 113229.5, obs.Median, 0.01)
	assert.Equal(t, 94199.0, obs.Min)
	assert.Equal(t, 124800.0, obs.Max)
}

func TestUSAJobsNationalOmitsLocation(t *testing.T) {
	f := &fakeUSAJobs{postings: []usajobs.Posting{
		{Remuneration: []usajobs.Remuneration{{Min: 80000, Max: 90000, Interval: usajobs.IntervalAnnual}}},
		{Remuneration: []usajobs.Remuneration{{Min: 85000, Max: 95000, Interval: usajobs.IntervalAnnual}}},
	}}

	obs := NewUSAJobs(f).Query(context.Background(), Request{
		Title: "nurse",
		Level: model.LevelNational,
		Geo:   austinGeo(),
	})

	require.NotNil(t, obs)
	assert.Empty(t, f.gotLoc)
	assert.Equal(t, "United States", obs.GeoLabel)
}

func TestUSAJobsQueryAbsent(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeUSAJobs
	}{
		{name: "api failure", fake: &fakeUSAJobs{err: errors.New("bad key")}},
		{name: "no postings", fake: &fakeUSAJobs{}},
		{
			name: "single disclosing posting is not evidence",
			fake: &fakeUSAJobs{postings: []usajobs.Posting{
				{Remuneration: []usajobs.Remuneration{{Min: 80000, Max: 90000, Interval: usajobs.IntervalAnnual}}},
				{Title: "No Pay Listed"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := NewUSAJobs(tt.fake).Query(context.Background(), Request{
				Title: "nurse",
				Level: model.LevelState,
				Geo:   austinGeo(),
			})
			assert.Nil(t, obs)
		})
	}
}

func TestAnnualizeAndPlausible(t *testing.T) {
	assert.Equal(t, 104000.0, Annualize(50, "HOUR"))
	assert.Equal(t, 104000.0, Annualize(50, usajobs.IntervalHourly))
	assert.Equal(t, 120000.0, Annualize(10000, "MONTH"))
	assert.Equal(t, 100000.0, Annualize(100000, "YEAR"))
	assert.Equal(t, 100000.0, Annualize(100000, usajobs.IntervalAnnual))

	assert.True(t, Plausible(15_000))
	assert.True(t, Plausible(1_000_000))
	assert.False(t, Plausible(14_999))
	assert.False(t, Plausible(1_000_001))
}
