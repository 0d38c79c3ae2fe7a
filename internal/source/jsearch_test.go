package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compscope/internal/model"
	"github.com/sells-group/compscope/pkg/jsearch"
)

type fakeJSearch struct {
	estimates []jsearch.SalaryEstimate
	err       error
	gotLoc    string
}

func (f *fakeJSearch) EstimatedSalary(_ context.Context, _, location string) ([]jsearch.SalaryEstimate, error) {
	f.gotLoc = location
	return f.estimates, f.err
}

func TestJSearchQuery(t *testing.T) {
	f := &fakeJSearch{estimates: []jsearch.SalaryEstimate{
		{Publisher: "Glassdoor", MedianSalary: 124000, SalaryPeriod: "YEAR", SalaryCount: 125},
		{Publisher: "Payscale", MedianSalary: 60, SalaryPeriod: "HOUR", SalaryCount: 63},
		{Publisher: "ZipRecruiter", MedianSalary: 10000, SalaryPeriod: "MONTH"},
	}}
	s := NewJSearch(f)

	obs := s.Query(context.Background(), Request{
		SOCCode: "15-1252.00",
		Title:   "software engineer",
		Level:   model.LevelMetro,
		Geo:     austinGeo(),
	})

	require.NotNil(t, obs)
	assert.Equal(t, "Austin, Texas", f.gotLoc)
	// Annualized medians: 124000, 124800, 120000 -> median 124000.
	assert.Equal(t, 124000.0, obs.Median)
	assert.Equal(t, 188, obs.Postings)
	assert.True(t, obs.Blendable)
	assert.Equal(t, "Austin-Round Rock-Georgetown, TX", obs.GeoLabel)
}

func TestJSearchLocationPerLevel(t *testing.T) {
	f := &fakeJSearch{estimates: []jsearch.SalaryEstimate{
		{MedianSalary: 100000, SalaryPeriod: "YEAR"},
	}}
	s := NewJSearch(f)

	s.Query(context.Background(), Request{Title: "nurse", Level: model.LevelState, Geo: austinGeo()})
	assert.Equal(t, "Texas", f.gotLoc)

	s.Query(context.Background(), Request{Title: "nurse", Level: model.LevelNational, Geo: austinGeo()})
	assert.Equal(t, "United States", f.gotLoc)
}

func TestJSearchQueryAbsent(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeJSearch
	}{
		{name: "api failure", fake: &fakeJSearch{err: errors.New("quota")}},
		{name: "no estimates", fake: &fakeJSearch{}},
		{
			name: "all implausible",
			fake: &fakeJSearch{estimates: []jsearch.SalaryEstimate{
				{MedianSalary: 3, SalaryPeriod: "HOUR"},       // $6,240
				{MedianSalary: 2_000_000, SalaryPeriod: "YEAR"},
			}},
		},
		{
			name: "reported postings below minimum",
			fake: &fakeJSearch{estimates: []jsearch.SalaryEstimate{
				{MedianSalary: 90000, SalaryPeriod: "YEAR", SalaryCount: 1},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := NewJSearch(tt.fake).Query(context.Background(), Request{
				Title: "software engineer",
				Level: model.LevelState,
				Geo:   austinGeo(),
			})
			assert.Nil(t, obs)
		})
	}
}

func TestJSearchUnreportedCountsStillCount(t *testing.T) {
	f := &fakeJSearch{estimates: []jsearch.SalaryEstimate{
		{MedianSalary: 90000, SalaryPeriod: "YEAR"}, // SalaryCount omitted by API
	}}

	obs := NewJSearch(f).Query(context.Background(), Request{
		Title: "software engineer",
		Level: model.LevelState,
		Geo:   austinGeo(),
	})

	require.NotNil(t, obs)
	assert.Equal(t, 90000.0, obs.Median)
	assert.Zero(t, obs.Postings)
}
