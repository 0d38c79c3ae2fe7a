package source

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/model"
	"github.com/sells-group/compscope/pkg/jsearch"
)

// JSearch serves salary estimates aggregated from live postings. Figures come
// from uncontrolled postings, so implausible values are filtered and a
// minimum posting count is enforced when the API reports one.
type JSearch struct {
	client jsearch.Client
}

// NewJSearch wraps a JSearch API client as a Source.
func NewJSearch(client jsearch.Client) *JSearch {
	return &JSearch{client: client}
}

func (s *JSearch) Name() string { return "jsearch" }

func (s *JSearch) Blendable() bool { return true }

// Query pools all publisher estimates for the level's location string and
// takes the median of their annualized medians.
func (s *JSearch) Query(ctx context.Context, req Request) *model.WageObservation {
	loc, label, ok := locationFor(req)
	if !ok {
		return nil
	}

	estimates, err := s.client.EstimatedSalary(ctx, req.Title, loc)
	if err != nil {
		zap.L().Warn("jsearch: query failed",
			zap.String("location", loc), zap.Error(err))
		return nil
	}

	var medians []float64
	var postings int
	for _, e := range estimates {
		if e.MedianSalary <= 0 {
			continue
		}
		annual := Annualize(e.MedianSalary, e.SalaryPeriod)
		if !Plausible(annual) {
			zap.L().Debug("jsearch: implausible estimate dropped",
				zap.String("publisher", e.Publisher), zap.Float64("annual", annual))
			continue
		}
		medians = append(medians, annual)
		postings += e.SalaryCount
	}

	if len(medians) == 0 {
		return nil
	}
	if postings > 0 && postings < MinPostings {
		zap.L().Debug("jsearch: not enough postings",
			zap.String("location", loc), zap.Int("postings", postings))
		return nil
	}

	return &model.WageObservation{
		SourceID:  s.Name(),
		Level:     req.Level,
		GeoLabel:  label,
		Median:    medianOf(medians),
		Postings:  postings,
		Blendable: true,
	}
}
