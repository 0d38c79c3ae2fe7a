package source

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/model"
	"github.com/sells-group/compscope/pkg/usajobs"
)

// USAJobs serves advertised federal pay ranges. Federal pay follows its own
// schedules, so the source is reference-only and never blends.
type USAJobs struct {
	client usajobs.Client
}

// NewUSAJobs wraps a USAJobs API client as a Source.
func NewUSAJobs(client usajobs.Client) *USAJobs {
	return &USAJobs{client: client}
}

func (s *USAJobs) Name() string { return "usajobs" }

func (s *USAJobs) Blendable() bool { return false }

// Query pools the annualized bounds of every salary-disclosing posting and
// reports their median alongside the pooled extremes. At least two disclosing
// postings are required.
func (s *USAJobs) Query(ctx context.Context, req Request) *model.WageObservation {
	loc, label, ok := locationFor(req)
	if !ok {
		return nil
	}
	if req.Level == model.LevelNational {
		// USAJobs treats a missing LocationName as nationwide.
		loc = ""
	}

	postings, err := s.client.Search(ctx, req.Title, loc)
	if err != nil {
		zap.L().Warn("usajobs: query failed",
			zap.String("location", label), zap.Error(err))
		return nil
	}

	var pool []float64
	var disclosing int
	for _, p := range postings {
		var counted bool
		for _, r := range p.Remuneration {
			for _, v := range []float64{r.Min, r.Max} {
				if v <= 0 {
					continue
				}
				annual := Annualize(v, r.Interval)
				if !Plausible(annual) {
					continue
				}
				pool = append(pool, annual)
				counted = true
			}
		}
		if counted {
			disclosing++
		}
	}

	if disclosing < MinPostings {
		zap.L().Debug("usajobs: not enough disclosing postings",
			zap.String("location", label), zap.Int("postings", disclosing))
		return nil
	}

	min, max := pool[0], pool[0]
	for _, v := range pool[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return &model.WageObservation{
		SourceID:  s.Name(),
		Level:     req.Level,
		GeoLabel:  label,
		Median:    medianOf(pool),
		Min:       min,
		Max:       max,
		Postings:  disclosing,
		Blendable: false,
	}
}
