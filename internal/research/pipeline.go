// Package research orchestrates a full compensation lookup: geography
// resolution, occupation matching, concurrent source queries, and blending.
package research

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/compscope/internal/blend"
	"github.com/sells-group/compscope/internal/model"
	"github.com/sells-group/compscope/internal/source"
)

// ErrNoOccupationMatch aborts a run whose title matched nothing; wage lookups
// for an unknown occupation would be noise.
var ErrNoOccupationMatch = eris.New("research: no occupation match")

const (
	// DefaultTimeout bounds each individual source call.
	DefaultTimeout = 15 * time.Second
	// maxConcurrent caps in-flight source calls: three sources across three
	// geographic levels.
	maxConcurrent = 9
)

// Resolver turns a location string into the geography hierarchy.
type Resolver interface {
	Resolve(ctx context.Context, location string) model.GeoResolution
}

// Matcher turns a job title into occupation candidates.
type Matcher interface {
	Match(ctx context.Context, title string) []model.OccupationMatch
}

// Result is one completed research run.
type Result struct {
	RunID        string                  `json:"run_id"`
	Title        string                  `json:"title"`
	Location     string                  `json:"location"`
	Geo          model.GeoResolution     `json:"geo"`
	Match        model.OccupationMatch   `json:"match"`
	Matches      []model.OccupationMatch `json:"matches"`
	Observations []model.WageObservation `json:"observations"`
	Estimate     *model.BlendedEstimate  `json:"estimate,omitempty"`
	Elapsed      time.Duration           `json:"elapsed"`
}

// Pipeline wires the stages together.
type Pipeline struct {
	resolver Resolver
	matcher  Matcher
	sources  []source.Source
	policy   *Policy
	timeout  time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPolicy installs a source policy.
func WithPolicy(p *Policy) Option {
	return func(pl *Pipeline) { pl.policy = p }
}

// WithTimeout overrides the default per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(pl *Pipeline) { pl.timeout = d }
}

func NewPipeline(resolver Resolver, matcher Matcher, sources []source.Source, opts ...Option) *Pipeline {
	p := &Pipeline{
		resolver: resolver,
		matcher:  matcher,
		sources:  sources,
		policy:   DefaultPolicy(),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes a research run. socOverride, when non-empty, skips the matcher
// ranking and pins the occupation code.
func (p *Pipeline) Run(ctx context.Context, title, location, socOverride string) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := zap.L().With(zap.String("run_id", runID))

	geo := p.resolver.Resolve(ctx, location)

	matches := p.matcher.Match(ctx, title)
	if len(matches) == 0 {
		return nil, eris.Wrapf(ErrNoOccupationMatch, "title %q", title)
	}
	best := matches[0]
	if socOverride != "" {
		best = pinned(matches, socOverride)
	}

	log.Info("research: run starting",
		zap.String("title", title),
		zap.String("location", location),
		zap.String("soc", best.Code),
		zap.Bool("has_metro", geo.Metro != nil),
		zap.Bool("has_state", geo.State != nil))

	observations := p.fanOut(ctx, best, title, geo)

	res := &Result{
		RunID:        runID,
		Title:        title,
		Location:     location,
		Geo:          geo,
		Match:        best,
		Matches:      matches,
		Observations: observations,
		Estimate:     blend.Blend(observations),
		Elapsed:      time.Since(start),
	}

	log.Info("research: run finished",
		zap.Int("observations", len(observations)),
		zap.Bool("estimated", res.Estimate != nil),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

// fanOut queries every enabled source at every applicable level concurrently.
// A source call that fails or times out contributes nothing; there are no
// retries.
func (p *Pipeline) fanOut(ctx context.Context, match model.OccupationMatch, title string, geo model.GeoResolution) []model.WageObservation {
	levels := []model.GeoLevel{model.LevelNational}
	if geo.State != nil {
		levels = append(levels, model.LevelState)
	}
	if geo.Metro != nil {
		levels = append(levels, model.LevelMetro)
	}

	var mu sync.Mutex
	var observations []model.WageObservation

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for _, src := range p.sources {
		if !p.policy.enabled(src.Name()) {
			zap.L().Debug("research: source disabled by policy", zap.String("source", src.Name()))
			continue
		}
		timeout := p.policy.timeout(src.Name(), p.timeout)

		for _, level := range levels {
			src, level := src, level
			g.Go(func() error {
				cctx, cancel := context.WithTimeout(gctx, timeout)
				defer cancel()

				obs := src.Query(cctx, source.Request{
					SOCCode: match.Code,
					Title:   title,
					Level:   level,
					Geo:     geo,
				})
				if obs == nil {
					return nil
				}
				mu.Lock()
				observations = append(observations, *obs)
				mu.Unlock()
				return nil
			})
		}
	}

	g.Wait() //nolint:errcheck // source queries never return errors

	sort.Slice(observations, func(i, j int) bool {
		if observations[i].SourceID != observations[j].SourceID {
			return observations[i].SourceID < observations[j].SourceID
		}
		return levelRank(observations[i].Level) < levelRank(observations[j].Level)
	})
	return observations
}

func levelRank(l model.GeoLevel) int {
	switch l {
	case model.LevelMetro:
		return 0
	case model.LevelState:
		return 1
	default:
		return 2
	}
}

// pinned returns the match for an explicit SOC override, synthesizing one
// when the matcher did not rank that code.
func pinned(matches []model.OccupationMatch, code string) model.OccupationMatch {
	for _, m := range matches {
		if m.Code == code {
			return m
		}
	}
	return model.OccupationMatch{Code: code, Title: code, Confidence: 1.0, Method: model.MethodExact}
}
