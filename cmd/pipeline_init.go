package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/geo"
	"github.com/sells-group/compscope/internal/research"
	"github.com/sells-group/compscope/internal/soc"
	"github.com/sells-group/compscope/internal/source"
	"github.com/sells-group/compscope/internal/store"
	"github.com/sells-group/compscope/pkg/bls"
	"github.com/sells-group/compscope/pkg/geocode"
	"github.com/sells-group/compscope/pkg/jsearch"
	"github.com/sells-group/compscope/pkg/onet"
	"github.com/sells-group/compscope/pkg/usajobs"
)

// pipelineEnv holds the initialized resolver, matcher, sources, and pipeline
// used by the research/geo/soc/serve commands.
type pipelineEnv struct {
	Store    store.Store // may be nil
	Resolver *geo.Resolver
	Matcher  *soc.Matcher
	Pipeline *research.Pipeline
}

// Close releases resources held by the environment.
func (pe *pipelineEnv) Close() {
	if pe.Store != nil {
		_ = pe.Store.Close()
	}
}

// initStore opens the configured geocode cache backend, or returns nil when
// no driver is configured.
func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "":
		return nil, nil
	case "sqlite":
		st, err := store.NewSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			_ = st.Close()
			return nil, eris.Wrap(err, "migrate sqlite store")
		}
		return st, nil
	case "postgres":
		st, err := store.NewPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			_ = st.Close()
			return nil, eris.Wrap(err, "migrate postgres store")
		}
		return st, nil
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// initPipeline wires clients, resolver, matcher, and sources from config.
// Callers should defer env.Close(). Sources without credentials are skipped
// with a log line rather than failing the run.
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	resolverOpts := []geo.Option{}
	if cfg.Geocode.Enabled {
		resolverOpts = append(resolverOpts,
			geo.WithGeocoder(geocode.NewClient(geocode.WithBaseURL(cfg.Geocode.BaseURL))))
	}
	if st != nil {
		resolverOpts = append(resolverOpts, geo.WithCache(st))
	}
	resolver := geo.NewResolver(resolverOpts...)

	matcherOpts := []soc.MatcherOption{}
	if cfg.ONET.Username != "" && cfg.ONET.Password != "" {
		onetClient := onet.NewClient(cfg.ONET.Username, cfg.ONET.Password, onet.WithBaseURL(cfg.ONET.BaseURL))
		matcherOpts = append(matcherOpts, soc.WithExternal(soc.NewONETExternal(onetClient)))
		zap.L().Info("onet external matching enabled")
	}
	matcher := soc.NewMatcher(matcherOpts...)

	sources := []source.Source{
		source.NewBLS(bls.NewClient(cfg.BLS.Key,
			bls.WithBaseURL(cfg.BLS.BaseURL),
			bls.WithYears(cfg.BLS.StartYear, cfg.BLS.EndYear))),
	}
	if cfg.JSearch.Key != "" {
		sources = append(sources,
			source.NewJSearch(jsearch.NewClient(cfg.JSearch.Key, jsearch.WithBaseURL(cfg.JSearch.BaseURL))))
	} else {
		zap.L().Debug("COMPSCOPE_JSEARCH_KEY not set, jsearch source disabled")
	}
	if cfg.USAJobs.Key != "" && cfg.USAJobs.UserAgent != "" {
		sources = append(sources,
			source.NewUSAJobs(usajobs.NewClient(cfg.USAJobs.Key, cfg.USAJobs.UserAgent, usajobs.WithBaseURL(cfg.USAJobs.BaseURL))))
	} else {
		zap.L().Debug("usajobs credentials not set, usajobs source disabled")
	}

	policy, err := research.LoadPolicy(cfg.Research.PolicyFile)
	if err != nil {
		if st != nil {
			_ = st.Close()
		}
		return nil, err
	}

	pipelineOpts := []research.Option{research.WithPolicy(policy)}
	if cfg.Research.TimeoutSecs > 0 {
		pipelineOpts = append(pipelineOpts,
			research.WithTimeout(time.Duration(cfg.Research.TimeoutSecs)*time.Second))
	}

	zap.L().Info("pipeline initialized", zap.Int("sources", len(sources)))

	return &pipelineEnv{
		Store:    st,
		Resolver: resolver,
		Matcher:  matcher,
		Pipeline: research.NewPipeline(resolver, matcher, sources, pipelineOpts...),
	}, nil
}
