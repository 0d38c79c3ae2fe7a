package source

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/model"
	"github.com/sells-group/compscope/internal/soc"
	"github.com/sells-group/compscope/pkg/bls"
)

// BLS serves OEWS survey wages. Survey figures are already vetted annual
// values, so no plausibility filter applies.
type BLS struct {
	client bls.Client
}

// NewBLS wraps a BLS API client as a Source.
func NewBLS(client bls.Client) *BLS {
	return &BLS{client: client}
}

func (s *BLS) Name() string { return "bls-oews" }

func (s *BLS) Blendable() bool { return true }

// wageDatatypes is the full OEWS measure set fetched per area and occupation.
var wageDatatypes = []string{
	bls.DatatypeEmployment,
	bls.DatatypeMeanAnnual,
	bls.DatatypePct10,
	bls.DatatypePct25,
	bls.DatatypeMedian,
	bls.DatatypePct75,
	bls.DatatypePct90,
}

// Query fetches the wage measures for one occupation at one area. The
// observation is absent unless a publishable median exists; the mean,
// percentiles, and employment count are best-effort extras.
func (s *BLS) Query(ctx context.Context, req Request) *model.WageObservation {
	areaCode, label, ok := s.area(req)
	if !ok {
		return nil
	}

	soc6 := soc.ForSeries(req.SOCCode)
	if soc6 == "" {
		zap.L().Warn("bls-oews: bad occupation code", zap.String("soc", req.SOCCode))
		return nil
	}

	ids := make([]string, 0, len(wageDatatypes))
	byDatatype := make(map[string]string, len(wageDatatypes))
	for _, dt := range wageDatatypes {
		id, err := bls.SeriesID(areaCode, soc6, dt)
		if err != nil {
			zap.L().Warn("bls-oews: build series id", zap.Error(err))
			return nil
		}
		ids = append(ids, id)
		byDatatype[dt] = id
	}

	points, err := s.client.Fetch(ctx, ids)
	if err != nil {
		zap.L().Warn("bls-oews: fetch failed",
			zap.String("area", areaCode), zap.String("soc", soc6), zap.Error(err))
		return nil
	}

	median, year, ok := value(points, byDatatype[bls.DatatypeMedian])
	if !ok {
		zap.L().Debug("bls-oews: no published median",
			zap.String("area", areaCode), zap.String("soc", soc6))
		return nil
	}

	obs := &model.WageObservation{
		SourceID:  s.Name(),
		Level:     req.Level,
		GeoLabel:  label,
		Median:    median,
		Year:      year,
		Blendable: true,
	}
	if v, _, ok := value(points, byDatatype[bls.DatatypeMeanAnnual]); ok {
		obs.Mean = v
	}
	if v, _, ok := value(points, byDatatype[bls.DatatypePct10]); ok {
		obs.Pct10 = v
	}
	if v, _, ok := value(points, byDatatype[bls.DatatypePct25]); ok {
		obs.Pct25 = v
	}
	if v, _, ok := value(points, byDatatype[bls.DatatypePct75]); ok {
		obs.Pct75 = v
	}
	if v, _, ok := value(points, byDatatype[bls.DatatypePct90]); ok {
		obs.Pct90 = v
	}
	if v, _, ok := value(points, byDatatype[bls.DatatypeEmployment]); ok {
		obs.Employment = int(v)
	}
	return obs
}

func (s *BLS) area(req Request) (code, label string, ok bool) {
	switch req.Level {
	case model.LevelMetro:
		if req.Geo.Metro == nil {
			return "", "", false
		}
		return req.Geo.Metro.AreaCode, req.Geo.Metro.Name, true
	case model.LevelState:
		if req.Geo.State == nil {
			return "", "", false
		}
		return req.Geo.State.AreaCode, req.Geo.State.Name, true
	case model.LevelNational:
		return model.NationalAreaCode, "United States", true
	default:
		return "", "", false
	}
}

// value extracts a usable number from a fetched point. Suppressed cells and
// parse failures read as absent.
func value(points map[string]bls.Point, id string) (float64, string, bool) {
	p, ok := points[id]
	if !ok || p.Value == bls.SuppressedValue {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(p.Value, ",", ""), 64)
	if err != nil {
		return 0, "", false
	}
	return v, p.Year, true
}
