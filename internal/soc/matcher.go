package soc

import (
	"context"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/model"
)

const (
	// defaultThreshold is the minimum similarity ratio for a fuzzy hit.
	defaultThreshold = 0.68
	// defaultMaxResults caps the match list.
	defaultMaxResults = 5
	// externalBelow triggers the external tier when fewer results than this
	// have been found.
	externalBelow = 2
)

// External looks up occupation candidates from an external taxonomy service
// such as O*NET. Implementations return matches with Method set to
// MethodExternal and Confidence on the 0..1 scale.
type External interface {
	Search(ctx context.Context, title string) ([]model.OccupationMatch, error)
}

// Matcher maps free-text job titles to SOC occupation candidates through
// three tiers: exact table lookup, fuzzy similarity over the table, and an
// optional external search. An empty result list means the title is
// unmatchable and callers must not proceed to wage lookups.
type Matcher struct {
	external   External
	threshold  float64
	maxResults int
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithExternal enables the external search tier.
func WithExternal(e External) MatcherOption {
	return func(m *Matcher) { m.external = e }
}

// WithThreshold overrides the fuzzy similarity threshold.
func WithThreshold(t float64) MatcherOption {
	return func(m *Matcher) { m.threshold = t }
}

// WithMaxResults overrides the result cap.
func WithMaxResults(n int) MatcherOption {
	return func(m *Matcher) { m.maxResults = n }
}

func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{threshold: defaultThreshold, maxResults: defaultMaxResults}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match runs the tiers in order, each appending to the accumulated result
// set. An exact hit carries confidence 1.0 and stays first; the fuzzy tier
// still runs afterward so alternates under other codes are returned. The
// external tier runs only when fewer than two candidates were found and an
// External is configured; its results are appended in the order the service
// returned them, after the locally ranked candidates.
func (m *Matcher) Match(ctx context.Context, title string) []model.OccupationMatch {
	norm := normalizeTitle(title)
	if norm == "" {
		return nil
	}

	matches := m.exactTier(norm)
	matches = m.fuzzyTier(norm, matches)
	if len(matches) < externalBelow && m.external != nil {
		matches = m.externalTier(ctx, norm, matches)
	}
	if len(matches) > m.maxResults {
		matches = matches[:m.maxResults]
	}
	return matches
}

func (m *Matcher) exactTier(norm string) []model.OccupationMatch {
	code, ok := titleSOC[norm]
	if !ok {
		return nil
	}
	return []model.OccupationMatch{{
		Code:       code,
		Title:      canonicalTitle(code, norm),
		Confidence: 1.0,
		Method:     model.MethodExact,
		MatchedKey: norm,
	}}
}

// fuzzyTier appends similarity hits to matches, deduplicating by code against
// the hits already collected, so an exact hit's code never reappears as a
// fuzzy alternate.
func (m *Matcher) fuzzyTier(norm string, matches []model.OccupationMatch) []model.OccupationMatch {
	keys := make([]string, 0, len(titleSOC))
	for k := range titleSOC {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var candidates []model.OccupationMatch
	for _, key := range keys {
		ratio := levenshtein.Similarity(norm, key, nil)
		if ratio < m.threshold {
			continue
		}
		code := titleSOC[key]
		candidates = append(candidates, model.OccupationMatch{
			Code:       code,
			Title:      canonicalTitle(code, key),
			Confidence: ratio,
			Method:     model.MethodFuzzy,
			MatchedKey: key,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	// Dedupe by code, keeping the highest-confidence spelling.
	seen := make(map[string]bool, len(matches)+len(candidates))
	for _, c := range matches {
		seen[c.Code] = true
	}
	for _, c := range candidates {
		if seen[c.Code] {
			continue
		}
		seen[c.Code] = true
		matches = append(matches, c)
	}
	return matches
}

func (m *Matcher) externalTier(ctx context.Context, norm string, matches []model.OccupationMatch) []model.OccupationMatch {
	ext, err := m.external.Search(ctx, norm)
	if err != nil {
		zap.L().Warn("soc: external search failed",
			zap.String("title", norm), zap.Error(err))
		return matches
	}

	seen := make(map[string]bool, len(matches))
	for _, c := range matches {
		seen[c.Code] = true
	}
	for _, c := range ext {
		c.Code = Clean(c.Code)
		if c.Code == "" || seen[c.Code] {
			continue
		}
		seen[c.Code] = true
		c.Method = model.MethodExternal
		matches = append(matches, c)
		if len(matches) >= m.maxResults {
			break
		}
	}
	return matches
}

// normalizeTitle lowercases and collapses whitespace.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// canonicalTitle returns the occupation label for a code, falling back to a
// title-cased rendering of the table key for codes without one.
func canonicalTitle(code, key string) string {
	if t, ok := socTitle[code]; ok {
		return t
	}
	return displayTitle(key)
}

func displayTitle(norm string) string {
	words := strings.Fields(norm)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
