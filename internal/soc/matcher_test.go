package soc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compscope/internal/model"
)

type fakeExternal struct {
	matches []model.OccupationMatch
	err     error
	calls   int
}

func (f *fakeExternal) Search(_ context.Context, _ string) ([]model.OccupationMatch, error) {
	f.calls++
	return f.matches, f.err
}

func TestMatcherExact(t *testing.T) {
	m := NewMatcher()

	got := m.Match(context.Background(), "Senior Data Engineer")

	require.NotEmpty(t, got)
	assert.Equal(t, "15-1243.01", got[0].Code)
	assert.Equal(t, "Data Warehousing Specialists", got[0].Title)
	assert.Equal(t, model.MethodExact, got[0].Method)
	assert.Equal(t, 1.0, got[0].Confidence)

	// The fuzzy tier still runs and contributes alternates under other codes.
	require.Len(t, got, 2)
	assert.Equal(t, "15-1252.00", got[1].Code)
	assert.Equal(t, model.MethodFuzzy, got[1].Method)
	assert.Equal(t, "senior software engineer", got[1].MatchedKey)
}

func TestMatcherExactKeepsFuzzyAlternates(t *testing.T) {
	m := NewMatcher()

	got := m.Match(context.Background(), "frontend developer")

	require.Len(t, got, 2)
	assert.Equal(t, "15-1254.00", got[0].Code)
	assert.Equal(t, "Web Developers", got[0].Title)
	assert.Equal(t, model.MethodExact, got[0].Method)

	// "backend developer" carries a different code and clears the threshold;
	// spellings sharing the exact hit's code never reappear.
	assert.Equal(t, "15-1252.00", got[1].Code)
	assert.Equal(t, model.MethodFuzzy, got[1].Method)
	assert.Equal(t, "backend developer", got[1].MatchedKey)
	assert.GreaterOrEqual(t, got[1].Confidence, 0.68)
	assert.Less(t, got[1].Confidence, 1.0)
}

func TestMatcherNormalizesInput(t *testing.T) {
	m := NewMatcher()

	got := m.Match(context.Background(), "  REGISTERED   nurse ")

	require.Len(t, got, 1)
	assert.Equal(t, "29-1141.00", got[0].Code)
	assert.Equal(t, model.MethodExact, got[0].Method)
}

func TestMatcherFuzzy(t *testing.T) {
	m := NewMatcher()

	// Typo: not in the table, but close to "software engineer".
	got := m.Match(context.Background(), "sofware engineer")

	require.NotEmpty(t, got)
	assert.Equal(t, "15-1252.00", got[0].Code)
	assert.Equal(t, "Software Developers", got[0].Title)
	assert.Equal(t, model.MethodFuzzy, got[0].Method)
	assert.GreaterOrEqual(t, got[0].Confidence, 0.68)
	assert.Less(t, got[0].Confidence, 1.0)
	assert.Equal(t, "software engineer", got[0].MatchedKey)

	// Descending confidence, no duplicate codes, capped at five.
	assert.LessOrEqual(t, len(got), 5)
	seen := map[string]bool{}
	for i, c := range got {
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
		if i > 0 {
			assert.LessOrEqual(t, c.Confidence, got[i-1].Confidence)
		}
	}
}

func TestMatcherUnmatchable(t *testing.T) {
	m := NewMatcher()

	assert.Empty(t, m.Match(context.Background(), "zzzzqqqq"))
	assert.Empty(t, m.Match(context.Background(), ""))
	assert.Empty(t, m.Match(context.Background(), "   "))
}

func TestMatcherExternalTier(t *testing.T) {
	t.Run("appends after local results without re-sorting", func(t *testing.T) {
		ext := &fakeExternal{matches: []model.OccupationMatch{
			{Code: "13-2099.01", Title: "Financial Quantitative Analysts", Confidence: 0.99},
			{Code: "19-3011.00", Title: "Economists", Confidence: 0.95},
		}}
		m := NewMatcher(WithExternal(ext))

		got := m.Match(context.Background(), "economist")

		require.Len(t, got, 2)
		// The exact hit stays first even though the external candidate
		// reported a higher score; duplicates are dropped.
		assert.Equal(t, "19-3011.00", got[0].Code)
		assert.Equal(t, model.MethodExact, got[0].Method)
		assert.Equal(t, "13-2099.01", got[1].Code)
		assert.Equal(t, model.MethodExternal, got[1].Method)
		assert.Equal(t, 1, ext.calls)
	})

	t.Run("skipped when two or more local results exist", func(t *testing.T) {
		ext := &fakeExternal{}
		m := NewMatcher(WithExternal(ext))

		// Exact hit plus a fuzzy alternate already satisfy the minimum.
		got := m.Match(context.Background(), "senior data engineer")

		require.GreaterOrEqual(t, len(got), 2)
		assert.Equal(t, 0, ext.calls)
	})

	t.Run("failure degrades to local results", func(t *testing.T) {
		ext := &fakeExternal{err: errors.New("onet down")}
		m := NewMatcher(WithExternal(ext))

		got := m.Match(context.Background(), "economist")

		require.Len(t, got, 1)
		assert.Equal(t, model.MethodExact, got[0].Method)
	})
}

func TestMatcherMaxResults(t *testing.T) {
	m := NewMatcher(WithMaxResults(1), WithThreshold(0.5))

	got := m.Match(context.Background(), "sofware engineer")

	assert.Len(t, got, 1)
}
