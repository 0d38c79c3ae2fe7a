package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "compscope.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() }) //nolint:errcheck
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	_, ok, err := s.GetCBSA(ctx, "pflugerville", "tx")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.PutCBSA(ctx, "pflugerville", "tx", "12420"))

	cbsa, ok, err := s.GetCBSA(ctx, "pflugerville", "tx")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12420", cbsa)

	// Key is normalized, so casing and whitespace do not miss.
	cbsa, ok, err = s.GetCBSA(ctx, " Pflugerville ", "TX")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12420", cbsa)
}

func TestSQLiteUpsert(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.PutCBSA(ctx, "pflugerville", "tx", "12420"))
	require.NoError(t, s.PutCBSA(ctx, "pflugerville", "tx", "12421"))

	cbsa, ok, err := s.GetCBSA(ctx, "pflugerville", "tx")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "12421", cbsa)
}

func TestSQLiteNegativeEntry(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.PutCBSA(ctx, "middle of nowhere", "mt", ""))

	cbsa, ok, err := s.GetCBSA(ctx, "middle of nowhere", "mt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, cbsa)
}
