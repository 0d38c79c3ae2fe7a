package onet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/online/search", r.URL.Path)
		assert.Equal(t, "data engineer", r.URL.Query().Get("keyword"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "secret", pass)

		w.Write([]byte(`{"occupation":[
			{"code":"15-1243.01","title":"Data Warehousing Specialists","relevance_score":100},
			{"code":"15-2051.00","title":"Data Scientists","relevance_score":86}
		]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient("user", "secret", WithBaseURL(srv.URL))
	got, err := c.Search(context.Background(), "data engineer")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "15-1243.01", got[0].Code)
	assert.Equal(t, 100.0, got[0].RelevanceScore)
}

func TestSearchBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("user", "wrong", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "nurse")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")
}
