package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const locationBody = `{"result":{"addressMatches":[{"coordinates":{"x":-97.7431,"y":30.2672},"matchedAddress":"Austin, TX"}]}}`

const geographyBody = `{"result":{"geographies":{"Metropolitan Statistical Areas":[{"GEOID":"12420","NAME":"Austin-Round Rock-Georgetown, TX Metro Area"}]}}}`

func TestResolveCBSA(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geocoder/locations/onelineaddress":
			assert.Equal(t, "austin, tx", r.URL.Query().Get("address"))
			w.Write([]byte(locationBody)) //nolint:errcheck
		case "/geocoder/geographies/coordinates":
			assert.Equal(t, "Metropolitan Statistical Areas", r.URL.Query().Get("layers"))
			w.Write([]byte(geographyBody)) //nolint:errcheck
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	cbsa, name, err := c.ResolveCBSA(context.Background(), "austin", "tx")

	require.NoError(t, err)
	assert.Equal(t, "12420", cbsa)
	assert.Equal(t, "Austin-Round Rock-Georgetown, TX Metro Area", name)
}

func TestResolveCBSANoAddressMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"result":{"addressMatches":[]}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, _, err := c.ResolveCBSA(context.Background(), "nowhere", "xx")

	assert.Error(t, err)
}

func TestResolveCBSAOutsideMetro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/geocoder/locations/onelineaddress" {
			w.Write([]byte(locationBody)) //nolint:errcheck
			return
		}
		w.Write([]byte(`{"result":{"geographies":{"Metropolitan Statistical Areas":[]}}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	cbsa, name, err := c.ResolveCBSA(context.Background(), "rural town", "mt")

	require.NoError(t, err)
	assert.Empty(t, cbsa)
	assert.Empty(t, name)
}

func TestResolveCBSAServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, _, err := c.ResolveCBSA(context.Background(), "austin", "tx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}
