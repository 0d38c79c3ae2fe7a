package bls

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       map[string]Point
		wantErr    bool
	}{
		{
			name:       "latest point per series",
			statusCode: http.StatusOK,
			body: `{"status":"REQUEST_SUCCEEDED","Results":{"series":[
				{"seriesID":"OEUN000000000000015125213","data":[
					{"year":"2024","period":"A01","value":"132270"},
					{"year":"2023","period":"A01","value":"127260"}]},
				{"seriesID":"OEUN000000000000015125204","data":[
					{"year":"2024","period":"A01","value":"138110"}]},
				{"seriesID":"OEUM001242000000015125211","data":[
					{"year":"2024","period":"A01","value":"-"}]},
				{"seriesID":"OEUS480000000000015125213","data":[]}
			]}}`,
			want: map[string]Point{
				"OEUN000000000000015125213": {Year: "2024", Value: "132270"},
				"OEUN000000000000015125204": {Year: "2024", Value: "138110"},
				"OEUM001242000000015125211": {Year: "2024", Value: "-"},
			},
		},
		{
			name:       "api level failure",
			statusCode: http.StatusOK,
			body:       `{"status":"REQUEST_NOT_PROCESSED","message":["daily threshold exceeded"]}`,
			wantErr:    true,
		},
		{
			name:       "http error",
			statusCode: http.StatusInternalServerError,
			body:       "boom",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/timeseries/data/", r.URL.Path)

				var req seriesRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.NotEmpty(t, req.SeriesID)
				assert.Equal(t, "2023", req.StartYear)

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer srv.Close()

			c := NewClient("", WithBaseURL(srv.URL))
			got, err := c.Fetch(context.Background(), []string{
				"OEUN000000000000015125213",
				"OEUN000000000000015125204",
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchSendsRegistrationKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req seriesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-key", req.RegistrationKey)
		w.Write([]byte(`{"status":"REQUEST_SUCCEEDED","Results":{"series":[]}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Fetch(context.Background(), []string{"OEUN000000000000015125213"})
	require.NoError(t, err)
}

func TestFetchBatches(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req seriesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.LessOrEqual(t, len(req.SeriesID), maxSeriesPerRequest)
		w.Write([]byte(`{"status":"REQUEST_SUCCEEDED","Results":{"series":[]}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	ids := make([]string, maxSeriesPerRequest+5)
	for i := range ids {
		ids[i] = "OEUN000000000000015125213"
	}

	c := NewClient("", WithBaseURL(srv.URL))
	_, err := c.Fetch(context.Background(), ids)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
