package jsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatedSalary(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantLen    int
		wantErr    string
	}{
		{
			name:       "two publishers",
			statusCode: http.StatusOK,
			body: `{"status":"OK","data":[
				{"location":"Austin, Texas","job_title":"Software Engineer","publisher_name":"Glassdoor","min_salary":95000,"max_salary":160000,"median_salary":124000,"salary_period":"YEAR","salary_count":125},
				{"location":"Austin, Texas","job_title":"Software Engineer","publisher_name":"Payscale","min_salary":44.5,"max_salary":78.1,"median_salary":59.6,"salary_period":"HOUR","salary_count":63}
			]}`,
			wantLen: 2,
		},
		{
			name:       "api level failure",
			statusCode: http.StatusOK,
			body:       `{"status":"ERROR","data":[]}`,
			wantErr:    "request failed",
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			body:       `{"message":"quota exceeded"}`,
			wantErr:    "unexpected status 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/estimated-salary", r.URL.Path)
				assert.Equal(t, "software engineer", r.URL.Query().Get("job_title"))
				assert.Equal(t, "Austin, Texas, United States", r.URL.Query().Get("location"))
				assert.Equal(t, "us", r.URL.Query().Get("country"))
				assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer srv.Close()

			c := NewClient("test-key", WithBaseURL(srv.URL))
			got, err := c.EstimatedSalary(context.Background(), "software engineer", "Austin, Texas")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, "Glassdoor", got[0].Publisher)
			assert.Equal(t, 124000.0, got[0].MedianSalary)
			assert.Equal(t, "HOUR", got[1].SalaryPeriod)
		})
	}
}

func TestEstimatedSalaryNoDoubleUSSuffix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "United States", r.URL.Query().Get("location"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		w.Write([]byte(`{"status":"OK","data":[]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.EstimatedSalary(context.Background(), "software engineer", "United States")
	require.NoError(t, err)
}
