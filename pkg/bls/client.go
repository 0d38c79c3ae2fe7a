package bls

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.bls.gov/publicAPI/v2"
	// OEWS publishes annually; the API wants an explicit year window.
	defaultStartYear = "2023"
	defaultEndYear   = "2024"
	// The v2 API accepts up to 50 series per request with a key, 25 without.
	maxSeriesPerRequest = 25
)

// Point is the most recent data point of one series. Value is the raw API
// string and may be SuppressedValue.
type Point struct {
	Year  string
	Value string
}

// Client fetches timeseries data.
type Client interface {
	// Fetch returns the latest point for each requested series ID. Series the
	// API does not know are absent from the map.
	Fetch(ctx context.Context, seriesIDs []string) (map[string]Point, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithYears overrides the survey year window.
func WithYears(start, end string) Option {
	return func(c *httpClient) {
		c.startYear, c.endYear = start, end
	}
}

// WithRateLimit overrides the default request rate.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *httpClient) {
		c.limiter = l
	}
}

type httpClient struct {
	apiKey    string
	baseURL   string
	startYear string
	endYear   string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a BLS API client. The key is optional; unkeyed requests
// get a lower daily quota.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		startYear: defaultStartYear,
		endYear:   defaultEndYear,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type seriesRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type seriesResponse struct {
	Status  string `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year  string `json:"year"`
				Value string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

func (c *httpClient) Fetch(ctx context.Context, seriesIDs []string) (map[string]Point, error) {
	out := make(map[string]Point, len(seriesIDs))
	for start := 0; start < len(seriesIDs); start += maxSeriesPerRequest {
		end := start + maxSeriesPerRequest
		if end > len(seriesIDs) {
			end = len(seriesIDs)
		}
		if err := c.fetchBatch(ctx, seriesIDs[start:end], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *httpClient) fetchBatch(ctx context.Context, ids []string, out map[string]Point) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "bls: rate limit")
	}

	body, err := json.Marshal(seriesRequest{
		SeriesID:        ids,
		StartYear:       c.startYear,
		EndYear:         c.endYear,
		RegistrationKey: c.apiKey,
	})
	if err != nil {
		return eris.Wrap(err, "bls: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/timeseries/data/", bytes.NewReader(body))
	if err != nil {
		return eris.Wrap(err, "bls: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "bls: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "bls: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("bls: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result seriesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return eris.Wrap(err, "bls: unmarshal response")
	}
	if result.Status != "REQUEST_SUCCEEDED" {
		return eris.Errorf("bls: request failed: %s %v", result.Status, result.Message)
	}

	for _, s := range result.Results.Series {
		if len(s.Data) == 0 {
			continue
		}
		// Data points arrive newest first.
		out[s.SeriesID] = Point{Year: s.Data[0].Year, Value: s.Data[0].Value}
	}
	return nil
}
