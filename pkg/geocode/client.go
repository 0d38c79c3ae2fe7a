// Package geocode resolves city/state pairs to CBSA metro codes using the US
// Census geocoding API. No key is required; requests are rate limited to stay
// friendly to the public endpoint.
package geocode

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://geocoding.geo.census.gov"
	censusBenchmark  = "Public_AR_Current"
	censusVintage    = "Current_Current"
	censusMetroLayer = "Metropolitan Statistical Areas"
)

// Client resolves locations to CBSA codes.
type Client interface {
	// ResolveCBSA returns the 5-digit CBSA code and metro name for a city and
	// two-letter state. An empty CBSA with a nil error means the point lies
	// outside every metropolitan statistical area.
	ResolveCBSA(ctx context.Context, city, state string) (cbsa, name string, err error)
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

// WithRateLimit overrides the default request rate.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *httpClient) {
		c.limiter = l
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Census geocoding client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}
