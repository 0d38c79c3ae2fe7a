// Package jsearch queries the JSearch API (RapidAPI) for salary estimates
// aggregated from live job postings.
package jsearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://jsearch.p.rapidapi.com"
	defaultHost    = "jsearch.p.rapidapi.com"
)

// SalaryEstimate is one publisher's aggregate for a title and location.
type SalaryEstimate struct {
	Location     string  `json:"location"`
	JobTitle     string  `json:"job_title"`
	Publisher    string  `json:"publisher_name"`
	MinSalary    float64 `json:"min_salary"`
	MaxSalary    float64 `json:"max_salary"`
	MedianSalary float64 `json:"median_salary"`
	SalaryPeriod string  `json:"salary_period"` // YEAR, MONTH, HOUR
	SalaryCount  int     `json:"salary_count"`  // postings behind the estimate, 0 when unreported
}

// Client fetches salary estimates.
type Client interface {
	EstimatedSalary(ctx context.Context, jobTitle, location string) ([]SalaryEstimate, error)
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

type httpClient struct {
	apiKey  string
	baseURL string
	host    string
	http    *http.Client
}

// NewClient creates a JSearch client with a RapidAPI key.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		host:    defaultHost,
		http: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type salaryResponse struct {
	Status string           `json:"status"`
	Data   []SalaryEstimate `json:"data"`
}

func (c *httpClient) EstimatedSalary(ctx context.Context, jobTitle, location string) ([]SalaryEstimate, error) {
	// Restrict to US results: a bare "Austin, Texas" otherwise matches
	// lookalike locations abroad.
	if !strings.Contains(strings.ToLower(location), "united states") {
		location += ", United States"
	}

	params := url.Values{
		"job_title": {jobTitle},
		"location":  {location},
		"country":   {"us"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/estimated-salary?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "jsearch: create request")
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "jsearch: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "jsearch: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("jsearch: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result salaryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "jsearch: unmarshal response")
	}
	if result.Status != "OK" {
		return nil, eris.Errorf("jsearch: request failed: %s", result.Status)
	}

	return result.Data, nil
}
