// Package usajobs searches the USAJobs API for open federal postings and
// their advertised pay ranges.
package usajobs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://data.usajobs.gov"
	defaultPerPage = 50
)

// Pay interval codes used in PositionRemuneration.
const (
	IntervalAnnual = "PA"
	IntervalHourly = "PH"
)

// Remuneration is one advertised pay range on a posting.
type Remuneration struct {
	Min      float64
	Max      float64
	Interval string // IntervalAnnual or IntervalHourly
}

// Posting is a single open federal position.
type Posting struct {
	Title        string
	Organization string
	Location     string
	Remuneration []Remuneration
}

// Client searches postings.
type Client interface {
	Search(ctx context.Context, keyword, location string) ([]Posting, error)
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
	apiKey    string
	userAgent string // USAJobs requires the registered email as User-Agent
	baseURL   string
	http      *http.Client
}

// NewClient creates a USAJobs client. Both the API key and the registered
// email are required by the API.
func NewClient(apiKey, userAgent string, opts ...Option) Client {
	c := &httpClient{
		apiKey:    apiKey,
		userAgent: userAgent,
		baseURL:   defaultBaseURL,
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

// searchResponse mirrors the slice of the USAJobs payload we consume. The
// API reports remuneration bounds as strings.
type searchResponse struct {
	SearchResult struct {
		SearchResultItems []struct {
			MatchedObjectDescriptor struct {
				PositionTitle           string `json:"PositionTitle"`
				OrganizationName        string `json:"OrganizationName"`
				PositionLocationDisplay string `json:"PositionLocationDisplay"`
				PositionRemuneration    []struct {
					MinimumRange     string `json:"MinimumRange"`
					MaximumRange     string `json:"MaximumRange"`
					RateIntervalCode string `json:"RateIntervalCode"`
				} `json:"PositionRemuneration"`
			} `json:"MatchedObjectDescriptor"`
		} `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

func (c *httpClient) Search(ctx context.Context, keyword, location string) ([]Posting, error) {
	params := url.Values{
		"Keyword":        {keyword},
		"ResultsPerPage": {strconv.Itoa(defaultPerPage)},
	}
	if location != "" {
		params.Set("LocationName", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/search?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "usajobs: create request")
	}
	req.Header.Set("Authorization-Key", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Host", "data.usajobs.gov")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "usajobs: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "usajobs: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("usajobs: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "usajobs: unmarshal response")
	}

	postings := make([]Posting, 0, len(result.SearchResult.SearchResultItems))
	for _, item := range result.SearchResult.SearchResultItems {
		d := item.MatchedObjectDescriptor
		p := Posting{
			Title:        d.PositionTitle,
			Organization: d.OrganizationName,
			Location:     d.PositionLocationDisplay,
		}
		for _, r := range d.PositionRemuneration {
			min, minErr := strconv.ParseFloat(r.MinimumRange, 64)
			max, maxErr := strconv.ParseFloat(r.MaximumRange, 64)
			if minErr != nil && maxErr != nil {
				continue
			}
			p.Remuneration = append(p.Remuneration, Remuneration{
				Min:      min,
				Max:      max,
				Interval: r.RateIntervalCode,
			})
		}
		postings = append(postings, p)
	}
	return postings, nil
}
