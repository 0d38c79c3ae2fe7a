// Package onet searches the O*NET Web Services occupation taxonomy by
// keyword. Credentials come from the free O*NET developer account.
package onet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://services.onetcenter.org/ws"

// Occupation is one keyword-search hit. RelevanceScore is O*NET's 0-100
// ranking signal.
type Occupation struct {
	Code           string  `json:"code"`
	Title          string  `json:"title"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Client searches the occupation taxonomy.
type Client interface {
	Search(ctx context.Context, keyword string) ([]Occupation, error)
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
	username string
	password string
	baseURL  string
	http     *http.Client
}

// NewClient creates an O*NET Web Services client with basic-auth credentials.
func NewClient(username, password string, opts ...Option) Client {
	c := &httpClient{
		username: username,
		password: password,
		baseURL:  defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
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

type searchResponse struct {
	Occupation []Occupation `json:"occupation"`
}

func (c *httpClient) Search(ctx context.Context, keyword string) ([]Occupation, error) {
	params := url.Values{"keyword": {keyword}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/online/search?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "onet: create request")
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "onet: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "onet: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("onet: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "onet: unmarshal response")
	}

	return result.Occupation, nil
}
