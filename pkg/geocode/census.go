package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"
)

// censusLocationResponse is the JSON response from the one-line address API.
type censusLocationResponse struct {
	Result struct {
		AddressMatches []struct {
			Coordinates struct {
				X float64 `json:"x"` // longitude
				Y float64 `json:"y"` // latitude
			} `json:"coordinates"`
			MatchedAddress string `json:"matchedAddress"`
		} `json:"addressMatches"`
	} `json:"result"`
}

// censusGeographyResponse is the JSON response from the coordinates API. The
// geographies object is keyed by layer name.
type censusGeographyResponse struct {
	Result struct {
		Geographies map[string][]struct {
			GeoID string `json:"GEOID"`
			Name  string `json:"NAME"`
		} `json:"geographies"`
	} `json:"result"`
}

// ResolveCBSA runs the two-step lookup: city/state to coordinates, then
// coordinates to the metropolitan statistical area containing them.
func (c *httpClient) ResolveCBSA(ctx context.Context, city, state string) (string, string, error) {
	lon, lat, ok, err := c.locate(ctx, city, state)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", eris.Errorf("geocode: no address match for %q, %q", city, state)
	}
	return c.metroAt(ctx, lon, lat)
}

func (c *httpClient) locate(ctx context.Context, city, state string) (lon, lat float64, ok bool, err error) {
	params := url.Values{
		"address":   {city + ", " + state},
		"benchmark": {censusBenchmark},
		"format":    {"json"},
	}

	var result censusLocationResponse
	if err := c.get(ctx, "/geocoder/locations/onelineaddress", params, &result); err != nil {
		return 0, 0, false, err
	}
	if len(result.Result.AddressMatches) == 0 {
		return 0, 0, false, nil
	}
	m := result.Result.AddressMatches[0]
	return m.Coordinates.X, m.Coordinates.Y, true, nil
}

func (c *httpClient) metroAt(ctx context.Context, lon, lat float64) (string, string, error) {
	params := url.Values{
		"x":         {fmt.Sprintf("%f", lon)},
		"y":         {fmt.Sprintf("%f", lat)},
		"benchmark": {censusBenchmark},
		"vintage":   {censusVintage},
		"layers":    {censusMetroLayer},
		"format":    {"json"},
	}

	var result censusGeographyResponse
	if err := c.get(ctx, "/geocoder/geographies/coordinates", params, &result); err != nil {
		return "", "", err
	}

	metros := result.Result.Geographies[censusMetroLayer]
	if len(metros) == 0 {
		return "", "", nil
	}
	return metros[0].GeoID, metros[0].Name, nil
}

func (c *httpClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "geocode: rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "geocode: build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "geocode: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "geocode: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("geocode: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "geocode: unmarshal response")
	}
	return nil
}
