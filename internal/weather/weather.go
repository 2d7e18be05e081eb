package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Error taxonomy for the weather handler.
var (
	ErrAuth     = errors.New("weather auth error")
	ErrNotFound = errors.New("location not found")
	ErrNetwork  = errors.New("weather network error")
)

// Client is a minimal OpenWeatherMap current-conditions client.
type Client struct {
	apiBase    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a weather client for the given API base URL
// (e.g. "https://api.openweathermap.org").
func NewClient(apiBase, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiBase: apiBase,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Report holds the parsed current conditions for one location.
type Report struct {
	Location    string
	Description string
	TempC       float64
	Humidity    int
	WindSpeed   float64
}

// String renders the one-line summary shown to the user.
func (r Report) String() string {
	return fmt.Sprintf("Weather in %s: %s, %s°C",
		r.Location, r.Description, strconv.FormatFloat(r.TempC, 'f', -1, 64))
}

type apiResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

// Current fetches current conditions for the location, metric units.
// Invalid API key → ErrAuth, unknown location → ErrNotFound, transport
// failure → ErrNetwork.
func (c *Client) Current(ctx context.Context, location string) (Report, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiBase+"/data/2.5/weather?"+params.Encode(), nil)
	if err != nil {
		return Report{}, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return Report{}, fmt.Errorf("%w: invalid api key", ErrAuth)
	case resp.StatusCode == http.StatusNotFound:
		return Report{}, fmt.Errorf("%w: %q", ErrNotFound, location)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return Report{}, fmt.Errorf("weather provider status=%d body=%s",
			resp.StatusCode, truncate(string(body), 200))
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Report{}, fmt.Errorf("parse weather response: %w", err)
	}
	if len(parsed.Weather) == 0 {
		return Report{}, fmt.Errorf("weather response missing conditions for %q", location)
	}

	name := parsed.Name
	if name == "" {
		name = location
	}
	return Report{
		Location:    name,
		Description: parsed.Weather[0].Description,
		TempC:       parsed.Main.Temp,
		Humidity:    parsed.Main.Humidity,
		WindSpeed:   parsed.Wind.Speed,
	}, nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
