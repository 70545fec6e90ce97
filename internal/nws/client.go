package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the public National Weather Service API endpoint.
	DefaultBaseURL = "https://api.weather.gov"

	// DefaultUserAgent identifies this client to the NWS API, which rejects
	// requests without a User-Agent header.
	DefaultUserAgent = "weather-app/1.0"

	// DefaultTimeout bounds every upstream call.
	DefaultTimeout = 30 * time.Second
)

// ErrUnavailable is the single failure signal for every upstream problem:
// transport errors, non-2xx statuses, and malformed bodies all collapse to
// it. Callers translate it to a fixed user-facing message and cannot tell
// the causes apart.
var ErrUnavailable = errors.New("weather data unavailable")

// Client fetches alert and forecast resources from the NWS API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL. A zero timeout
// falls back to DefaultTimeout; calls are never unbounded.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ActiveAlerts fetches the active alert feature collection for a two-letter
// state code. The code is forwarded as-is; upstream rejection surfaces as
// ErrUnavailable like any other failure.
func (c *Client) ActiveAlerts(ctx context.Context, state string) (*AlertsResponse, error) {
	var resp AlertsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/alerts/active/area/%s", c.baseURL, state), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Points looks up the forecast grid metadata for a coordinate pair. The
// interesting part of the response is the forecast resource URL.
func (c *Client) Points(ctx context.Context, latitude, longitude float64) (*PointsResponse, error) {
	url := fmt.Sprintf("%s/points/%s,%s",
		c.baseURL,
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64))

	var resp PointsResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Forecast fetches a forecast resource by the URL discovered from Points.
func (c *Client) Forecast(ctx context.Context, url string) (*ForecastResponse, error) {
	var resp ForecastResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// getJSON performs one GET with the fixed headers and decodes the body into
// out. Any failure on the way returns ErrUnavailable; no retries.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ErrUnavailable
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrUnavailable
	}

	if err := json.Unmarshal(body, out); err != nil {
		return ErrUnavailable
	}
	return nil
}
