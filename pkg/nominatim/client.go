// Package nominatim provides a minimal client for the Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "MapMind/1.0"
)

// ErrNoResult is returned when the query matches no known place.
var ErrNoResult = errors.New("nominatim: no result")

// Result is the best match for a search query. Extent, when reported, is
// reordered to [west, south, east, north]; nil when Nominatim reports no
// usable bounding box.
type Result struct {
	Lat         float64
	Lon         float64
	DisplayName string
	Extent      *[4]float64
}

// Client resolves free-text place names.
type Client interface {
	Search(ctx context.Context, query string) (*Result, error)
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the Nominatim endpoint.
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit. The public Nominatim
// instance requires at most 1 req/s.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithUserAgent sets the User-Agent header required by the Nominatim usage
// policy.
func WithUserAgent(ua string) Option {
	return func(c *client) {
		c.userAgent = ua
	}
}

type client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Nominatim client with the given options.
func NewClient(opts ...Option) Client {
	c := &client{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(1, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchRow is one entry of the Nominatim JSON response. Coordinates are
// strings; boundingbox is [south, north, west, east].
type searchRow struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	BoundingBox []string `json:"boundingbox"`
}

func (c *client) Search(ctx context.Context, query string) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("nominatim: rate limit: %w", err)
	}

	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}
	reqURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim: status %d", resp.StatusCode)
	}

	var rows []searchRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("nominatim: decode response: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoResult
	}

	row := rows[0]
	lat, err := strconv.ParseFloat(row.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: parse lat %q: %w", row.Lat, err)
	}
	lon, err := strconv.ParseFloat(row.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: parse lon %q: %w", row.Lon, err)
	}

	return &Result{
		Lat:         lat,
		Lon:         lon,
		DisplayName: row.DisplayName,
		Extent:      parseExtent(row.BoundingBox),
	}, nil
}

// parseExtent reorders Nominatim's [south, north, west, east] strings into
// [west, south, east, north] floats. A missing or malformed box yields nil;
// the caller synthesizes a fallback extent.
func parseExtent(box []string) *[4]float64 {
	if len(box) != 4 {
		return nil
	}
	vals := make([]float64, 4)
	for i, s := range box {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		vals[i] = v
	}
	return &[4]float64{vals[2], vals[0], vals[3], vals[1]}
}
