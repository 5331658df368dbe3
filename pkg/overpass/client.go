// Package overpass provides a client for the Overpass API interpreter.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://overpass-api.de/api/interpreter"

// Center is the computed centroid of a way or relation.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is one OSM element of an Overpass response. Nodes carry Lat/Lon
// directly; ways and relations carry only Center (from `out center`).
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Position returns the element's coordinates: the node's own point, or the
// centroid for composite elements. ok is false when neither is present.
func (e Element) Position() (lat, lon float64, ok bool) {
	if e.Type == "node" {
		if e.Lat == nil || e.Lon == nil {
			return 0, 0, false
		}
		return *e.Lat, *e.Lon, true
	}
	if e.Center == nil {
		return 0, 0, false
	}
	return e.Center.Lat, e.Center.Lon, true
}

type response struct {
	Elements []Element `json:"elements"`
}

// Client executes Overpass QL queries.
type Client interface {
	Query(ctx context.Context, query string) ([]Element, error)
}

// Option configures the client.
type Option func(*client)

func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Overpass client with the given options.
func NewClient(opts ...Option) Client {
	c := &client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Query(ctx context.Context, query string) ([]Element, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass: status %d", resp.StatusCode)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("overpass: decode response: %w", err)
	}
	return decoded.Elements, nil
}

// AroundQuery builds the livability POI query: all elements within
// radiusMeters of the point across the fixed tag families, with centroids
// for composite elements.
func AroundQuery(lat, lon float64, radiusMeters int) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:300];\n(\n")
	for _, family := range []string{
		`"amenity"`,
		`"leisure"`,
		`"shop"`,
		`"office"`,
		`"public_transport"`,
		`"railway"~"^(station|halt|tram_stop)$"`,
		`"healthcare"`,
		`"education"`,
	} {
		fmt.Fprintf(&b, "  nwr[%s](around:%d,%f,%f);\n", family, radiusMeters, lat, lon)
	}
	b.WriteString(");\nout center;")
	return b.String()
}
