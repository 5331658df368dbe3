package geo_models

import (
	"bytes"
	"encoding/json"
)

// ElementKind distinguishes point elements from composite ones, which only
// carry a computed centroid.
type ElementKind string

const (
	KindNode          ElementKind = "node"
	KindWayOrRelation ElementKind = "way_or_relation"
)

// RawPoi is a single extracted point of interest. Category is carried as the
// key of the CategorizedPois mapping, not serialized per entry.
type RawPoi struct {
	Coordinate
	Category string            `json:"-"`
	Tags     map[string]string `json:"tags,omitempty"`
	Kind     ElementKind       `json:"type"`
}

// Name returns the POI's name tag, falling back to the given label.
func (p RawPoi) Name(fallback string) string {
	if name, ok := p.Tags["name"]; ok && name != "" {
		return name
	}
	return fallback
}

// CategorizedPois maps raw category strings to POIs while preserving the
// order in which categories were first seen. Iteration order drives both
// feature emission and legacy palette assignment, so it must not depend on
// map ordering.
type CategorizedPois struct {
	order []string
	pois  map[string][]RawPoi
}

func NewCategorizedPois() *CategorizedPois {
	return &CategorizedPois{pois: make(map[string][]RawPoi)}
}

// Add appends a POI under the given raw category, registering the category
// on first use.
func (c *CategorizedPois) Add(category string, poi RawPoi) {
	if _, ok := c.pois[category]; !ok {
		c.order = append(c.order, category)
	}
	poi.Category = category
	c.pois[category] = append(c.pois[category], poi)
}

// Categories returns raw category keys in insertion order.
func (c *CategorizedPois) Categories() []string {
	return c.order
}

// Get returns the POIs of one raw category in extraction order.
func (c *CategorizedPois) Get(category string) []RawPoi {
	return c.pois[category]
}

// Total returns the number of POIs across all categories.
func (c *CategorizedPois) Total() int {
	n := 0
	for _, pois := range c.pois {
		n += len(pois)
	}
	return n
}

// MarshalJSON emits a JSON object keyed by raw category, preserving
// insertion order.
func (c *CategorizedPois) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.pois[category])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
