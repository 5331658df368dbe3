package geo_models

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the coordinate is inside the WGS84 range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// BoundingBox is a rectangular extent ordered [west, south, east, north].
type BoundingBox [4]float64

func (b BoundingBox) West() float64  { return b[0] }
func (b BoundingBox) South() float64 { return b[1] }
func (b BoundingBox) East() float64  { return b[2] }
func (b BoundingBox) North() float64 { return b[3] }

// Valid reports whether west < east and south < north.
func (b BoundingBox) Valid() bool {
	return b.West() < b.East() && b.South() < b.North()
}

// SquareAround synthesizes a square bounding box of halfWidth degrees
// around the given coordinate. Used when the geocoder reports no extent.
func SquareAround(c Coordinate, halfWidth float64) BoundingBox {
	return BoundingBox{
		c.Lon - halfWidth,
		c.Lat - halfWidth,
		c.Lon + halfWidth,
		c.Lat + halfWidth,
	}
}

// PolygonRing returns the closed boundary ring of the box in GeoJSON
// [lon, lat] order: SW, NW, NE, SE, closed back at SW.
func (b BoundingBox) PolygonRing() [][2]float64 {
	return [][2]float64{
		{b.West(), b.South()},
		{b.West(), b.North()},
		{b.East(), b.North()},
		{b.East(), b.South()},
		{b.West(), b.South()},
	}
}

// ResolvedArea is the outcome of geocoding a free-text area/city name.
type ResolvedArea struct {
	Coordinate  Coordinate
	BoundingBox BoundingBox
	DisplayName string
}
