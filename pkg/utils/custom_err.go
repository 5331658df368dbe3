package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrGeocodeNoMatch   = errors.New("could not geocode area/city")
	ErrGeocodeFailed    = errors.New("geocoding failed")
	ErrPoiSourceFailed  = errors.New("poi source query failed")
	ErrEnrichmentFailed = errors.New("enrichment service failed")
)
