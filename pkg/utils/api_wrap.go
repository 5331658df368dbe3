package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the pipeline error taxonomy to HTTP statuses:
// mandatory upstream failures (geocode, POI extraction) are 500, enrichment
// failures 502, bad requests 400.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request data")
	case errors.Is(err, ErrGeocodeNoMatch):
		RespondError(c, http.StatusInternalServerError, "Could not geocode area/city")
	case errors.Is(err, ErrGeocodeFailed):
		RespondError(c, http.StatusInternalServerError, "Geocoding failed")
	case errors.Is(err, ErrPoiSourceFailed):
		RespondError(c, http.StatusInternalServerError, "Error fetching POIs from Overpass")
	case errors.Is(err, ErrEnrichmentFailed):
		RespondError(c, http.StatusBadGateway, "LLM API error")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
