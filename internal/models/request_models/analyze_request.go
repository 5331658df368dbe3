package request_models

// AnalyzeAreaRequest is the body of POST /analyze-area.
type AnalyzeAreaRequest struct {
	City string `json:"city" binding:"required"`
	Area string `json:"area" binding:"required"`
}
