package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mapmind/internal/models/request_models"
	"mapmind/internal/services"
	"mapmind/pkg/utils"
)

type AnalysisController struct {
	analysisService services.AnalysisServiceInterface
}

func NewAnalysisController(analysisService services.AnalysisServiceInterface) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
	}
}

func (a *AnalysisController) AnalyzeArea(c *gin.Context) {
	var req request_models.AnalyzeAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "city and area are required")
		return
	}

	result, err := a.analysisService.Analyze(c.Request.Context(), req.City, req.Area)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Area analyzed successfully")
}

func (a *AnalysisController) GetAreaBoundary(c *gin.Context) {
	area := c.Query("area")
	city := c.Query("city")
	if area == "" || city == "" {
		utils.RespondError(c, http.StatusBadRequest, "area and city query parameters are required")
		return
	}

	boundary, err := a.analysisService.Boundary(c.Request.Context(), city, area)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, boundary, "Boundary fetched successfully")
}

func (a *AnalysisController) GetAreaGeoJSON(c *gin.Context) {
	area := c.Query("area")
	city := c.Query("city")
	if area == "" || city == "" {
		utils.RespondError(c, http.StatusBadRequest, "area and city query parameters are required")
		return
	}

	document, err := a.analysisService.AreaGeoJSON(c.Request.Context(), city, area)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, document, "Area GeoJSON generated successfully")
}
