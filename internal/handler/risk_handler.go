package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/service"
	"github.com/safewalk/safewalk-backend-go/pkg/response"
)

// RiskHandler handles HTTP requests for the risk index surface
type RiskHandler struct {
	service *service.RiskService
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(service *service.RiskService) *RiskHandler {
	return &RiskHandler{service: service}
}

// GetRiskAt handles GET /api/v1/risk/at?lat=&lon=&window=
func (h *RiskHandler) GetRiskAt(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		response.BadRequest(c, "lat and lon are required numeric parameters")
		return
	}

	window, err := models.ParseWindow(c.DefaultQuery("window", string(models.WindowDay)))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	riskVal, severity, found := h.service.PointRisk(window, lat, lon)
	response.Success(c, gin.H{
		"window":   window,
		"risk":     riskVal,
		"severity": severity,
		"found":    found,
	})
}

// ListCells handles GET /api/v1/risk/cells
func (h *RiskHandler) ListCells(c *gin.Context) {
	var filter models.RiskCellFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	if filter.Window != "" {
		if _, err := models.ParseWindow(filter.Window); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	cells, err := h.service.ListCells(filter)
	if err != nil {
		response.InternalError(c, "Failed to list risk cells")
		return
	}

	response.Success(c, gin.H{
		"data":  cells,
		"count": len(cells),
	})
}

// Heatmap handles GET /api/v1/risk/heatmap?window=
func (h *RiskHandler) Heatmap(c *gin.Context) {
	window, err := models.ParseWindow(c.DefaultQuery("window", string(models.WindowDay)))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	heatmap, err := h.service.Heatmap(window)
	if err != nil {
		response.InternalError(c, "Failed to build heatmap")
		return
	}

	response.Success(c, heatmap)
}

// Stats handles GET /api/v1/risk/stats
func (h *RiskHandler) Stats(c *gin.Context) {
	summary, err := h.service.Stats()
	if err != nil {
		response.InternalError(c, "Failed to compute risk stats")
		return
	}

	response.Success(c, gin.H{"windows": summary})
}

// Reload handles POST /api/v1/admin/risk/reload
func (h *RiskHandler) Reload(c *gin.Context) {
	count, err := h.service.Reload()
	if err != nil {
		response.InternalError(c, "Failed to reload risk index")
		return
	}

	response.Success(c, gin.H{"cells": count})
}
