package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/safewalk/safewalk-backend-go/internal/client"
	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/routing"
	"github.com/safewalk/safewalk-backend-go/internal/service"
	"github.com/safewalk/safewalk-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for risk-aware routing
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RouteByAddresses handles POST /api/v1/route/addresses
func (h *RouteHandler) RouteByAddresses(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.RouteByAddresses(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrAddressNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, routing.ErrNoRoute):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, "Failed to compute route: "+err.Error())
		}
		return
	}

	response.Success(c, result)
}
