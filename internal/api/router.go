package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safewalk/safewalk-backend-go/internal/config"
	"github.com/safewalk/safewalk-backend-go/internal/handler"
	"github.com/safewalk/safewalk-backend-go/internal/middleware"
)

// SetupRouter wires all HTTP routes
func SetupRouter(cfg *config.Config, routeHandler *handler.RouteHandler, riskHandler *handler.RiskHandler, authHandler *handler.AuthHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "SafeWalk Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)

		// Routing costs two external calls per request; keep it rate limited
		route := api.Group("/route", middleware.RateLimit(30, time.Minute))
		{
			route.POST("/addresses", routeHandler.RouteByAddresses)
		}

		riskGroup := api.Group("/risk")
		{
			riskGroup.GET("/at", riskHandler.GetRiskAt)
			riskGroup.GET("/cells", riskHandler.ListCells)
			riskGroup.GET("/heatmap", riskHandler.Heatmap)
			riskGroup.GET("/stats", riskHandler.Stats)
		}

		admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret))
		{
			admin.POST("/risk/reload", riskHandler.Reload)
		}
	}

	return r
}
