package main

import (
	"log"

	"github.com/safewalk/safewalk-backend-go/internal/api"
	"github.com/safewalk/safewalk-backend-go/internal/client"
	"github.com/safewalk/safewalk-backend-go/internal/config"
	"github.com/safewalk/safewalk-backend-go/internal/database"
	"github.com/safewalk/safewalk-backend-go/internal/handler"
	"github.com/safewalk/safewalk-backend-go/internal/repository"
	"github.com/safewalk/safewalk-backend-go/internal/risk"
	"github.com/safewalk/safewalk-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if cfg.MapboxToken == "" {
		log.Fatal("MAPBOX_TOKEN environment variable is required")
	}

	// A missing or unreadable index is degraded operation, not a startup
	// failure: every lookup falls back to zero risk and routing proceeds on
	// distance alone. An absent database file simply loads zero cells.
	index := risk.Empty(cfg.CellSizeDeg)
	var riskRepo *repository.RiskRepository

	if err := database.Init(database.Config{Path: cfg.RiskDBPath}); err != nil {
		log.Printf("Failed to open risk database %s, continuing with an empty index: %v", cfg.RiskDBPath, err)
	} else {
		defer database.Close()
		repo := repository.NewRiskRepository(database.GetDB())
		if err := repo.EnsureSchema(); err != nil {
			log.Printf("Failed to ensure risk schema, continuing with an empty index: %v", err)
		} else {
			riskRepo = repo
			cells, err := repo.LoadAll()
			if err != nil {
				log.Printf("Failed to load risk cells, continuing with an empty index: %v", err)
			} else {
				index = risk.NewIndex(cfg.CellSizeDeg, cells)
				log.Printf("Loaded risk index from %s: %d cells", cfg.RiskDBPath, len(cells))
			}
		}
	}

	holder := risk.NewHolder(index)
	mapbox := client.NewMapbox(cfg.MapboxToken)

	routeService := service.NewRouteService(mapbox, mapbox, holder)
	riskService := service.NewRiskService(riskRepo, holder, cfg.CellSizeDeg)

	router := api.SetupRouter(cfg,
		handler.NewRouteHandler(routeService),
		handler.NewRiskHandler(riskService),
		handler.NewAuthHandler(cfg),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
