package service

import (
	"context"
	"fmt"
	"math"

	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/risk"
	"github.com/safewalk/safewalk-backend-go/internal/routing"
)

// Geocoder abstracts the external geocoding service
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, error)
}

// RouteService orchestrates geocoding, candidate scoring, and selection
type RouteService struct {
	geocoder   Geocoder
	directions routing.Directions
	index      *risk.Holder
}

// NewRouteService creates a new route service
func NewRouteService(geocoder Geocoder, directions routing.Directions, index *risk.Holder) *RouteService {
	return &RouteService{
		geocoder:   geocoder,
		directions: directions,
		index:      index,
	}
}

// RouteByAddresses geocodes both endpoints, scores direct and (when the best
// direct route is too risky) detour candidates, and returns the selection
func (s *RouteService) RouteByAddresses(ctx context.Context, req models.RouteRequest) (*models.ScoredRoute, error) {
	req.ApplyDefaults()

	window, err := models.ParseWindow(req.TimeWindow)
	if err != nil {
		return nil, err
	}

	start, err := s.geocoder.Geocode(ctx, req.StartAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode start: %w", err)
	}
	end, err := s.geocoder.Geocode(ctx, req.EndAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode end: %w", err)
	}

	// One immutable index handle for the whole request
	scorer := routing.NewScorer(s.index.Current())
	selector := routing.NewSelector(s.directions, scorer)

	result, err := selector.ChooseRoute(ctx, start, end, routing.SelectOptions{
		Window:        window,
		Alpha:         *req.Alpha,
		RiskThreshold: *req.RiskThreshold,
		DetourOffsetM: *req.DetourOffsetM,
		BufferM:       *req.BufferM,
	})
	if err != nil {
		return nil, err
	}

	result.DistanceKm = round3(result.DistanceKm)
	result.AvgRisk = round3(result.AvgRisk)
	result.CrimesPerKm = round3(result.CrimesPerKm)
	return result, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
