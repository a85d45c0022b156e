package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

// Objective weights: distance dominates, risk contribution is scaled by the
// caller-supplied alpha
const (
	distanceWeight = 0.7
	riskWeight     = 0.3
)

// maxCandidatesPerCall bounds how many alternatives from one directions
// response are scored
const maxCandidatesPerCall = 3

// ErrNoRoute indicates the directions service returned no candidates
var ErrNoRoute = errors.New("no route found between the given points")

// Directions abstracts the external directions service
type Directions interface {
	// Routes returns up to several alternatives through the waypoints, or an
	// empty slice when no route exists
	Routes(ctx context.Context, waypoints []models.Coordinate) ([]models.DirectionsRoute, error)
}

// SelectOptions carries the per-request tuning knobs
type SelectOptions struct {
	Window        models.TimeWindow
	Alpha         float64
	RiskThreshold float64
	DetourOffsetM float64
	BufferM       float64
}

// Selector orchestrates candidate generation and picks the best route by a
// weighted distance/risk objective
type Selector struct {
	directions Directions
	scorer     *Scorer
}

// NewSelector creates a selector over the given directions client and scorer
func NewSelector(directions Directions, scorer *Scorer) *Selector {
	return &Selector{directions: directions, scorer: scorer}
}

// ChooseRoute requests direct candidates, optionally adds detour candidates
// when the best direct route is too risky, and returns the minimum-score
// candidate with its severity aggregate. Ties keep the first-seen candidate,
// so originals win over detours at equal score.
func (sel *Selector) ChooseRoute(ctx context.Context, start, end models.Coordinate, opts SelectOptions) (*models.ScoredRoute, error) {
	routes, err := sel.directions.Routes(ctx, []models.Coordinate{start, end})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	pool := sel.scoreCandidates(routes, models.OriginDirect, opts)

	best := pool[0]
	for _, c := range pool[1:] {
		if c.Score < best.Score {
			best = c
		}
	}

	if best.AvgRisk >= opts.RiskThreshold {
		if wp, ok := sel.scorer.ProposeDetourWaypoint(best.Geometry, opts.Window, opts.DetourOffsetM); ok {
			detourRoutes, err := sel.directions.Routes(ctx, []models.Coordinate{start, wp, end})
			if err != nil {
				return nil, fmt.Errorf("detour directions request failed: %w", err)
			}
			// An empty detour result just leaves the original pool in place
			pool = append(pool, sel.scoreCandidates(detourRoutes, models.OriginDetour, opts)...)
		}
	}

	chosen := pool[0]
	for _, c := range pool[1:] {
		if c.Score < chosen.Score {
			chosen = c
		}
	}

	sevScore, perKm := sel.scorer.SeverityForRoute(chosen.Geometry, chosen.DistanceKm, opts.Window, opts.BufferM)

	return &models.ScoredRoute{
		Geometry:      chosen.Geometry,
		DistanceKm:    chosen.DistanceKm,
		AvgRisk:       chosen.AvgRisk,
		SeverityScore: sevScore,
		CrimesPerKm:   perKm,
		DetourUsed:    chosen.Origin == models.OriginDetour,
	}, nil
}

func (sel *Selector) scoreCandidates(routes []models.DirectionsRoute, origin string, opts SelectOptions) []models.CandidateRoute {
	if len(routes) > maxCandidatesPerCall {
		routes = routes[:maxCandidatesPerCall]
	}

	candidates := make([]models.CandidateRoute, 0, len(routes))
	for _, r := range routes {
		distKm := r.DistanceMeters / 1000.0
		if distKm <= 0 {
			distKm = pathLengthKm(r.Geometry)
		}
		avg := sel.scorer.AverageRisk(r.Geometry, opts.Window)
		candidates = append(candidates, models.CandidateRoute{
			Origin:     origin,
			Score:      distKm*distanceWeight + avg*opts.Alpha*riskWeight,
			DistanceKm: distKm,
			AvgRisk:    avg,
			Geometry:   r.Geometry,
		})
	}

	return candidates
}

func pathLengthKm(geom []models.Coordinate) float64 {
	points := make([]spatial.Point, len(geom))
	for i, c := range geom {
		points[i] = spatial.Point{Lat: c.Lat, Lon: c.Lon}
	}
	return spatial.PathLength(points) / 1000.0
}
