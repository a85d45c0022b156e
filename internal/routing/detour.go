package routing

import (
	"math"

	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

// ProposeDetourWaypoint places a waypoint offset perpendicular to the local
// direction of travel at the route's highest-risk vertex, on whichever side
// samples lower risk (the +90° side wins ties). Single-shot heuristic: the
// selector is responsible for requesting and re-scoring a route through it.
// Returns ok=false for an empty route.
func (s *Scorer) ProposeDetourWaypoint(geom []models.Coordinate, window models.TimeWindow, offsetM float64) (models.Coordinate, bool) {
	idx, _, worst, ok := s.WorstVertex(geom, window)
	if !ok {
		return models.Coordinate{}, false
	}

	// Local bearing from the predecessor, or the successor when the worst
	// vertex is the first point
	j := idx - 1
	if idx == 0 {
		j = idx + 1
		if j > len(geom)-1 {
			j = len(geom) - 1
		}
	}
	neighbor := geom[j]
	bearing := spatial.Bearing(worst.Lat, worst.Lon, neighbor.Lat, neighbor.Lon)

	leftBearing := math.Mod(bearing+90, 360)
	rightBearing := math.Mod(bearing+270, 360)

	leftLat, leftLon := spatial.DestinationPoint(worst.Lat, worst.Lon, leftBearing, offsetM)
	rightLat, rightLon := spatial.DestinationPoint(worst.Lat, worst.Lon, rightBearing, offsetM)

	leftRisk := s.idx.Risk(window, leftLat, leftLon)
	rightRisk := s.idx.Risk(window, rightLat, rightLon)

	if leftRisk <= rightRisk {
		return models.Coordinate{Lat: leftLat, Lon: leftLon}, true
	}
	return models.Coordinate{Lat: rightLat, Lon: rightLon}, true
}
