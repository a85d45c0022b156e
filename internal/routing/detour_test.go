package routing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

func TestProposeDetourWaypoint(t *testing.T) {
	day := models.WindowDay

	// Northbound three-point route with the hot cell in the middle
	northbound := []models.Coordinate{
		{Lat: 49.2700, Lon: -123.1200},
		{Lat: 49.2800, Lon: -123.1200},
		{Lat: 49.2900, Lon: -123.1200},
	}

	t.Run("empty route proposes nothing", func(t *testing.T) {
		s := NewScorer(newIndex(cellAt(day, 49.28, -123.12, 1.0, 1)))

		_, ok := s.ProposeDetourWaypoint(nil, day, 220)
		assert.False(t, ok)
	})

	t.Run("waypoint sits perpendicular at the offset distance", func(t *testing.T) {
		s := NewScorer(newIndex(cellAt(day, 49.2800, -123.1200, 0.9, 1)))

		wp, ok := s.ProposeDetourWaypoint(northbound, day, 220)

		require.True(t, ok)
		worst := northbound[1]
		assert.InDelta(t, 220, spatial.HaversineDistance(worst.Lat, worst.Lon, wp.Lat, wp.Lon), 1.0)
		assert.InDelta(t, worst.Lat, wp.Lat, 0.0005)
		assert.Greater(t, math.Abs(worst.Lon-wp.Lon), 0.001)
	})

	t.Run("avoids the side that samples higher risk", func(t *testing.T) {
		// Travel bearing at the middle vertex points back south, so the +90
		// side is west. Poison it and expect the eastern waypoint.
		westLat, westLon := spatial.DestinationPoint(49.2800, -123.1200, 270, 220)
		s := NewScorer(newIndex(
			cellAt(day, 49.2800, -123.1200, 0.9, 1),
			cellAt(day, westLat, westLon, 0.8, 1),
		))

		wp, ok := s.ProposeDetourWaypoint(northbound, day, 220)

		require.True(t, ok)
		assert.Greater(t, wp.Lon, -123.1200)
	})

	t.Run("ties prefer the plus-ninety side", func(t *testing.T) {
		// Both sides uncovered. Worst vertex is the first point, so the
		// bearing comes from the successor (due north) and +90 is east.
		s := NewScorer(newIndex(cellAt(day, 49.2700, -123.1200, 0.9, 1)))

		wp, ok := s.ProposeDetourWaypoint(northbound, day, 220)

		require.True(t, ok)
		assert.Greater(t, wp.Lon, -123.1200)
		assert.InDelta(t, 49.2700, wp.Lat, 0.0005)
	})
}
