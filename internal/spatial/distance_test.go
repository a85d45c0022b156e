package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.InDelta(t, 0, HaversineDistance(49.28, -123.12, 49.28, -123.12), 1e-9)
	})

	t.Run("one degree of latitude is about 111km", func(t *testing.T) {
		d := HaversineDistance(49.0, -123.0, 50.0, -123.0)
		assert.InDelta(t, 111195, d, 200)
	})
}

func TestBearing(t *testing.T) {
	t.Run("due north is 0", func(t *testing.T) {
		assert.InDelta(t, 0, Bearing(49.28, -123.12, 49.29, -123.12), 0.01)
	})

	t.Run("due east is 90", func(t *testing.T) {
		assert.InDelta(t, 90, Bearing(49.28, -123.12, 49.28, -123.11), 0.5)
	})
}

func TestDestinationPoint(t *testing.T) {
	t.Run("offset distance round-trips through haversine", func(t *testing.T) {
		lat, lon := DestinationPoint(49.28, -123.12, 90, 220)

		assert.InDelta(t, 220, HaversineDistance(49.28, -123.12, lat, lon), 0.5)
	})

	t.Run("northward offset keeps longitude", func(t *testing.T) {
		lat, lon := DestinationPoint(49.28, -123.12, 0, 500)

		assert.Greater(t, lat, 49.28)
		assert.InDelta(t, -123.12, lon, 1e-9)
	})
}

func TestPathLength(t *testing.T) {
	t.Run("empty and single-point paths have zero length", func(t *testing.T) {
		assert.Equal(t, 0.0, PathLength(nil))
		assert.Equal(t, 0.0, PathLength([]Point{{Lat: 49.28, Lon: -123.12}}))
	})

	t.Run("sums segment distances", func(t *testing.T) {
		path := []Point{
			{Lat: 49.0, Lon: -123.0},
			{Lat: 49.5, Lon: -123.0},
			{Lat: 50.0, Lon: -123.0},
		}

		assert.InDelta(t, 111195, PathLength(path), 200)
	})
}
