package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTMToLatLon(t *testing.T) {
	t.Run("converts a downtown Vancouver coordinate", func(t *testing.T) {
		// UTM zone 10: easting 491000 is ~9km west of the -123° central meridian
		lat, lon, err := UTMToLatLon(491000, 5459000, 10)

		require.NoError(t, err)
		assert.InDelta(t, 49.28, lat, 0.05)
		assert.InDelta(t, -123.12, lon, 0.05)
	})

	t.Run("central meridian easting maps to the zone center", func(t *testing.T) {
		_, lon, err := UTMToLatLon(500000, 5459000, 10)

		require.NoError(t, err)
		assert.InDelta(t, -123.0, lon, 1e-6)
	})

	t.Run("rejects invalid zones", func(t *testing.T) {
		_, _, err := UTMToLatLon(491000, 5459000, 0)
		assert.ErrorIs(t, err, ErrBadUTMZone)

		_, _, err = UTMToLatLon(491000, 5459000, 61)
		assert.ErrorIs(t, err, ErrBadUTMZone)
	})
}
