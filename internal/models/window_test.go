package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowForHour(t *testing.T) {
	cases := []struct {
		hour int
		want TimeWindow
	}{
		{0, WindowNight},
		{5, WindowNight},
		{6, WindowDay},
		{12, WindowDay},
		{17, WindowDay},
		{18, WindowEvening},
		{23, WindowEvening},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, WindowForHour(tc.hour), "hour %d", tc.hour)
	}
}

func TestParseWindow(t *testing.T) {
	t.Run("accepts the three window names", func(t *testing.T) {
		for _, w := range Windows() {
			got, err := ParseWindow(string(w))
			require.NoError(t, err)
			assert.Equal(t, w, got)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, s := range []string{"", "Day", "noon", "nights"} {
			_, err := ParseWindow(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestRouteRequestDefaults(t *testing.T) {
	t.Run("absent fields get the service defaults", func(t *testing.T) {
		req := RouteRequest{StartAddress: "a", EndAddress: "b"}
		req.ApplyDefaults()

		assert.Equal(t, "day", req.TimeWindow)
		require.NotNil(t, req.Alpha)
		require.NotNil(t, req.RiskThreshold)
		require.NotNil(t, req.DetourOffsetM)
		require.NotNil(t, req.BufferM)
		assert.Equal(t, 1.0, *req.Alpha)
		assert.Equal(t, 0.35, *req.RiskThreshold)
		assert.Equal(t, 220.0, *req.DetourOffsetM)
		assert.Equal(t, 120.0, *req.BufferM)
	})

	t.Run("explicit zeros survive", func(t *testing.T) {
		zero := 0.0
		req := RouteRequest{
			StartAddress:  "a",
			EndAddress:    "b",
			Alpha:         &zero,
			RiskThreshold: &zero,
		}
		req.ApplyDefaults()

		assert.Equal(t, 0.0, *req.Alpha)
		assert.Equal(t, 0.0, *req.RiskThreshold)
	})

	t.Run("explicit in-range values survive", func(t *testing.T) {
		alpha, offset := 2.5, 300.0
		req := RouteRequest{StartAddress: "a", EndAddress: "b", Alpha: &alpha, DetourOffsetM: &offset}
		req.ApplyDefaults()

		assert.Equal(t, 2.5, *req.Alpha)
		assert.Equal(t, 300.0, *req.DetourOffsetM)
	})
}
