package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safewalk/safewalk-backend-go/internal/client"
	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/risk"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

type fakeGeocoder struct {
	coords map[string]models.Coordinate
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (models.Coordinate, error) {
	c, ok := f.coords[address]
	if !ok {
		return models.Coordinate{}, client.ErrAddressNotFound
	}
	return c, nil
}

// fakeDirections replays one canned response per call
type fakeDirections struct {
	calls     int
	responses [][]models.DirectionsRoute
}

func (f *fakeDirections) Routes(_ context.Context, _ []models.Coordinate) ([]models.DirectionsRoute, error) {
	i := f.calls
	f.calls++
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return nil, nil
}

func emptyHolder() *risk.Holder {
	return risk.NewHolder(risk.Empty(spatial.DefaultCellSizeDeg))
}

func TestRouteByAddresses(t *testing.T) {
	ctx := context.Background()

	geocoder := &fakeGeocoder{coords: map[string]models.Coordinate{
		"start st": {Lat: 49.2700, Lon: -123.1200},
		"end ave":  {Lat: 49.2900, Lon: -123.1200},
	}}

	directRoute := models.DirectionsRoute{
		Geometry: []models.Coordinate{
			{Lat: 49.2700, Lon: -123.1200},
			{Lat: 49.2900, Lon: -123.1200},
		},
		DistanceMeters: 2345.678,
	}

	t.Run("geocodes and scores a route", func(t *testing.T) {
		dirs := &fakeDirections{responses: [][]models.DirectionsRoute{{directRoute}}}
		svc := NewRouteService(geocoder, dirs, emptyHolder())

		route, err := svc.RouteByAddresses(ctx, models.RouteRequest{
			StartAddress: "start st",
			EndAddress:   "end ave",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, dirs.calls)
		assert.Equal(t, 2.346, route.DistanceKm)
		assert.Equal(t, 0.0, route.AvgRisk)
		assert.False(t, route.DetourUsed)
	})

	t.Run("explicit zero threshold always tries a detour", func(t *testing.T) {
		dirs := &fakeDirections{responses: [][]models.DirectionsRoute{
			{directRoute},
			{{Geometry: directRoute.Geometry, DistanceMeters: 3000}},
		}}
		svc := NewRouteService(geocoder, dirs, emptyHolder())

		zero := 0.0
		route, err := svc.RouteByAddresses(ctx, models.RouteRequest{
			StartAddress:  "start st",
			EndAddress:    "end ave",
			RiskThreshold: &zero,
		})

		require.NoError(t, err)
		// Zero-risk route still clears a zero threshold, so a second
		// directions call happens; the shorter direct route wins anyway
		assert.Equal(t, 2, dirs.calls)
		assert.False(t, route.DetourUsed)
		assert.Equal(t, 2.346, route.DistanceKm)
	})

	t.Run("unknown start address surfaces the geocode error", func(t *testing.T) {
		svc := NewRouteService(geocoder, &fakeDirections{}, emptyHolder())

		_, err := svc.RouteByAddresses(ctx, models.RouteRequest{
			StartAddress: "no such place",
			EndAddress:   "end ave",
		})

		assert.ErrorIs(t, err, client.ErrAddressNotFound)
		assert.Contains(t, err.Error(), "start")
	})

	t.Run("invalid window is rejected before any remote call", func(t *testing.T) {
		svc := NewRouteService(geocoder, &fakeDirections{}, emptyHolder())

		_, err := svc.RouteByAddresses(ctx, models.RouteRequest{
			StartAddress: "start st",
			EndAddress:   "end ave",
			TimeWindow:   "midnight",
		})

		assert.Error(t, err)
	})
}
