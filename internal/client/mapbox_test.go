package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safewalk/safewalk-backend-go/internal/models"
)

func TestGeocode(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the first feature center", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			w.Write([]byte(`{"features":[{"center":[-123.12,49.28]},{"center":[0,0]}]}`))
		}))
		defer srv.Close()

		m := NewMapbox("test-token").WithBaseURLs(srv.URL, srv.URL)
		coord, err := m.Geocode(ctx, "800 Robson St, Vancouver")

		require.NoError(t, err)
		assert.Equal(t, models.Coordinate{Lat: 49.28, Lon: -123.12}, coord)
	})

	t.Run("no features is an address-not-found error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"features":[]}`))
		}))
		defer srv.Close()

		m := NewMapbox("test-token").WithBaseURLs(srv.URL, srv.URL)
		_, err := m.Geocode(ctx, "nowhere at all")

		assert.ErrorIs(t, err, ErrAddressNotFound)
		assert.Contains(t, err.Error(), "nowhere at all")
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		m := NewMapbox("bad-token").WithBaseURLs(srv.URL, srv.URL)
		_, err := m.Geocode(ctx, "anywhere")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestRoutes(t *testing.T) {
	ctx := context.Background()

	t.Run("parses alternatives with geojson geometry", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("alternatives"))
			assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
			assert.Equal(t, "full", r.URL.Query().Get("overview"))
			w.Write([]byte(`{"routes":[
				{"distance":1850.4,"geometry":{"coordinates":[[-123.12,49.27],[-123.12,49.29]]}},
				{"distance":2100.0,"geometry":{"coordinates":[[-123.12,49.27],[-123.13,49.28],[-123.12,49.29]]}}
			]}`))
		}))
		defer srv.Close()

		m := NewMapbox("test-token").WithBaseURLs(srv.URL, srv.URL)
		routes, err := m.Routes(ctx, []models.Coordinate{
			{Lat: 49.27, Lon: -123.12},
			{Lat: 49.29, Lon: -123.12},
		})

		require.NoError(t, err)
		require.Len(t, routes, 2)
		assert.Equal(t, 1850.4, routes[0].DistanceMeters)
		assert.Equal(t, models.Coordinate{Lat: 49.27, Lon: -123.12}, routes[0].Geometry[0])
		assert.Len(t, routes[1].Geometry, 3)
	})

	t.Run("empty route list is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"routes":[]}`))
		}))
		defer srv.Close()

		m := NewMapbox("test-token").WithBaseURLs(srv.URL, srv.URL)
		routes, err := m.Routes(ctx, []models.Coordinate{
			{Lat: 49.27, Lon: -123.12},
			{Lat: 49.29, Lon: -123.12},
		})

		require.NoError(t, err)
		assert.Empty(t, routes)
	})

	t.Run("fewer than two waypoints is rejected locally", func(t *testing.T) {
		m := NewMapbox("test-token")

		_, err := m.Routes(ctx, []models.Coordinate{{Lat: 49.27, Lon: -123.12}})
		assert.Error(t, err)
	})
}
