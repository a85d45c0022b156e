package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/safewalk/safewalk-backend-go/internal/models"
)

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"routes"`
}

// Routes requests walking routes with alternatives through the given
// waypoints. An empty slice means no route exists; the selector decides
// whether that is fatal.
func (m *Mapbox) Routes(ctx context.Context, waypoints []models.Coordinate) ([]models.DirectionsRoute, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("directions needs at least 2 waypoints, got %d", len(waypoints))
	}

	parts := make([]string, len(waypoints))
	for i, c := range waypoints {
		parts[i] = fmt.Sprintf("%f,%f", c.Lon, c.Lat)
	}
	endpoint := fmt.Sprintf("%s/%s", m.directionsBase, strings.Join(parts, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}
	q := req.URL.Query()
	q.Set("access_token", m.token)
	q.Set("alternatives", "true")
	q.Set("geometries", "geojson")
	q.Set("overview", "full")
	q.Set("steps", "false")
	req.URL.RawQuery = q.Encode()

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions request returned status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	routes := make([]models.DirectionsRoute, 0, len(body.Routes))
	for _, r := range body.Routes {
		geom := make([]models.Coordinate, 0, len(r.Geometry.Coordinates))
		for _, c := range r.Geometry.Coordinates {
			if len(c) < 2 {
				continue
			}
			geom = append(geom, models.Coordinate{Lon: c[0], Lat: c[1]})
		}
		routes = append(routes, models.DirectionsRoute{
			Geometry:       geom,
			DistanceMeters: r.Distance,
		})
	}

	return routes, nil
}
