package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/safewalk/safewalk-backend-go/internal/models"
)

// ErrAddressNotFound indicates the geocoder returned no match. Wrapped errors
// carry the unresolved address.
var ErrAddressNotFound = errors.New("address not found")

type geocodeResponse struct {
	Features []struct {
		Center []float64 `json:"center"` // [lon, lat]
	} `json:"features"`
}

// Geocode resolves a free-text address to its single best-match coordinate
func (m *Mapbox) Geocode(ctx context.Context, address string) (models.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/%s.json", m.geocodeBase, url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("failed to build geocode request: %w", err)
	}
	q := req.URL.Query()
	q.Set("access_token", m.token)
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Coordinate{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(body.Features) == 0 || len(body.Features[0].Center) < 2 {
		return models.Coordinate{}, fmt.Errorf("%w: %s", ErrAddressNotFound, address)
	}

	center := body.Features[0].Center
	return models.Coordinate{Lon: center[0], Lat: center[1]}, nil
}
