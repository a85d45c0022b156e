package client

import (
	"net/http"
	"time"
)

const (
	defaultGeocodeBase    = "https://api.mapbox.com/geocoding/v5/mapbox.places"
	defaultDirectionsBase = "https://api.mapbox.com/directions/v5/mapbox/walking"
)

// Mapbox calls the Mapbox geocoding and walking-directions APIs. Both are
// treated as opaque collaborators: no retries, failures surface to the caller.
type Mapbox struct {
	token          string
	geocodeBase    string
	directionsBase string
	httpClient     *http.Client
}

// NewMapbox creates a client with the given access token
func NewMapbox(token string) *Mapbox {
	return &Mapbox{
		token:          token,
		geocodeBase:    defaultGeocodeBase,
		directionsBase: defaultDirectionsBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithBaseURLs overrides the API endpoints, used in tests
func (m *Mapbox) WithBaseURLs(geocodeBase, directionsBase string) *Mapbox {
	m.geocodeBase = geocodeBase
	m.directionsBase = directionsBase
	return m
}
