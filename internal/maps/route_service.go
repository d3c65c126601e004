// README: Road-route lookups via the Google Maps Directions API.
package maps

import (
	"context"
	"errors"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"rovia/internal/types"
)

// ErrRouteUnavailable is returned when the provider yields no usable
// driving route between the two points. It is retryable.
var ErrRouteUnavailable = errors.New("route unavailable")

// Estimate is the aggregate road-route figure for one origin/destination
// pair. No turn-by-turn detail is kept.
type Estimate struct {
	DistanceKm      float64
	DurationMinutes int
}

// RouteService handles interactions with the Google Maps API.
type RouteService struct {
	client *maps.Client
	region string
}

// NewRouteService creates a new RouteService with the given API key.
// region biases geocoding of the directions request (e.g. "IN").
func NewRouteService(apiKey, region string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, region: region}, nil
}

// Route returns the driving distance and duration between origin and
// destination. Distance is rounded to 2 decimal places, duration to the
// nearest whole minute.
func (s *RouteService) Route(ctx context.Context, origin, destination types.Point) (Estimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Mode:        maps.TravelModeDriving,
		Region:      s.region,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Estimate{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Estimate{}, ErrRouteUnavailable
	}

	leg := routes[0].Legs[0]
	return Estimate{
		DistanceKm:      RoundKm(float64(leg.Distance.Meters) / 1000.0),
		DurationMinutes: int(math.Round(leg.Duration.Minutes())),
	}, nil
}

// RoundKm normalizes a kilometre figure to 2 decimal places.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func latLng(p types.Point) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}
