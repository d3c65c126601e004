// README: Trip service; one-shot distance plus fare estimation.
package trip

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"rovia/internal/maps"
	"rovia/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// RateSource supplies the per-km rate for a vehicle category.
// *RateStore satisfies it.
type RateSource interface {
	GetRate(ctx context.Context, category string) (Rate, error)
}

type Service struct {
	provider RouteProvider
	rates    RateSource
	log      *zap.Logger
}

func NewService(provider RouteProvider, rates RateSource, log *zap.Logger) *Service {
	return &Service{provider: provider, rates: rates, log: log}
}

// TripEstimate bundles the resolved route with the fare derived from
// it. Fare is nil when no numeric estimate can be produced; clients
// show a quote-on-request fallback.
type TripEstimate struct {
	Route RouteResult   `json:"route"`
	Fare  *FareEstimate `json:"fare,omitempty"`
}

// Estimate resolves the road route between the two points and prices it
// with the category's per-km rate. A missing rate degrades to a
// distance-only estimate rather than failing the call.
func (s *Service) Estimate(ctx context.Context, origin, destination types.Point, category string) (TripEstimate, error) {
	if origin.IsZero() || destination.IsZero() {
		return TripEstimate{}, ErrBadRequest
	}

	est, err := s.provider.Route(ctx, origin, destination)
	if err != nil {
		return TripEstimate{}, err
	}
	route := RouteResult{
		DistanceKm:      maps.RoundKm(est.DistanceKm),
		DurationMinutes: est.DurationMinutes,
	}

	rate, err := s.rates.GetRate(ctx, category)
	if err != nil {
		s.log.Warn("rate lookup failed, returning distance only",
			zap.String("category", category), zap.Error(err))
		return TripEstimate{Route: route}, nil
	}

	return TripEstimate{
		Route: route,
		Fare:  EstimateFare(route.DistanceKm, rate.PerKm),
	}, nil
}
