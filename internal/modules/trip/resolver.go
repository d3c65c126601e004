// README: Distance resolver with latest-request-wins generation tokens.
package trip

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"rovia/internal/maps"
	"rovia/internal/types"
)

// RouteProvider yields aggregate road-route figures. Implemented by
// maps.RouteService and maps.CachedRouter.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination types.Point) (maps.Estimate, error)
}

// Resolver tracks one trip's origin/destination pair and resolves the
// road distance between them. Setting either endpoint while a
// resolution is in flight invalidates that attempt: every mutation
// bumps a generation counter, and an attempt commits its result only if
// its generation is still current when it returns. Stale results are
// dropped silently; a slow old request must never overwrite newer
// state.
type Resolver struct {
	provider RouteProvider
	timeout  time.Duration
	log      *zap.Logger

	mu          sync.Mutex
	gen         uint64
	origin      *types.Point
	destination *types.Point
	state       State
	result      *RouteResult
}

func NewResolver(provider RouteProvider, timeout time.Duration, log *zap.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		timeout:  timeout,
		log:      log,
		state:    StateIdle,
	}
}

// SetOrigin updates the trip origin. Resolution starts only once both
// endpoints are set.
func (r *Resolver) SetOrigin(p types.Point) {
	r.setEndpoint(&r.origin, p)
}

// SetDestination updates the trip destination.
func (r *Resolver) SetDestination(p types.Point) {
	r.setEndpoint(&r.destination, p)
}

// ClearOrigin drops the origin and any in-flight or committed result.
func (r *Resolver) ClearOrigin() {
	r.clearEndpoint(&r.origin)
}

// ClearDestination drops the destination and any in-flight or committed
// result.
func (r *Resolver) ClearDestination() {
	r.clearEndpoint(&r.destination)
}

func (r *Resolver) setEndpoint(slot **types.Point, p types.Point) {
	r.mu.Lock()
	*slot = &p
	r.gen++
	r.result = nil
	if r.origin == nil || r.destination == nil {
		r.state = StateIdle
		r.mu.Unlock()
		return
	}
	r.state = StateResolving
	gen, origin, destination := r.gen, *r.origin, *r.destination
	r.mu.Unlock()

	go r.resolve(gen, origin, destination)
}

func (r *Resolver) clearEndpoint(slot **types.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*slot = nil
	r.gen++
	r.result = nil
	r.state = StateIdle
}

func (r *Resolver) resolve(gen uint64, origin, destination types.Point) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	est, err := r.provider.Route(ctx, origin, destination)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// Endpoints changed while this attempt was in flight. Not a
		// failure; the current generation owns the state now.
		r.log.Debug("stale route result discarded",
			zap.Uint64("attempt_gen", gen), zap.Uint64("current_gen", r.gen))
		return
	}
	if err != nil {
		r.state = StateFailed
		r.result = nil
		r.log.Warn("route resolution failed", zap.Error(err))
		return
	}
	r.commit(est)
}

// commit stores a resolved estimate. Caller holds the lock.
func (r *Resolver) commit(est maps.Estimate) {
	r.state = StateResolved
	r.result = &RouteResult{
		DistanceKm:      math.Round(est.DistanceKm*100) / 100,
		DurationMinutes: est.DurationMinutes,
	}
}

// Result returns the current state and, when resolved, the committed
// route figures.
func (r *Resolver) Result() (RouteResult, State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.result == nil {
		return RouteResult{}, r.state
	}
	return *r.result, r.state
}

// EnsureDistance is the use-time fallback for actions that need a
// distance now, such as confirming a booking. Without a committed
// result it makes one final synchronous attempt; if that also fails the
// action proceeds with zero distance rather than blocking.
func (r *Resolver) EnsureDistance(ctx context.Context) RouteResult {
	r.mu.Lock()
	if r.state == StateResolved && r.result != nil {
		res := *r.result
		r.mu.Unlock()
		return res
	}
	if r.origin == nil || r.destination == nil {
		r.mu.Unlock()
		return RouteResult{}
	}
	gen, origin, destination := r.gen, *r.origin, *r.destination
	r.mu.Unlock()

	rctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	est, err := r.provider.Route(rctx, origin, destination)
	if err != nil {
		r.log.Warn("final route attempt failed, proceeding without distance", zap.Error(err))
		return RouteResult{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen == r.gen {
		r.commit(est)
	}
	return RouteResult{
		DistanceKm:      math.Round(est.DistanceKm*100) / 100,
		DurationMinutes: est.DurationMinutes,
	}
}
