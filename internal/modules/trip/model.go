// README: Trip distance and fare types.
package trip

// State is the lifecycle of one distance resolution attempt.
type State string

const (
	StateIdle      State = "idle"
	StateResolving State = "resolving"
	StateResolved  State = "resolved"
	StateFailed    State = "failed"
)

// RouteResult is the committed outcome of a successful resolution.
// Request-scoped: discarded whenever either trip endpoint changes.
type RouteResult struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Rate is the per-distance pricing row for a vehicle category.
type Rate struct {
	Category string
	PerKm    float64
	Currency string
}

// FareEstimate is the all-inclusive fare derived from a distance and a
// per-km rate. Amounts are whole currency units.
type FareEstimate struct {
	DistanceKm  float64 `json:"distance_km"`
	RatePerKm   float64 `json:"rate_per_km"`
	BaseAmount  int64   `json:"base_amount"`
	TaxAmount   int64   `json:"tax_amount"`
	TotalAmount int64   `json:"total_amount"`
}
