// README: Per-km rate store backed by PostgreSQL.
package trip

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRateNotFound = errors.New("rate not found")

type RateStore struct {
	db *pgxpool.Pool
}

func NewRateStore(db *pgxpool.Pool) *RateStore {
	return &RateStore{db: db}
}

// GetRate looks up the per-km rate for a vehicle category, falling back
// to the default row when the category has no dedicated rate.
func (s *RateStore) GetRate(ctx context.Context, category string) (Rate, error) {
	row := s.db.QueryRow(ctx, `
		SELECT category, per_km, currency
		FROM trip_rates
		WHERE category = $1 OR category = 'default'
		ORDER BY (category = $1) DESC
		LIMIT 1`, category,
	)

	var r Rate
	err := row.Scan(&r.Category, &r.PerKm, &r.Currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return Rate{}, ErrRateNotFound
	}
	if err != nil {
		return Rate{}, err
	}
	return r, nil
}
