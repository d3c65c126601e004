// README: HTTP client for the upstream booking backend's role-scoped views.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Source exposes the two role-scoped fetches. The self view returns
// bookings the user made as a consumer; the counterparty view returns
// bookings made against the user's own listings.
type Source interface {
	FetchSelf(ctx context.Context, token string) (Bundle, error)
	FetchCounterparty(ctx context.Context, token string) (Bundle, error)
}

// HTTPSource fetches bundles from the upstream REST backend.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) FetchSelf(ctx context.Context, token string) (Bundle, error) {
	return s.fetch(ctx, "/api/v1/bookings/self", token)
}

func (s *HTTPSource) FetchCounterparty(ctx context.Context, token string) (Bundle, error) {
	return s.fetch(ctx, "/api/v1/bookings/host", token)
}

func (s *HTTPSource) fetch(ctx context.Context, path, token string) (Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return Bundle{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Bundle{}, fmt.Errorf("booking fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Bundle{}, fmt.Errorf("booking fetch %s: upstream status %d", path, resp.StatusCode)
	}

	var b Bundle
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return Bundle{}, fmt.Errorf("booking fetch %s: decode: %w", path, err)
	}
	return b, nil
}
