// README: Feed service; joins the concurrent role-scoped fetches and merges.
package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrSourceFetch = errors.New("booking source fetch failed")

type Service struct {
	source Source
	log    *zap.Logger
}

func NewService(source Source, log *zap.Logger) *Service {
	return &Service{source: source, log: log}
}

// FeedQuery describes one feed request. Bucket empty means no
// filtering. Now is caller-supplied so classification stays
// deterministic under test.
type FeedQuery struct {
	Token       string
	IncludeHost bool
	Bucket      Bucket
	Now         time.Time
}

// Feed fetches the self view, and the counterparty view when the caller
// holds a host role, concurrently. Both fetches must succeed before any
// merging happens; a failed fetch fails the whole call rather than
// producing a partial feed.
func (s *Service) Feed(ctx context.Context, q FeedQuery) ([]UnifiedBooking, error) {
	var (
		self    Bundle
		selfErr error
		host    Bundle
		hostErr error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		self, selfErr = s.source.FetchSelf(ctx, q.Token)
	}()

	var counterparty *Bundle
	if q.IncludeHost {
		host, hostErr = s.source.FetchCounterparty(ctx, q.Token)
	}
	<-done

	if selfErr != nil {
		s.log.Warn("self bundle fetch failed", zap.Error(selfErr))
		return nil, errors.Join(ErrSourceFetch, selfErr)
	}
	if hostErr != nil {
		s.log.Warn("counterparty bundle fetch failed", zap.Error(hostErr))
		return nil, errors.Join(ErrSourceFetch, hostErr)
	}
	if q.IncludeHost {
		counterparty = &host
	}

	feed := Unify(self, counterparty)
	if q.Bucket != "" {
		now := q.Now
		if now.IsZero() {
			now = time.Now()
		}
		feed = FilterByBucket(feed, q.Bucket, now)
	}
	return feed, nil
}
