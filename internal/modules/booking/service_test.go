// README: Feed service tests with a stubbed source.
package booking

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	self        Bundle
	selfErr     error
	host        Bundle
	hostErr     error
	selfCalls   atomic.Int32
	hostCalls   atomic.Int32
	selfDelayMs int
}

func (s *stubSource) FetchSelf(ctx context.Context, token string) (Bundle, error) {
	s.selfCalls.Add(1)
	if s.selfDelayMs > 0 {
		time.Sleep(time.Duration(s.selfDelayMs) * time.Millisecond)
	}
	return s.self, s.selfErr
}

func (s *stubSource) FetchCounterparty(ctx context.Context, token string) (Bundle, error) {
	s.hostCalls.Add(1)
	return s.host, s.hostErr
}

func TestFeed_SelfOnly(t *testing.T) {
	src := &stubSource{
		self: Bundle{Rentals: []RawRental{{ID: "r1"}}},
		// counterparty data must be ignored without the host role
		host: Bundle{Rentals: []RawRental{{ID: "hr1"}}},
	}
	svc := NewService(src, zap.NewNop())

	feed, err := svc.Feed(context.Background(), FeedQuery{Token: "tok"})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "r1", string(feed[0].ID))
	assert.Equal(t, int32(0), src.hostCalls.Load(), "counterparty view must not be fetched without host role")
}

func TestFeed_HostMergesBothViews(t *testing.T) {
	src := &stubSource{
		self:        Bundle{Rentals: []RawRental{{ID: "r1"}}},
		host:        Bundle{Rentals: []RawRental{{ID: "hr1"}}},
		selfDelayMs: 20, // both fetches must still be joined
	}
	svc := NewService(src, zap.NewNop())

	feed, err := svc.Feed(context.Background(), FeedQuery{Token: "tok", IncludeHost: true})
	require.NoError(t, err)
	assert.Len(t, feed, 2)
	assert.Equal(t, int32(1), src.selfCalls.Load())
	assert.Equal(t, int32(1), src.hostCalls.Load())
}

func TestFeed_NoPartialMergeOnFetchFailure(t *testing.T) {
	upstreamDown := errors.New("upstream 502")

	t.Run("self fails", func(t *testing.T) {
		src := &stubSource{selfErr: upstreamDown, host: Bundle{Rentals: []RawRental{{ID: "hr1"}}}}
		svc := NewService(src, zap.NewNop())
		feed, err := svc.Feed(context.Background(), FeedQuery{Token: "tok", IncludeHost: true})
		require.ErrorIs(t, err, ErrSourceFetch)
		assert.Nil(t, feed)
	})

	t.Run("counterparty fails", func(t *testing.T) {
		src := &stubSource{self: Bundle{Rentals: []RawRental{{ID: "r1"}}}, hostErr: upstreamDown}
		svc := NewService(src, zap.NewNop())
		feed, err := svc.Feed(context.Background(), FeedQuery{Token: "tok", IncludeHost: true})
		require.ErrorIs(t, err, ErrSourceFetch)
		assert.Nil(t, feed)
	})
}

func TestFeed_BucketFilterUsesQueryClock(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	src := &stubSource{self: Bundle{
		Rentals: []RawRental{
			{ID: "old", Status: "confirmed", SelfDriveEndAt: ft(now.Add(-time.Hour))},
			{ID: "new", Status: "confirmed", SelfDriveEndAt: ft(now.Add(time.Hour))},
		},
	}}
	svc := NewService(src, zap.NewNop())

	feed, err := svc.Feed(context.Background(), FeedQuery{Token: "tok", Bucket: BucketUpcoming, Now: now})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "new", string(feed[0].ID))
}
