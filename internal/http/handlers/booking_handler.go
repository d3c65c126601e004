// README: Booking feed handler.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rovia/internal/http/middleware"
	"rovia/internal/modules/booking"
)

type BookingHandler struct {
	feed *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{feed: svc}
}

// List returns the unified feed, optionally filtered to one bucket via
// ?bucket=ongoing|upcoming|past. Host-view bookings are merged in when
// the session carries the host role.
func (h *BookingHandler) List(c *gin.Context) {
	q := booking.FeedQuery{
		Token:       c.GetString(middleware.ContextRawToken),
		IncludeHost: c.GetBool(middleware.ContextIsHost),
		Now:         time.Now(),
	}
	if raw := c.Query("bucket"); raw != "" {
		bucket, ok := booking.ParseBucket(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown bucket"})
			return
		}
		q.Bucket = bucket
	}

	feed, err := h.feed.Feed(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": feed, "count": len(feed)})
}
