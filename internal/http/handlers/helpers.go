// README: Shared handler utilities for error mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rovia/internal/maps"
	"rovia/internal/modules/booking"
	"rovia/internal/modules/trip"
)

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, maps.ErrRouteUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "distance unavailable"})
	case errors.Is(err, booking.ErrSourceFetch):
		c.JSON(http.StatusBadGateway, gin.H{"error": "booking source unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
