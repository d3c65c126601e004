// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rovia/internal/http/handlers"
	"rovia/internal/http/middleware"
	"rovia/internal/modules/booking"
	"rovia/internal/modules/trip"
)

func NewRouter(
	bookingService *booking.Service,
	tripService *trip.Service,
	verifier middleware.TokenVerifier,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(verifier))

	bookingHandler := handlers.NewBookingHandler(bookingService)
	api.GET("/bookings", bookingHandler.List)

	tripHandler := handlers.NewTripHandler(tripService)
	api.POST("/trips/estimate", tripHandler.Estimate)

	return r
}
