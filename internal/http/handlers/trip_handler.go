// README: Trip estimate handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rovia/internal/modules/trip"
	"rovia/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type estimateReq struct {
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
	Category       string  `json:"category"`
}

// Estimate resolves the road route for the given endpoints and returns
// the distance, duration, and derived fare. A response without a fare
// block means quote-on-request.
func (h *TripHandler) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Category == "" {
		req.Category = "default"
	}

	est, err := h.trips.Estimate(c.Request.Context(),
		types.Point{Lat: req.OriginLat, Lng: req.OriginLng},
		types.Point{Lat: req.DestinationLat, Lng: req.DestinationLng},
		req.Category,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}
