package handlers

import (
	"net/http"

	"handrest/middleware"
	"handrest/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the customer booking surface.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// QuoteHandler prices a feature/add-on selection. Used by the build-your-own
// form as the client-side pre-check; the same rules run again on submission.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req struct {
		CategoryID string                 `json:"category_id"`
		Features   []booking.SelectedItem `json:"features"`
		AddOns     []booking.SelectedItem `json:"addons"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	quote, err := h.Service.QuoteSelection(req.CategoryID, req.Features, req.AddOns)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateBookingHandler submits a booking for the signed-in customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.CustomerUserID = middleware.GetActor(c).ID

	b, err := h.Service.CreateBooking(req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":             b.ID,
		"booking_number": b.BookingNumber,
		"status":         b.Status,
		"total_price":    b.TotalPrice,
	})
}

// MyBookingsHandler lists the customer's booking history.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListForCustomer(middleware.GetActor(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// TrackBookingHandler looks a booking up by its booking number.
func (h *BookingHandler) TrackBookingHandler(c *gin.Context) {
	b, err := h.Service.GetByNumber(c.Param("number"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RateBookingHandler records the customer's rating of a completed booking.
func (h *BookingHandler) RateBookingHandler(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	r, err := h.Service.RateBooking(middleware.GetActor(c), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}
