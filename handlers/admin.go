package handlers

import (
	"net/http"

	"handrest/middleware"
	"handrest/models"
	"handrest/services/booking"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back-office: booking tabs, status updates and
// overrides, and payment finalization.
type AdminHandler struct {
	Service booking.BookingService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc booking.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListBookingsHandler returns the bookings tab, optionally filtered by
// ?status=.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	list, err := h.Service.ListForAdmin(middleware.GetActor(c), status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBookingHandler returns one booking by ID.
func (h *AdminHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetByID(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatusHandler moves a booking to the requested status. Legal
// transitions follow the lifecycle table; admins may also override to any
// status, which is flagged and audited downstream.
func (h *AdminHandler) UpdateStatusHandler(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	b, err := h.Service.UpdateStatus(middleware.GetActor(c), c.Param("id"), req.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// FinalizePaymentHandler records the settled payment for a completed
// booking.
func (h *AdminHandler) FinalizePaymentHandler(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount" binding:"required"`
		Method string  `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required"})
		return
	}
	p, err := h.Service.FinalizePayment(middleware.GetActor(c), c.Param("id"), req.Amount, req.Method)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
