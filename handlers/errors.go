package handlers

import (
	"errors"
	"net/http"

	"handrest/services/booking"
	"handrest/services/jobs"
	"handrest/services/user"
	"handrest/utils"

	"github.com/gin-gonic/gin"
)

// RespondServiceError maps core service errors onto HTTP responses. The
// services return typed failures; user-facing messaging stays here.
func RespondServiceError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var minErr *booking.BelowMinimumOrderError
	var trErr *booking.InvalidTransitionError

	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", vErr.Error())
	case errors.As(err, &minErr):
		utils.JSONError(c, http.StatusBadRequest, "Below minimum order", minErr.Error())
	case errors.As(err, &trErr):
		utils.JSONError(c, http.StatusConflict, "Invalid status transition", trErr.Error())
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, booking.ErrForbidden), errors.Is(err, jobs.ErrNotAssigned):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, booking.ErrNotCompleted),
		errors.Is(err, booking.ErrAlreadyRated),
		errors.Is(err, jobs.ErrNotOpen),
		errors.Is(err, jobs.ErrCapacityExceeded),
		errors.Is(err, jobs.ErrAlreadyActedOn),
		errors.Is(err, user.ErrPhoneExists):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
