package booking

import (
	"errors"
	"fmt"

	"handrest/models"
)

var (
	// ErrNotFound reports that the referenced booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrForbidden reports that the actor's role does not permit the
	// requested operation.
	ErrForbidden = errors.New("actor is not permitted to perform this operation")
	// ErrNotCompleted reports an operation that requires a completed
	// booking (payment finalization, rating).
	ErrNotCompleted = errors.New("booking is not completed")
	// ErrAlreadyRated reports a second rating attempt on a booking.
	ErrAlreadyRated = errors.New("booking has already been rated")
)

// ValidationError reports malformed or missing required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BelowMinimumOrderError reports a booking submission whose computed total
// does not reach the minimum order threshold. Nothing is persisted.
type BelowMinimumOrderError struct {
	Total   float64
	Minimum float64
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("order total %.2f is below the minimum of %.2f", e.Total, e.Minimum)
}

// InvalidTransitionError reports a status change attempt the lifecycle
// table does not allow. The booking is left unchanged.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}
