package jobs

import "errors"

var (
	// ErrNotOpen reports an accept/reject attempt on a booking that is not
	// in the confirmed (open-job) state.
	ErrNotOpen = errors.New("booking is not open for acceptance")
	// ErrCapacityExceeded reports an accept attempt after the booking's
	// required staff count was already reached.
	ErrCapacityExceeded = errors.New("booking already has its required staff")
	// ErrAlreadyActedOn reports a second accept or reject by the same
	// staff member on the same booking. Rejection is permanent; there is
	// no path back from rejected to accepted.
	ErrAlreadyActedOn = errors.New("staff member has already acted on this booking")
	// ErrNotAssigned reports a start/complete attempt by a staff member
	// without an accepted assignment on the booking.
	ErrNotAssigned = errors.New("staff member holds no accepted assignment on this booking")
)
