package bookingRepo

import (
	"errors"

	"handrest/models"
)

// Sentinel errors returned by repository implementations.
var (
	// ErrNotFound reports that no booking matched the given identity.
	ErrNotFound = errors.New("booking not found")
	// ErrConditionFailed reports that a conditional write matched no
	// document: either the booking does not exist or its current state no
	// longer satisfies the write's precondition. Callers disambiguate by
	// re-reading the booking.
	ErrConditionFailed = errors.New("conditional update matched no booking")
)

// BookingRepository defines the persistence surface for bookings and their
// attached payments and ratings. All status-changing writes are conditional
// single-document updates so that concurrent actors cannot lose updates.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByNumber(number string) (*models.Booking, error)

	// ListByStatus returns bookings filtered by status, newest first.
	// An empty status returns all bookings.
	ListByStatus(status models.BookingStatus) ([]models.Booking, error)
	ListByCustomer(customerUserID string) ([]models.Booking, error)

	// ListOpenForCoverage returns confirmed bookings inside the given
	// coverage, excluding those the given staff member has already acted
	// on, ordered by scheduled date then creation time.
	ListOpenForCoverage(panchayathID string, wards []int, excludeStaffUserID string) ([]models.Booking, error)

	// ListForStaff returns bookings holding an accepted assignment for the
	// staff member, optionally filtered to the given statuses.
	ListForStaff(staffUserID string, statuses []models.BookingStatus) ([]models.Booking, error)

	// UpdateStatus moves a booking from exactly `from` to `to` in one
	// conditional write, stamping completed_at when `to` is completed.
	// Returns ErrConditionFailed if the booking is not currently in `from`.
	UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error)

	// ForceStatus sets the status unconditionally (admin override),
	// keeping the completed_at invariant intact.
	ForceStatus(id string, to models.BookingStatus) (*models.Booking, error)

	// PushAssignment records an accepted assignment. The capacity check,
	// the duplicate check and the auto-promotion to `assigned` all happen
	// inside one conditional pipeline update. Returns ErrConditionFailed
	// when any precondition does not hold.
	PushAssignment(bookingID string, asg models.Assignment) (*models.Booking, error)

	// PushRejection records a rejected assignment, provided the booking is
	// still open and the staff member has not already acted on it.
	PushRejection(bookingID string, asg models.Assignment) (*models.Booking, error)

	SavePayment(p *models.Payment) error
	ListPayments(bookingID string) ([]models.Payment, error)
	SaveRating(r *models.Rating) error
	GetRating(bookingID string) (*models.Rating, error)
}
