package booking

import (
	bookingRepo "handrest/database/repository/booking"
	"handrest/models"
	"handrest/services/access"
)

// GetByID returns a booking the actor is allowed to see: admins see every
// booking, customers their own, staff those they have acted on.
func (s *DefaultBookingService) GetByID(actor access.Actor, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch {
	case actor.Role.IsAdmin():
		return b, nil
	case actor.Role == models.RoleCustomer && b.CustomerUserID == actor.ID:
		return b, nil
	case actor.Role == models.RoleStaff && b.AssignmentFor(actor.ID) != nil:
		return b, nil
	default:
		return nil, ErrForbidden
	}
}

// GetByNumber looks a booking up by its human-readable number, used for
// customer-facing tracking.
func (s *DefaultBookingService) GetByNumber(number string) (*models.Booking, error) {
	b, err := s.Repo.GetByNumber(number)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListForAdmin returns the booking-management listing, optionally filtered
// by status. Requires the "bookings" admin tab.
func (s *DefaultBookingService) ListForAdmin(actor access.Actor, status models.BookingStatus) ([]models.Booking, error) {
	if !access.CanViewTab(actor.Role, actor.Permissions, "bookings") {
		return nil, ErrForbidden
	}
	if status != "" && !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "unknown status " + string(status)}
	}
	return s.Repo.ListByStatus(status)
}

// ListForCustomer returns the actor's own booking history.
func (s *DefaultBookingService) ListForCustomer(actor access.Actor) ([]models.Booking, error) {
	if actor.Role != models.RoleCustomer {
		return nil, ErrForbidden
	}
	return s.Repo.ListByCustomer(actor.ID)
}
