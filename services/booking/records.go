package booking

import (
	"time"

	bookingRepo "handrest/database/repository/booking"
	"handrest/models"
	"handrest/services/access"

	"github.com/google/uuid"
)

// FinalizePayment records the settlement of a completed booking. Admin-only,
// gated on the "payments" tab; there is no card processing here, only the
// record an admin enters after collecting payment.
func (s *DefaultBookingService) FinalizePayment(actor access.Actor, bookingID string, amount float64, method string) (*models.Payment, error) {
	if !access.CanViewTab(actor.Role, actor.Permissions, "payments") {
		return nil, ErrForbidden
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status != models.StatusCompleted {
		return nil, ErrNotCompleted
	}

	now := time.Now()
	p := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     b.ID,
		Amount:        amount,
		Status:        models.PaymentPaid,
		PaymentMethod: method,
		PaidAt:        &now,
	}
	if err := s.Repo.SavePayment(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RateBooking records the customer's one-time rating of their completed
// booking.
func (s *DefaultBookingService) RateBooking(actor access.Actor, bookingID string, stars int, comment string) (*models.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.Role != models.RoleCustomer || b.CustomerUserID != actor.ID {
		return nil, ErrForbidden
	}
	if b.Status != models.StatusCompleted {
		return nil, ErrNotCompleted
	}

	existing, err := s.Repo.GetRating(b.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRated
	}

	r := &models.Rating{
		ID:        uuid.New().String(),
		BookingID: b.ID,
		Rating:    stars,
		Comment:   comment,
	}
	if err := s.Repo.SaveRating(r); err != nil {
		return nil, err
	}
	return r, nil
}
