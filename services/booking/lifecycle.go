package booking

import (
	"time"

	bookingRepo "handrest/database/repository/booking"
	"handrest/models"
	"handrest/services/access"
	"handrest/utils"

	"go.uber.org/zap"
)

// UpdateStatus drives a booking through the lifecycle. Table-legal
// transitions go through a conditional write filtered on the current status,
// so a concurrent mutation makes the write a no-op instead of a lost update.
// Admins may additionally force any status; every forced write is reported
// through the audit hook.
func (s *DefaultBookingService) UpdateStatus(actor access.Actor, bookingID string, to models.BookingStatus) (*models.Booking, error) {
	if !to.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "unknown status " + string(to)}
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	legal := b.Status.CanTransitionTo(to)
	switch {
	case legal && access.CanMutateBookingStatus(actor.Role, b.Status, to):
		// Staff may only drive jobs they hold an accepted assignment on.
		if actor.Role == models.RoleStaff && !b.HasAccepted(actor.ID) {
			return nil, ErrForbidden
		}
		updated, err := s.Repo.UpdateStatus(b.ID, b.Status, to)
		if err == bookingRepo.ErrConditionFailed {
			// Lost the race: someone moved the booking first. Report the
			// transition against the state the store holds now.
			current, ferr := s.Repo.GetByID(b.ID)
			if ferr != nil {
				return nil, ferr
			}
			return nil, &InvalidTransitionError{From: current.Status, To: to}
		}
		if err != nil {
			return nil, err
		}
		return updated, nil

	case legal:
		return nil, ErrForbidden

	case access.CanOverrideBookingStatus(actor.Role):
		updated, err := s.Repo.ForceStatus(b.ID, to)
		if err != nil {
			return nil, err
		}
		s.reportOverride(actor, b, to)
		return updated, nil

	case actor.Role == models.RoleCustomer:
		return nil, ErrForbidden

	default:
		return nil, &InvalidTransitionError{From: b.Status, To: to}
	}
}

func (s *DefaultBookingService) reportOverride(actor access.Actor, b *models.Booking, to models.BookingStatus) {
	ev := models.StatusOverrideEvent{
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		FromStatus:    b.Status,
		ToStatus:      to,
		At:            time.Now(),
	}
	logger := utils.GetLogger()
	logger.Warn("booking status override",
		zap.String("bookingNumber", ev.BookingNumber),
		zap.String("actor", ev.ActorID),
		zap.String("from", string(ev.FromStatus)),
		zap.String("to", string(ev.ToStatus)))
	if s.Audit == nil {
		return
	}
	if err := s.Audit.RecordOverride(ev); err != nil {
		logger.Error("failed to record status override", zap.Error(err))
	}
}
