package jobs

import (
	"time"

	bookingRepo "handrest/database/repository/booking"
	userRepo "handrest/database/repository/user"
	"handrest/models"
	"handrest/services/access"
	"handrest/services/booking"
	"handrest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultJobsService implements JobsService on top of the booking
// repository's conditional writes and the booking lifecycle service.
type DefaultJobsService struct {
	Bookings  bookingRepo.BookingRepository
	Users     userRepo.UserRepository
	Lifecycle booking.BookingService
	Reminders ReminderScheduler // optional; nil disables reminders
}

// ListAvailableJobs returns the staff member's open-job feed.
func (s *DefaultJobsService) ListAvailableJobs(actor access.Actor) ([]models.Booking, error) {
	if actor.Role != models.RoleStaff {
		return nil, booking.ErrForbidden
	}
	staff, err := s.Users.GetByID(actor.ID)
	if err != nil {
		return nil, err
	}
	if staff.PanchayathID == "" {
		return []models.Booking{}, nil
	}
	return s.Bookings.ListOpenForCoverage(staff.PanchayathID, staff.WardNumbers, staff.ID)
}

// MyJobs returns the staff member's accepted bookings.
func (s *DefaultJobsService) MyJobs(actor access.Actor, statuses []models.BookingStatus) ([]models.Booking, error) {
	if actor.Role != models.RoleStaff {
		return nil, booking.ErrForbidden
	}
	return s.Bookings.ListForStaff(actor.ID, statuses)
}

// AcceptJob records an accepted assignment. Capacity, duplicate-act and
// openness checks all sit inside the repository's single conditional write;
// when it fails, the booking is re-read purely to name the reason. The
// classification can itself race, so when in doubt the acceptance fails
// closed rather than overbooking.
func (s *DefaultJobsService) AcceptJob(actor access.Actor, bookingID string) (*models.Assignment, error) {
	if actor.Role != models.RoleStaff {
		return nil, booking.ErrForbidden
	}

	asg := models.Assignment{
		ID:          uuid.New().String(),
		BookingID:   bookingID,
		StaffUserID: actor.ID,
		Status:      models.AssignmentAccepted,
		AssignedAt:  time.Now(),
	}

	b, err := s.Bookings.PushAssignment(bookingID, asg)
	if err == bookingRepo.ErrConditionFailed {
		return nil, s.classifyAcceptFailure(bookingID, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("job accepted",
		zap.String("bookingNumber", b.BookingNumber),
		zap.String("staff", actor.ID),
		zap.Int("acceptedCount", b.AcceptedCount),
		zap.String("status", string(b.Status)))

	if b.Status == models.StatusAssigned {
		s.scheduleReminder(b)
	}
	return b.AssignmentFor(actor.ID), nil
}

func (s *DefaultJobsService) classifyAcceptFailure(bookingID, staffID string) error {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return booking.ErrNotFound
		}
		return err
	}
	if b.AssignmentFor(staffID) != nil {
		return ErrAlreadyActedOn
	}
	// Capacity is checked before openness: filling the last slot promotes
	// the booking to assigned in the same write, so a full booking is no
	// longer confirmed and would otherwise misreport as not open.
	if b.AcceptedCount >= b.RequiredStaffCount {
		return ErrCapacityExceeded
	}
	if b.Status != models.StatusConfirmed {
		return ErrNotOpen
	}
	// The state changed again between the write and this read; fail closed.
	return ErrCapacityExceeded
}

// RejectJob permanently hides the booking from this staff member's feed.
func (s *DefaultJobsService) RejectJob(actor access.Actor, bookingID string) error {
	if actor.Role != models.RoleStaff {
		return booking.ErrForbidden
	}

	asg := models.Assignment{
		ID:          uuid.New().String(),
		StaffUserID: actor.ID,
		Status:      models.AssignmentRejected,
		AssignedAt:  time.Now(),
	}
	_, err := s.Bookings.PushRejection(bookingID, asg)
	if err == bookingRepo.ErrConditionFailed {
		return s.classifyRejectFailure(bookingID, actor.ID)
	}
	return err
}

func (s *DefaultJobsService) classifyRejectFailure(bookingID, staffID string) error {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return booking.ErrNotFound
		}
		return err
	}
	if b.AssignmentFor(staffID) != nil {
		return ErrAlreadyActedOn
	}
	return ErrNotOpen
}

// StartJob moves an assigned booking to in_progress on behalf of a staff
// member holding an accepted assignment.
func (s *DefaultJobsService) StartJob(actor access.Actor, bookingID string) (*models.Booking, error) {
	return s.driveLifecycle(actor, bookingID, models.StatusInProgress)
}

// CompleteJob moves an in_progress booking to completed.
func (s *DefaultJobsService) CompleteJob(actor access.Actor, bookingID string) (*models.Booking, error) {
	return s.driveLifecycle(actor, bookingID, models.StatusCompleted)
}

func (s *DefaultJobsService) driveLifecycle(actor access.Actor, bookingID string, to models.BookingStatus) (*models.Booking, error) {
	if actor.Role != models.RoleStaff {
		return nil, booking.ErrForbidden
	}
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	if !b.HasAccepted(actor.ID) {
		return nil, ErrNotAssigned
	}
	return s.Lifecycle.UpdateStatus(actor, bookingID, to)
}

func (s *DefaultJobsService) scheduleReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	var staffIDs []string
	for _, a := range b.Assignments {
		if a.Status == models.AssignmentAccepted {
			staffIDs = append(staffIDs, a.StaffUserID)
		}
	}
	p := models.ReminderPayload{
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		StaffUserIDs:  staffIDs,
	}
	if err := s.Reminders.ScheduleJobReminder(p); err != nil {
		utils.GetLogger().Error("failed to schedule job reminder",
			zap.String("bookingNumber", b.BookingNumber), zap.Error(err))
	}
}
