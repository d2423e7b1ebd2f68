package jobs

import (
	"handrest/models"
	"handrest/services/access"
)

// ReminderScheduler schedules job-day reminders for assigned staff. The
// delivery transport lives in the background worker.
type ReminderScheduler interface {
	ScheduleJobReminder(p models.ReminderPayload) error
}

// JobsService is the staff-facing assignment protocol: the open-job feed,
// capacity-bounded acceptance, permanent rejection, and the start/complete
// wrappers over the booking lifecycle.
type JobsService interface {
	// ListAvailableJobs returns open (confirmed) bookings inside the staff
	// member's coverage that they have not already accepted or rejected,
	// ordered by scheduled date then creation time.
	ListAvailableJobs(actor access.Actor) ([]models.Booking, error)

	// MyJobs returns the staff member's accepted bookings in the given
	// statuses (all accepted bookings when statuses is empty).
	MyJobs(actor access.Actor, statuses []models.BookingStatus) ([]models.Booking, error)

	// AcceptJob records an accepted assignment; filling the last slot
	// promotes the booking to assigned in the same atomic write.
	AcceptJob(actor access.Actor, bookingID string) (*models.Assignment, error)

	// RejectJob permanently removes the booking from the staff member's
	// available feed. Never affects the booking status.
	RejectJob(actor access.Actor, bookingID string) error

	// StartJob moves an assigned booking to in_progress.
	StartJob(actor access.Actor, bookingID string) (*models.Booking, error)

	// CompleteJob moves an in_progress booking to completed.
	CompleteJob(actor access.Actor, bookingID string) (*models.Booking, error)
}
