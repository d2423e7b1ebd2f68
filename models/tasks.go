package models

import "time"

// ReminderPayload is the body of a scheduled job reminder task.
type ReminderPayload struct {
	BookingID     string   `json:"bookingId"`
	BookingNumber string   `json:"bookingNumber"`
	ScheduledDate string   `json:"scheduledDate"`
	ScheduledTime string   `json:"scheduledTime"`
	StaffUserIDs  []string `json:"staffUserIds"`
}

// StatusOverrideEvent reports an admin forcing a booking status outside the
// lifecycle table. Emitted through the audit hook for every override.
type StatusOverrideEvent struct {
	BookingID     string        `json:"bookingId"`
	BookingNumber string        `json:"bookingNumber"`
	ActorID       string        `json:"actorId"`
	ActorRole     Role          `json:"actorRole"`
	FromStatus    BookingStatus `json:"fromStatus"`
	ToStatus      BookingStatus `json:"toStatus"`
	At            time.Time     `json:"at"`
}
