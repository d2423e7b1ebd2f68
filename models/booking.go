package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusAssigned   BookingStatus = "assigned"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// transitions is the lifecycle table. Cancellation is reachable from every
// non-terminal state; everything else moves strictly forward.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the lifecycle table allows s -> to.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Assignment records one staff member's acceptance or rejection of a booking.
// Assignments are embedded in the booking document so the accept path can
// check capacity and duplicates in a single conditional update.
type Assignment struct {
	ID          string           `bson:"id" json:"id"`
	BookingID   string           `bson:"booking_id" json:"booking_id"`
	StaffUserID string           `bson:"staff_user_id" json:"staff_user_id"`
	Status      AssignmentStatus `bson:"status" json:"status"`
	AssignedAt  time.Time        `bson:"assigned_at" json:"assigned_at"`
}

// Booking is a single scheduled cleaning job tying a customer, a schedule,
// a price and a lifecycle status. Bookings are never deleted; cancellation
// is a status value.
type Booking struct {
	ID                  string        `bson:"id" json:"id"`
	BookingNumber       string        `bson:"booking_number" json:"booking_number"` // e.g. HR-20260115-0042, immutable
	PackageID           string        `bson:"package_id,omitempty" json:"package_id,omitempty"`
	CustomerUserID      string        `bson:"customer_user_id,omitempty" json:"customer_user_id,omitempty"`
	CustomerName        string        `bson:"customer_name" json:"customer_name"`
	CustomerEmail       string        `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	CustomerPhone       string        `bson:"customer_phone" json:"customer_phone"`
	AddressLine1        string        `bson:"address_line1,omitempty" json:"address_line1,omitempty"`
	AddressLine2        string        `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City                string        `bson:"city,omitempty" json:"city,omitempty"`
	Pincode             string        `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Landmark            string        `bson:"landmark,omitempty" json:"landmark,omitempty"`
	PropertySqft        int           `bson:"property_sqft,omitempty" json:"property_sqft,omitempty"`
	PanchayathID        string        `bson:"panchayath_id,omitempty" json:"panchayath_id,omitempty"`
	WardNumber          int           `bson:"ward_number,omitempty" json:"ward_number,omitempty"`
	ScheduledDate       string        `bson:"scheduled_date" json:"scheduled_date"` // "YYYY-MM-DD"
	ScheduledTime       string        `bson:"scheduled_time" json:"scheduled_time"`
	SpecialInstructions string        `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	BasePrice           float64       `bson:"base_price" json:"base_price"`
	AddonPrice          float64       `bson:"addon_price" json:"addon_price"`
	TotalPrice          float64       `bson:"total_price" json:"total_price"` // always base_price + addon_price
	RequiredStaffCount  int           `bson:"required_staff_count" json:"required_staff_count"`
	AcceptedCount       int           `bson:"accepted_count" json:"accepted_count"`
	Assignments         []Assignment  `bson:"assignments" json:"assignments"`
	Status              BookingStatus `bson:"status" json:"status"`
	CreatedAt           time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time     `bson:"updated_at" json:"updated_at"`
	CompletedAt         *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"` // non-nil iff status == completed
}

// AssignmentFor returns the assignment recorded for the given staff member,
// or nil if that staff member has not acted on this booking.
func (b *Booking) AssignmentFor(staffUserID string) *Assignment {
	for i := range b.Assignments {
		if b.Assignments[i].StaffUserID == staffUserID {
			return &b.Assignments[i]
		}
	}
	return nil
}

// HasAccepted reports whether the given staff member holds an accepted
// assignment on this booking.
func (b *Booking) HasAccepted(staffUserID string) bool {
	a := b.AssignmentFor(staffUserID)
	return a != nil && a.Status == AssignmentAccepted
}
