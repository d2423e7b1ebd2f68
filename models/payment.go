package models

import "time"

// Payment is a settlement record attached to a booking. Recorded by admins
// once a booking is completed; there is no card processing in this service.
type Payment struct {
	ID            string        `bson:"id" json:"id"`
	BookingID     string        `bson:"booking_id" json:"booking_id"`
	Amount        float64       `bson:"amount" json:"amount"`
	Status        PaymentStatus `bson:"status" json:"status"`
	PaymentMethod string        `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	TransactionID string        `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	PaidAt        *time.Time    `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// Rating is the customer's one-time rating of a completed booking.
type Rating struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"booking_id"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
