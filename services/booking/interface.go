package booking

import (
	"handrest/models"
	"handrest/services/access"
	"handrest/services/pricing"
)

// SelectedItem is a feature or add-on picked by ID; unit prices are always
// resolved server-side from the catalog, never trusted from the client.
type SelectedItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateBookingRequest is a customer's booking submission.
type CreateBookingRequest struct {
	CustomerUserID      string         `json:"customer_user_id"`
	CustomerName        string         `json:"customer_name"`
	CustomerEmail       string         `json:"customer_email"`
	CustomerPhone       string         `json:"customer_phone"`
	AddressLine1        string         `json:"address_line1"`
	AddressLine2        string         `json:"address_line2"`
	City                string         `json:"city"`
	Pincode             string         `json:"pincode"`
	Landmark            string         `json:"landmark"`
	PropertySqft        int            `json:"property_sqft"`
	PanchayathID        string         `json:"panchayath_id"`
	WardNumber          int            `json:"ward_number"`
	ScheduledDate       string         `json:"scheduled_date"` // "YYYY-MM-DD"
	ScheduledTime       string         `json:"scheduled_time"`
	SpecialInstructions string         `json:"special_instructions"`
	PackageID           string         `json:"package_id"`
	CategoryID          string         `json:"category_id"`
	Features            []SelectedItem `json:"features"`
	AddOns              []SelectedItem `json:"addons"`
}

// AuditSink receives admin status-override events. The audit store itself
// lives outside this service; the hook only guarantees the override is
// reported.
type AuditSink interface {
	RecordOverride(ev models.StatusOverrideEvent) error
}

// NumberSource issues unique human-readable booking numbers.
type NumberSource interface {
	Next() (string, error)
}

// BookingService is the booking lifecycle core: creation gated by the
// minimum order, status transitions gated by the lifecycle table and the
// role policy, plus the post-completion payment and rating records.
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	QuoteSelection(categoryID string, features, addons []SelectedItem) (pricing.Quote, error)

	UpdateStatus(actor access.Actor, bookingID string, to models.BookingStatus) (*models.Booking, error)

	GetByID(actor access.Actor, id string) (*models.Booking, error)
	GetByNumber(number string) (*models.Booking, error)
	ListForAdmin(actor access.Actor, status models.BookingStatus) ([]models.Booking, error)
	ListForCustomer(actor access.Actor) ([]models.Booking, error)

	FinalizePayment(actor access.Actor, bookingID string, amount float64, method string) (*models.Payment, error)
	RateBooking(actor access.Actor, bookingID string, stars int, comment string) (*models.Rating, error)
}
