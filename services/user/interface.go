package user

import (
	"errors"
	"time"

	"handrest/models"
)

var (
	// ErrPhoneExists reports a registration attempt with a mobile number
	// that already has an account.
	ErrPhoneExists = errors.New("an account with this mobile number already exists")
	// ErrInvalidCredentials reports a failed sign-in. Deliberately vague.
	ErrInvalidCredentials = errors.New("invalid mobile number or password")
)

// RegisterCustomerRequest provisions a customer account.
type RegisterCustomerRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// RegisterStaffRequest provisions a staff account with its coverage.
type RegisterStaffRequest struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Password     string `json:"password"`
	PanchayathID string `json:"panchayath_id"`
	WardNumbers  []int  `json:"ward_numbers"`
}

// AuthResponse is a successful sign-in.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// SessionStore caches active session token hashes with a TTL so middleware
// can check revocation without a database round trip.
type SessionStore interface {
	SaveToken(userID, tokenHash string, ttl time.Duration) error
	// GetToken returns "" when no session is cached for the user.
	GetToken(userID string) (string, error)
	DeleteToken(userID string) error
}

// UserService covers registration, sign-in and session revocation. The
// identity scheme is mobile based: numbers are normalized to digits and a
// derived pseudo-email keeps store-level uniqueness.
type UserService interface {
	RegisterCustomer(req RegisterCustomerRequest) (*models.User, error)
	RegisterStaff(req RegisterStaffRequest) (*models.User, error)
	Authenticate(mobile, password string) (*AuthResponse, error)
	Revoke(userID string) error
}
