package userRepo

import (
	"errors"

	"handrest/models"
)

// ErrNotFound reports that no user matched the given identity.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence for platform accounts.
type UserRepository interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByPhone returns nil, nil when no account exists for the phone.
	GetByPhone(phone string) (*models.User, error)
	// SetTokenHash stores the sha256 of the active session token; an empty
	// hash revokes the session.
	SetTokenHash(id, hash string) error
	// ListStaffForCoverage returns available staff serving the panchayath.
	ListStaffForCoverage(panchayathID string) ([]models.User, error)
}
