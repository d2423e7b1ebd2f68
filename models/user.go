package models

import "time"

// User is a platform account. Identity is mobile based: the phone number is
// normalized to digits and doubles as the login handle, with a derived
// pseudo-email kept for uniqueness.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"` // sha256 of the active session token

	// Staff coverage: the panchayath and wards this staff member serves.
	PanchayathID string `bson:"panchayath_id,omitempty" json:"panchayath_id,omitempty"`
	WardNumbers  []int  `bson:"ward_numbers,omitempty" json:"ward_numbers,omitempty"`
	IsAvailable  bool   `bson:"is_available" json:"is_available"`

	// Admin tab allow-list, data driven. Ignored for other roles.
	Permissions []string `bson:"permissions,omitempty" json:"permissions,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CoversBooking reports whether this staff member's coverage includes the
// booking's panchayath and ward. A booking without a ward number matches any
// ward inside its panchayath.
func (u *User) CoversBooking(panchayathID string, wardNumber int) bool {
	if u.PanchayathID == "" || u.PanchayathID != panchayathID {
		return false
	}
	if wardNumber == 0 || len(u.WardNumbers) == 0 {
		return true
	}
	for _, w := range u.WardNumbers {
		if w == wardNumber {
			return true
		}
	}
	return false
}
