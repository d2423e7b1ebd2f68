package user

import (
	"fmt"
	"strings"
	"time"

	catalogRepo "handrest/database/repository/catalog"
	userRepo "handrest/database/repository/user"
	"handrest/models"
	"handrest/services/booking"
	"handrest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionTTL is how long an issued token stays valid.
const SessionTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Catalog  catalogRepo.CatalogRepository
	Sessions SessionStore
}

// RegisterCustomer provisions a customer account.
func (s *DefaultUserService) RegisterCustomer(req RegisterCustomerRequest) (*models.User, error) {
	mobile, err := validateIdentity(req.Name, req.Mobile, req.Password)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = pseudoEmail(mobile, models.RoleCustomer)
	}
	return s.create(&models.User{
		FullName: strings.TrimSpace(req.Name),
		Email:    email,
		Phone:    mobile,
		Role:     models.RoleCustomer,
	}, req.Password)
}

// RegisterStaff provisions a staff account bound to its coverage units.
func (s *DefaultUserService) RegisterStaff(req RegisterStaffRequest) (*models.User, error) {
	mobile, err := validateIdentity(req.Name, req.Mobile, req.Password)
	if err != nil {
		return nil, err
	}
	if req.PanchayathID == "" || len(req.WardNumbers) == 0 {
		return nil, &booking.ValidationError{Field: "coverage", Reason: "panchayath and at least one ward are required"}
	}
	if _, err := s.Catalog.GetPanchayath(req.PanchayathID); err != nil {
		if err == catalogRepo.ErrNotFound {
			return nil, &booking.ValidationError{Field: "panchayath_id", Reason: "unknown panchayath"}
		}
		return nil, err
	}

	return s.create(&models.User{
		FullName:     strings.TrimSpace(req.Name),
		Email:        pseudoEmail(mobile, models.RoleStaff),
		Phone:        mobile,
		Role:         models.RoleStaff,
		PanchayathID: req.PanchayathID,
		WardNumbers:  req.WardNumbers,
		IsAvailable:  true,
	}, req.Password)
}

func (s *DefaultUserService) create(u *models.User, password string) (*models.User, error) {
	existing, err := s.Repo.GetByPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u.ID = uuid.New().String()
	u.PasswordHash = string(hash)

	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("account registered",
		zap.String("role", string(u.Role)), zap.String("userId", u.ID))
	return u, nil
}

// Authenticate verifies the mobile/password pair and issues a session
// token. The token's hash is persisted and cached so it can be revoked.
func (s *DefaultUserService) Authenticate(mobile, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByPhone(digitsOnly(mobile))
	if err != nil {
		utils.GetLogger().Error("sign-in lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role), SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(u.ID, hash); err != nil {
		return nil, err
	}
	u.TokenHash = hash
	if s.Sessions != nil {
		if err := s.Sessions.SaveToken(u.ID, hash, SessionTTL); err != nil {
			utils.GetLogger().Warn("failed to cache session token", zap.Error(err))
		}
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// Revoke invalidates the user's active session.
func (s *DefaultUserService) Revoke(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return err
	}
	if s.Sessions != nil {
		if err := s.Sessions.DeleteToken(userID); err != nil {
			utils.GetLogger().Warn("failed to drop cached session token", zap.Error(err))
		}
	}
	return nil
}

func validateIdentity(name, mobile, password string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &booking.ValidationError{Field: "name", Reason: "required"}
	}
	clean := digitsOnly(mobile)
	if len(clean) < 10 {
		return "", &booking.ValidationError{Field: "mobile", Reason: "must contain at least 10 digits"}
	}
	if len(password) < 6 {
		return "", &booking.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return clean, nil
}

// pseudoEmail derives a store-unique email from the mobile identity, the
// same scheme the registration endpoints have always used.
func pseudoEmail(mobile string, role models.Role) string {
	return fmt.Sprintf("%s@%s.handrest.local", mobile, role)
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
