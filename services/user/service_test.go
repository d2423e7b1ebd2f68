package user

import (
	"errors"
	"testing"
	"time"

	catalogRepo "handrest/database/repository/catalog"
	userRepo "handrest/database/repository/user"
	"handrest/models"
	"handrest/services/booking"
	"handrest/utils"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByPhone(phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetTokenHash(id, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	u.TokenHash = hash
	return nil
}

func (f *fakeUserRepo) ListStaffForCoverage(panchayathID string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.RoleStaff && u.PanchayathID == panchayathID {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeSessions struct {
	tokens map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[string]string)}
}

func (f *fakeSessions) SaveToken(userID, tokenHash string, ttl time.Duration) error {
	f.tokens[userID] = tokenHash
	return nil
}

func (f *fakeSessions) GetToken(userID string) (string, error) {
	return f.tokens[userID], nil
}

func (f *fakeSessions) DeleteToken(userID string) error {
	delete(f.tokens, userID)
	return nil
}

// fakePanchayaths answers only GetPanchayath; registration never touches
// the rest of the catalog.
type fakePanchayaths struct {
	known map[string]models.Panchayath
}

func (c *fakePanchayaths) Categories() ([]models.ServiceCategory, error)     { return nil, nil }
func (c *fakePanchayaths) Packages(string) ([]models.Package, error)         { return nil, nil }
func (c *fakePanchayaths) FeaturedPackages() ([]models.Package, error)       { return nil, nil }
func (c *fakePanchayaths) GetPackage(string) (*models.Package, error)        { return nil, catalogRepo.ErrNotFound }
func (c *fakePanchayaths) Features() ([]models.CustomFeature, error)         { return nil, nil }
func (c *fakePanchayaths) FeatureMappings() ([]models.CategoryFeatureMapping, error) {
	return nil, nil
}
func (c *fakePanchayaths) GetFeature(string) (*models.CustomFeature, error) { return nil, catalogRepo.ErrNotFound }
func (c *fakePanchayaths) AddOns() ([]models.AddOn, error)                  { return nil, nil }
func (c *fakePanchayaths) GetAddOn(string) (*models.AddOn, error)           { return nil, catalogRepo.ErrNotFound }
func (c *fakePanchayaths) Panchayaths() ([]models.Panchayath, error)        { return nil, nil }

func (c *fakePanchayaths) GetPanchayath(id string) (*models.Panchayath, error) {
	p, ok := c.known[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &p, nil
}

func newTestUserService() (*DefaultUserService, *fakeUserRepo, *fakeSessions) {
	repo := newFakeUserRepo()
	sessions := newFakeSessions()
	svc := &DefaultUserService{
		Repo: repo,
		Catalog: &fakePanchayaths{known: map[string]models.Panchayath{
			"p1": {ID: "p1", Name: "Kumarakom", Wards: 22, IsActive: true},
		}},
		Sessions: sessions,
	}
	return svc, repo, sessions
}

func TestRegisterCustomer(t *testing.T) {
	svc, repo, _ := newTestUserService()

	u, err := svc.RegisterCustomer(RegisterCustomerRequest{
		Name:     "Anjali Menon",
		Mobile:   "+91 98470 12345",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("RegisterCustomer failed: %v", err)
	}
	if u.Role != models.RoleCustomer {
		t.Errorf("role = %s, want customer", u.Role)
	}
	if u.Phone != "919847012345" {
		t.Errorf("phone not normalized: %q", u.Phone)
	}
	if u.Email != "919847012345@customer.handrest.local" {
		t.Errorf("pseudo email = %q", u.Email)
	}
	if u.PasswordHash == "" || u.PasswordHash == "secret1" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) != nil {
		t.Error("stored hash does not verify the password")
	}
	if _, err := repo.GetByID(u.ID); err != nil {
		t.Errorf("account not persisted: %v", err)
	}
}

func TestRegisterCustomerKeepsProvidedEmail(t *testing.T) {
	svc, _, _ := newTestUserService()

	u, err := svc.RegisterCustomer(RegisterCustomerRequest{
		Name:     "Anjali Menon",
		Mobile:   "9847012345",
		Password: "secret1",
		Email:    "anjali@example.com",
	})
	if err != nil {
		t.Fatalf("RegisterCustomer failed: %v", err)
	}
	if u.Email != "anjali@example.com" {
		t.Errorf("email = %q, want the provided address", u.Email)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestUserService()

	tests := []struct {
		name string
		req  RegisterCustomerRequest
	}{
		{"missing name", RegisterCustomerRequest{Mobile: "9847012345", Password: "secret1"}},
		{"short mobile", RegisterCustomerRequest{Name: "A", Mobile: "12345", Password: "secret1"}},
		{"short password", RegisterCustomerRequest{Name: "A", Mobile: "9847012345", Password: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterCustomer(tt.req)
			var verr *booking.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _, _ := newTestUserService()

	req := RegisterCustomerRequest{Name: "Anjali", Mobile: "9847012345", Password: "secret1"}
	if _, err := svc.RegisterCustomer(req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	// Same digits under different formatting still collide.
	req.Mobile = "98470-12345"
	_, err := svc.RegisterCustomer(req)
	if !errors.Is(err, ErrPhoneExists) {
		t.Fatalf("err = %v, want ErrPhoneExists", err)
	}
}

func TestRegisterStaffCoverage(t *testing.T) {
	svc, _, _ := newTestUserService()

	u, err := svc.RegisterStaff(RegisterStaffRequest{
		Name:         "Biju Thomas",
		Mobile:       "9876543210",
		Password:     "secret1",
		PanchayathID: "p1",
		WardNumbers:  []int{3, 7},
	})
	if err != nil {
		t.Fatalf("RegisterStaff failed: %v", err)
	}
	if u.Role != models.RoleStaff {
		t.Errorf("role = %s, want staff", u.Role)
	}
	if u.PanchayathID != "p1" || len(u.WardNumbers) != 2 {
		t.Errorf("coverage = %s %v", u.PanchayathID, u.WardNumbers)
	}
	if !u.IsAvailable {
		t.Error("new staff should start available")
	}

	// Missing coverage is rejected.
	_, err = svc.RegisterStaff(RegisterStaffRequest{
		Name: "Biju", Mobile: "9876500000", Password: "secret1",
	})
	var verr *booking.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	// Unknown panchayath is rejected.
	_, err = svc.RegisterStaff(RegisterStaffRequest{
		Name: "Biju", Mobile: "9876500000", Password: "secret1",
		PanchayathID: "nope", WardNumbers: []int{1},
	})
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, repo, sessions := newTestUserService()

	u, err := svc.RegisterCustomer(RegisterCustomerRequest{
		Name: "Anjali", Mobile: "9847012345", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	resp, err := svc.Authenticate("98470 12345", "secret1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("no token issued")
	}
	if resp.User.ID != u.ID {
		t.Fatalf("authenticated user %s, want %s", resp.User.ID, u.ID)
	}

	// The persisted and cached hashes match the issued token.
	wantHash := utils.HashToken(resp.Token)
	stored, _ := repo.GetByID(u.ID)
	if stored.TokenHash != wantHash {
		t.Error("persisted token hash does not match issued token")
	}
	if cached, _ := sessions.GetToken(u.ID); cached != wantHash {
		t.Error("cached token hash does not match issued token")
	}

	// The token round-trips through claim extraction.
	sub, role, err := utils.ExtractClaimsFromToken(resp.Token)
	if err != nil {
		t.Fatalf("claims extraction failed: %v", err)
	}
	if sub != u.ID || role != string(models.RoleCustomer) {
		t.Fatalf("claims = %s/%s", sub, role)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestUserService()

	if _, err := svc.RegisterCustomer(RegisterCustomerRequest{
		Name: "Anjali", Mobile: "9847012345", Password: "secret1",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := svc.Authenticate("9847012345", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate("0000000000", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown mobile err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRevoke(t *testing.T) {
	svc, repo, sessions := newTestUserService()

	u, err := svc.RegisterCustomer(RegisterCustomerRequest{
		Name: "Anjali", Mobile: "9847012345", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := svc.Authenticate("9847012345", "secret1"); err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if err := svc.Revoke(u.ID); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	stored, _ := repo.GetByID(u.ID)
	if stored.TokenHash != "" {
		t.Error("revocation must clear the persisted token hash")
	}
	if cached, _ := sessions.GetToken(u.ID); cached != "" {
		t.Error("revocation must drop the cached session token")
	}
}
