package booking

import (
	"fmt"
	"sync"
	"time"

	bookingRepo "handrest/database/repository/booking"
	catalogRepo "handrest/database/repository/catalog"
	"handrest/models"
)

// memBookingRepo is an in-memory BookingRepository mirroring the conditional
// write semantics of the Mongo implementation: status-changing writes only
// apply when their precondition holds, otherwise ErrConditionFailed.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	payments []models.Payment
	ratings  map[string]*models.Rating
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{
		bookings: make(map[string]*models.Booking),
		ratings:  make(map[string]*models.Rating),
	}
}

func (r *memBookingRepo) seed(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := b
	r.bookings[b.ID] = &cp
}

func copyBooking(b *models.Booking) *models.Booking {
	cp := *b
	cp.Assignments = append([]models.Assignment(nil), b.Assignments...)
	return &cp
}

func (r *memBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; ok {
		return fmt.Errorf("duplicate booking id %s", b.ID)
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.bookings[b.ID] = copyBooking(b)
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return copyBooking(b), nil
}

func (r *memBookingRepo) GetByNumber(number string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingNumber == number {
			return copyBooking(b), nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *memBookingRepo) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if status == "" || b.Status == status {
			out = append(out, *copyBooking(b))
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByCustomer(customerUserID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerUserID == customerUserID {
			out = append(out, *copyBooking(b))
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListOpenForCoverage(panchayathID string, wards []int, excludeStaffUserID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inWards := func(w int) bool {
		if w == 0 || len(wards) == 0 {
			return true
		}
		for _, ward := range wards {
			if ward == w {
				return true
			}
		}
		return false
	}
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != models.StatusConfirmed || b.PanchayathID != panchayathID {
			continue
		}
		if b.AssignmentFor(excludeStaffUserID) != nil {
			continue
		}
		if !inWards(b.WardNumber) {
			continue
		}
		out = append(out, *copyBooking(b))
	}
	return out, nil
}

func (r *memBookingRepo) ListForStaff(staffUserID string, statuses []models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := func(s models.BookingStatus) bool {
		if len(statuses) == 0 {
			return true
		}
		for _, st := range statuses {
			if st == s {
				return true
			}
		}
		return false
	}
	var out []models.Booking
	for _, b := range r.bookings {
		if b.HasAccepted(staffUserID) && wanted(b.Status) {
			out = append(out, *copyBooking(b))
		}
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return nil, bookingRepo.ErrConditionFailed
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	if to == models.StatusCompleted {
		now := time.Now()
		b.CompletedAt = &now
	}
	return copyBooking(b), nil
}

func (r *memBookingRepo) ForceStatus(id string, to models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	if to == models.StatusCompleted {
		if b.CompletedAt == nil {
			now := time.Now()
			b.CompletedAt = &now
		}
	} else {
		b.CompletedAt = nil
	}
	return copyBooking(b), nil
}

func (r *memBookingRepo) PushAssignment(bookingID string, asg models.Assignment) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.Status != models.StatusConfirmed {
		return nil, bookingRepo.ErrConditionFailed
	}
	if b.AssignmentFor(asg.StaffUserID) != nil {
		return nil, bookingRepo.ErrConditionFailed
	}
	if b.AcceptedCount >= b.RequiredStaffCount {
		return nil, bookingRepo.ErrConditionFailed
	}
	b.Assignments = append(b.Assignments, asg)
	b.AcceptedCount++
	if b.AcceptedCount >= b.RequiredStaffCount {
		b.Status = models.StatusAssigned
	}
	b.UpdatedAt = time.Now()
	return copyBooking(b), nil
}

func (r *memBookingRepo) PushRejection(bookingID string, asg models.Assignment) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.Status != models.StatusConfirmed {
		return nil, bookingRepo.ErrConditionFailed
	}
	if b.AssignmentFor(asg.StaffUserID) != nil {
		return nil, bookingRepo.ErrConditionFailed
	}
	b.Assignments = append(b.Assignments, asg)
	b.UpdatedAt = time.Now()
	return copyBooking(b), nil
}

func (r *memBookingRepo) SavePayment(p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, *p)
	return nil
}

func (r *memBookingRepo) ListPayments(bookingID string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memBookingRepo) SaveRating(rt *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ratings[rt.BookingID]; ok {
		return fmt.Errorf("duplicate rating for booking %s", rt.BookingID)
	}
	cp := *rt
	r.ratings[rt.BookingID] = &cp
	return nil
}

func (r *memBookingRepo) GetRating(bookingID string) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.ratings[bookingID]
	if !ok {
		return nil, nil
	}
	cp := *rt
	return &cp, nil
}

// fakeCatalog serves a fixed catalog from memory.
type fakeCatalog struct {
	packages    map[string]models.Package
	features    []models.CustomFeature
	mappings    []models.CategoryFeatureMapping
	addons      []models.AddOn
	panchayaths map[string]models.Panchayath
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		packages:    make(map[string]models.Package),
		panchayaths: make(map[string]models.Panchayath),
	}
}

func (c *fakeCatalog) Categories() ([]models.ServiceCategory, error) { return nil, nil }

func (c *fakeCatalog) Packages(categoryID string) ([]models.Package, error) {
	var out []models.Package
	for _, p := range c.packages {
		if categoryID == "" || p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *fakeCatalog) FeaturedPackages() ([]models.Package, error) { return nil, nil }

func (c *fakeCatalog) GetPackage(id string) (*models.Package, error) {
	p, ok := c.packages[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &p, nil
}

func (c *fakeCatalog) Features() ([]models.CustomFeature, error) { return c.features, nil }

func (c *fakeCatalog) FeatureMappings() ([]models.CategoryFeatureMapping, error) {
	return c.mappings, nil
}

func (c *fakeCatalog) GetFeature(id string) (*models.CustomFeature, error) {
	for _, f := range c.features {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, catalogRepo.ErrNotFound
}

func (c *fakeCatalog) AddOns() ([]models.AddOn, error) { return c.addons, nil }

func (c *fakeCatalog) GetAddOn(id string) (*models.AddOn, error) {
	for _, a := range c.addons {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, catalogRepo.ErrNotFound
}

func (c *fakeCatalog) Panchayaths() ([]models.Panchayath, error) { return nil, nil }

func (c *fakeCatalog) GetPanchayath(id string) (*models.Panchayath, error) {
	p, ok := c.panchayaths[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &p, nil
}

// staticNumbers issues sequential booking numbers without Redis.
type staticNumbers struct {
	mu  sync.Mutex
	seq int64
}

func (n *staticNumbers) Next() (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	return FormatBookingNumber("20260115", n.seq), nil
}

// recordingAudit captures override events for assertions.
type recordingAudit struct {
	mu     sync.Mutex
	events []models.StatusOverrideEvent
}

func (a *recordingAudit) RecordOverride(ev models.StatusOverrideEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
	return nil
}
