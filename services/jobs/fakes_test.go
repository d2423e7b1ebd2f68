package jobs

import (
	"sort"
	"sync"
	"time"

	bookingRepo "handrest/database/repository/booking"
	userRepo "handrest/database/repository/user"
	"handrest/models"
)

// memBookingRepo is an in-memory BookingRepository with the same conditional
// write semantics as the Mongo implementation, so the acceptance protocol can
// be exercised under real goroutine contention.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
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
	return nil, nil
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
	// Same ordering as the Mongo sort: scheduled date asc, then creation
	// time asc.
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledDate != out[j].ScheduledDate {
			return out[i].ScheduledDate < out[j].ScheduledDate
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
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
	return copyBooking(b), nil
}

func (r *memBookingRepo) SavePayment(p *models.Payment) error               { return nil }
func (r *memBookingRepo) ListPayments(string) ([]models.Payment, error)     { return nil, nil }
func (r *memBookingRepo) SaveRating(rt *models.Rating) error                { return nil }
func (r *memBookingRepo) GetRating(string) (*models.Rating, error)          { return nil, nil }

// fakeUsers is an in-memory UserRepository.
type fakeUsers struct {
	users map[string]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: make(map[string]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByPhone(phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) SetTokenHash(id, hash string) error { return nil }

func (f *fakeUsers) ListStaffForCoverage(panchayathID string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.RoleStaff && u.PanchayathID == panchayathID {
			out = append(out, *u)
		}
	}
	return out, nil
}

// recordingReminders captures scheduled reminders.
type recordingReminders struct {
	mu       sync.Mutex
	payloads []models.ReminderPayload
}

func (r *recordingReminders) ScheduleJobReminder(p models.ReminderPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, p)
	return nil
}
