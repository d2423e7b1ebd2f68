package booking

import (
	"strings"
	"time"

	bookingRepo "handrest/database/repository/booking"
	catalogRepo "handrest/database/repository/catalog"
	"handrest/models"
	"handrest/services/pricing"
	"handrest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRequiredStaff is the staff headcount a booking needs when no
// package dictates one.
const DefaultRequiredStaff = 2

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalogRepo.CatalogRepository
	Numbers NumberSource
	Audit   AuditSink // optional; nil disables override reporting
}

// QuoteSelection resolves the selected feature and add-on IDs against the
// catalog and prices them. Unknown or category-ineligible items are rejected
// so they can never contribute to a total.
func (s *DefaultBookingService) QuoteSelection(categoryID string, features, addons []SelectedItem) (pricing.Quote, error) {
	sel, err := s.resolveSelection(categoryID, features, addons)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.ComputeQuote(sel), nil
}

func (s *DefaultBookingService) resolveSelection(categoryID string, features, addons []SelectedItem) (pricing.Selection, error) {
	var sel pricing.Selection

	if len(features) > 0 {
		all, err := s.Catalog.Features()
		if err != nil {
			return sel, err
		}
		mappings, err := s.Catalog.FeatureMappings()
		if err != nil {
			return sel, err
		}
		eligible := make(map[string]models.CustomFeature)
		for _, f := range pricing.EligibleFeatures(all, mappings, categoryID) {
			eligible[f.ID] = f
		}
		for _, it := range features {
			f, ok := eligible[it.ID]
			if !ok {
				return sel, &ValidationError{Field: "features", Reason: "unknown or ineligible feature " + it.ID}
			}
			sel.Features = append(sel.Features, pricing.LineItem{
				ID: f.ID, Name: f.Name, Price: f.Price, Quantity: it.Quantity,
			})
		}
	}

	if len(addons) > 0 {
		all, err := s.Catalog.AddOns()
		if err != nil {
			return sel, err
		}
		byID := make(map[string]models.AddOn, len(all))
		for _, a := range all {
			byID[a.ID] = a
		}
		for _, it := range addons {
			a, ok := byID[it.ID]
			if !ok {
				return sel, &ValidationError{Field: "addons", Reason: "unknown add-on " + it.ID}
			}
			sel.AddOns = append(sel.AddOns, pricing.LineItem{
				ID: a.ID, Name: a.Name, Price: a.Price, Quantity: it.Quantity,
			})
		}
	}

	return sel.Normalize(), nil
}

// CreateBooking validates the submission, re-prices it server-side, checks
// the minimum order and persists a pending booking. Nothing is written when
// any check fails.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, &ValidationError{Field: "customer_name", Reason: "required"}
	}
	phone := digitsOnly(req.CustomerPhone)
	if len(phone) < 10 {
		return nil, &ValidationError{Field: "customer_phone", Reason: "must contain at least 10 digits"}
	}
	if req.ScheduledDate == "" {
		return nil, &ValidationError{Field: "scheduled_date", Reason: "required"}
	}
	if _, err := time.Parse("2006-01-02", req.ScheduledDate); err != nil {
		return nil, &ValidationError{Field: "scheduled_date", Reason: "must be formatted YYYY-MM-DD"}
	}
	if strings.TrimSpace(req.ScheduledTime) == "" {
		return nil, &ValidationError{Field: "scheduled_time", Reason: "required"}
	}
	if req.PanchayathID != "" {
		if _, err := s.Catalog.GetPanchayath(req.PanchayathID); err != nil {
			if err == catalogRepo.ErrNotFound {
				return nil, &ValidationError{Field: "panchayath_id", Reason: "unknown panchayath"}
			}
			return nil, err
		}
	}

	requiredStaff := DefaultRequiredStaff
	var basePrice float64

	categoryID := req.CategoryID
	if req.PackageID != "" {
		pkg, err := s.Catalog.GetPackage(req.PackageID)
		if err != nil {
			if err == catalogRepo.ErrNotFound {
				return nil, &ValidationError{Field: "package_id", Reason: "unknown package"}
			}
			return nil, err
		}
		basePrice += pkg.EffectivePrice()
		if pkg.MinStaff > 0 {
			requiredStaff = pkg.MinStaff
		}
		if categoryID == "" {
			categoryID = pkg.CategoryID
		}
	}

	sel, err := s.resolveSelection(categoryID, req.Features, req.AddOns)
	if err != nil {
		return nil, err
	}
	quote := pricing.ComputeQuote(sel)
	basePrice += quote.FeatureTotal
	addonPrice := quote.AddonTotal
	total := basePrice + addonPrice

	// The client pre-checks the minimum; the boundary re-validates so the
	// two can never disagree in the customer's favor.
	if total < pricing.MinimumOrder {
		return nil, &BelowMinimumOrderError{Total: total, Minimum: pricing.MinimumOrder}
	}

	number, err := s.Numbers.Next()
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:                  uuid.New().String(),
		BookingNumber:       number,
		PackageID:           req.PackageID,
		CustomerUserID:      req.CustomerUserID,
		CustomerName:        strings.TrimSpace(req.CustomerName),
		CustomerEmail:       strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:       phone,
		AddressLine1:        req.AddressLine1,
		AddressLine2:        req.AddressLine2,
		City:                req.City,
		Pincode:             req.Pincode,
		Landmark:            req.Landmark,
		PropertySqft:        req.PropertySqft,
		PanchayathID:        req.PanchayathID,
		WardNumber:          req.WardNumber,
		ScheduledDate:       req.ScheduledDate,
		ScheduledTime:       req.ScheduledTime,
		SpecialInstructions: req.SpecialInstructions,
		BasePrice:           basePrice,
		AddonPrice:          addonPrice,
		TotalPrice:          total,
		RequiredStaffCount:  requiredStaff,
		Status:              models.StatusPending,
		Assignments:         []models.Assignment{},
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingNumber", b.BookingNumber),
		zap.Float64("total", b.TotalPrice),
		zap.Int("requiredStaff", b.RequiredStaffCount))
	return b, nil
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
