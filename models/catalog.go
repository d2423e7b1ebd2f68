package models

import "time"

// ServiceCategory groups packages and custom features (e.g. "Deep Cleaning").
type ServiceCategory struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Icon         string    `bson:"icon,omitempty" json:"icon,omitempty"`
	DisplayOrder int       `bson:"display_order" json:"display_order"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Package is a pre-built pricing template for a service category.
type Package struct {
	ID             string    `bson:"id" json:"id"`
	CategoryID     string    `bson:"category_id" json:"category_id"`
	Name           string    `bson:"name" json:"name"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Price          float64   `bson:"price" json:"price"`
	DurationHours  int       `bson:"duration_hours" json:"duration_hours"`
	MinStaff       int       `bson:"min_staff" json:"min_staff"`
	MaxSqft        int       `bson:"max_sqft,omitempty" json:"max_sqft,omitempty"`
	Features       []string  `bson:"features" json:"features"`
	IsActive       bool      `bson:"is_active" json:"is_active"`
	DisplayOrder   int       `bson:"display_order" json:"display_order"`
	IsFeatured     bool      `bson:"is_featured" json:"is_featured"` // shown on promotional banners
	DiscountAmount float64   `bson:"discount_amount" json:"discount_amount"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// EffectivePrice is the package price after its promotional discount,
// floored at zero.
func (p Package) EffectivePrice() float64 {
	price := p.Price - p.DiscountAmount
	if price < 0 {
		return 0
	}
	return price
}

// CustomFeature is a priced line item customers pick when building their own
// service. A feature with no category mappings is global.
type CustomFeature struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Price        float64 `bson:"price" json:"price"`
	IsActive     bool    `bson:"is_active" json:"is_active"`
	DisplayOrder int     `bson:"display_order" json:"display_order"`
}

// AddOn is an optional priced extra attached to a booking.
type AddOn struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Price        float64 `bson:"price" json:"price"`
	IsActive     bool    `bson:"is_active" json:"is_active"`
	DisplayOrder int     `bson:"display_order" json:"display_order"`
}

// CategoryFeatureMapping restricts a custom feature to a service category.
type CategoryFeatureMapping struct {
	ID         string `bson:"id" json:"id"`
	CategoryID string `bson:"category_id" json:"category_id"`
	FeatureID  string `bson:"custom_feature_id" json:"custom_feature_id"`
}

// Panchayath is a geographic coverage unit; staff are matched to open jobs
// by panchayath and ward.
type Panchayath struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
	Wards    int    `bson:"wards" json:"wards"` // wards are numbered 1..Wards
	IsActive bool   `bson:"is_active" json:"is_active"`
}
