// Package pricing computes order totals for customer-built services and
// enforces the minimum-order threshold that gates booking creation.
package pricing

import "handrest/models"

// MinimumOrder is the fixed threshold (in rupees) a booking's computed total
// must meet before submission is allowed.
const MinimumOrder float64 = 500

// LineItem is one selected feature or add-on with a unit price and quantity.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Total returns price * quantity, treating negative quantities as zero.
func (it LineItem) Total() float64 {
	if it.Quantity <= 0 {
		return 0
	}
	return it.Price * float64(it.Quantity)
}

// Selection is the customer's current pick of features and add-ons.
type Selection struct {
	Features []LineItem `json:"features"`
	AddOns   []LineItem `json:"addons"`
}

// Normalize clamps quantities at zero and drops zero-quantity items, so a
// decremented-to-zero item disappears from the selection rather than being
// retained with count 0.
func (s Selection) Normalize() Selection {
	return Selection{
		Features: dropEmpty(s.Features),
		AddOns:   dropEmpty(s.AddOns),
	}
}

func dropEmpty(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out
}

// Quote is the result of pricing a selection.
type Quote struct {
	FeatureTotal float64 `json:"feature_total"`
	AddonTotal   float64 `json:"addon_total"`
	GrandTotal   float64 `json:"grand_total"`
	MeetsMinimum bool    `json:"meets_minimum"`
}

// ComputeQuote sums line totals over the normalized selection. An empty
// selection quotes zero and never meets the minimum.
func ComputeQuote(sel Selection) Quote {
	sel = sel.Normalize()

	var q Quote
	for _, it := range sel.Features {
		q.FeatureTotal += it.Total()
	}
	for _, it := range sel.AddOns {
		q.AddonTotal += it.Total()
	}
	q.GrandTotal = q.FeatureTotal + q.AddonTotal
	q.MeetsMinimum = q.GrandTotal >= MinimumOrder
	return q
}

// EligibleFeatures filters features for a service category. A feature with
// no mapping rows at all is global and eligible everywhere; a mapped feature
// is eligible only for its mapped categories. Ineligible features must not
// appear in the selectable set and never contribute to totals.
func EligibleFeatures(features []models.CustomFeature, mappings []models.CategoryFeatureMapping, categoryID string) []models.CustomFeature {
	mapped := make(map[string]bool)
	allowed := make(map[string]bool)
	for _, m := range mappings {
		mapped[m.FeatureID] = true
		if m.CategoryID == categoryID {
			allowed[m.FeatureID] = true
		}
	}

	out := make([]models.CustomFeature, 0, len(features))
	for _, f := range features {
		if !mapped[f.ID] || allowed[f.ID] {
			out = append(out, f)
		}
	}
	return out
}
