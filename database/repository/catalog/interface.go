package catalogRepo

import (
	"errors"

	"handrest/models"
)

// ErrNotFound reports that a referenced catalog record does not exist.
var ErrNotFound = errors.New("catalog record not found")

// CatalogRepository serves the read-mostly pricing reference data: service
// categories, packages, custom features, add-ons, feature-category mappings
// and panchayaths. Administrative CRUD on these lives outside the core.
type CatalogRepository interface {
	Categories() ([]models.ServiceCategory, error)
	Packages(categoryID string) ([]models.Package, error)
	FeaturedPackages() ([]models.Package, error)
	GetPackage(id string) (*models.Package, error)

	// Features returns all active custom features, display order ascending.
	Features() ([]models.CustomFeature, error)
	// FeatureMappings returns every category-feature mapping row.
	FeatureMappings() ([]models.CategoryFeatureMapping, error)
	GetFeature(id string) (*models.CustomFeature, error)

	AddOns() ([]models.AddOn, error)
	GetAddOn(id string) (*models.AddOn, error)

	Panchayaths() ([]models.Panchayath, error)
	GetPanchayath(id string) (*models.Panchayath, error)
}
