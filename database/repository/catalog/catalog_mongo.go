package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"handrest/database"
	"handrest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	categories  *mongo.Collection
	packages    *mongo.Collection
	features    *mongo.Collection
	addons      *mongo.Collection
	mappings    *mongo.Collection
	panchayaths *mongo.Collection
}

// NewMongoCatalogRepo creates a new CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &MongoCatalogRepo{
		categories:  db.Collection("service_categories"),
		packages:    db.Collection("packages"),
		features:    db.Collection("custom_features"),
		addons:      db.Collection("addons"),
		mappings:    db.Collection("category_feature_mappings"),
		panchayaths: db.Collection("panchayaths"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

var displayOrder = bson.D{{Key: "display_order", Value: 1}}

func findAll[T any](coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func findByID[T any](coll *mongo.Collection, id string) (*T, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rec T
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s %s: %w", coll.Name(), id, err)
	}
	return &rec, nil
}

// Categories returns active service categories in display order.
func (r *MongoCatalogRepo) Categories() ([]models.ServiceCategory, error) {
	return findAll[models.ServiceCategory](r.categories, bson.M{"is_active": true}, displayOrder)
}

// Packages returns active packages for a category in display order.
func (r *MongoCatalogRepo) Packages(categoryID string) ([]models.Package, error) {
	filter := bson.M{"is_active": true}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	return findAll[models.Package](r.packages, filter, displayOrder)
}

// FeaturedPackages returns active packages flagged for promotional banners.
func (r *MongoCatalogRepo) FeaturedPackages() ([]models.Package, error) {
	filter := bson.M{"is_active": true, "is_featured": true}
	return findAll[models.Package](r.packages, filter, displayOrder)
}

func (r *MongoCatalogRepo) GetPackage(id string) (*models.Package, error) {
	return findByID[models.Package](r.packages, id)
}

// Features returns all active custom features in display order.
func (r *MongoCatalogRepo) Features() ([]models.CustomFeature, error) {
	return findAll[models.CustomFeature](r.features, bson.M{"is_active": true}, displayOrder)
}

// FeatureMappings returns every category-feature mapping row.
func (r *MongoCatalogRepo) FeatureMappings() ([]models.CategoryFeatureMapping, error) {
	return findAll[models.CategoryFeatureMapping](r.mappings, bson.M{}, nil)
}

func (r *MongoCatalogRepo) GetFeature(id string) (*models.CustomFeature, error) {
	return findByID[models.CustomFeature](r.features, id)
}

// AddOns returns all active add-ons in display order.
func (r *MongoCatalogRepo) AddOns() ([]models.AddOn, error) {
	return findAll[models.AddOn](r.addons, bson.M{"is_active": true}, displayOrder)
}

func (r *MongoCatalogRepo) GetAddOn(id string) (*models.AddOn, error) {
	return findByID[models.AddOn](r.addons, id)
}

// Panchayaths returns all active coverage units sorted by name.
func (r *MongoCatalogRepo) Panchayaths() ([]models.Panchayath, error) {
	return findAll[models.Panchayath](r.panchayaths, bson.M{"is_active": true}, bson.D{{Key: "name", Value: 1}})
}

func (r *MongoCatalogRepo) GetPanchayath(id string) (*models.Panchayath, error) {
	return findByID[models.Panchayath](r.panchayaths, id)
}
