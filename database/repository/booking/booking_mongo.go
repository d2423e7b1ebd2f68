package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll        *mongo.Collection
	paymentColl *mongo.Collection
	ratingColl  *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		coll:        db.Collection("bookings"),
		paymentColl: db.Collection("payments"),
		ratingColl:  db.Collection("ratings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "panchayath_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_user_id", Value: 1}}},
		{Keys: bson.D{{Key: "assignments.staff_user_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	ratingIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "booking_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.ratingColl.Indexes().CreateOne(ctx, ratingIdx); err != nil {
		return fmt.Errorf("failed to create rating index: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Assignments == nil {
		b.Assignments = []models.Assignment{}
	}

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByNumber retrieves a booking by its human-readable booking number.
func (r *MongoBookingRepo) GetByNumber(number string) (*models.Booking, error) {
	return r.findOne(bson.M{"booking_number": number})
}

func (r *MongoBookingRepo) findOne(filter bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &b, nil
}

// ListByStatus returns bookings with the given status, newest first.
// An empty status returns all bookings.
func (r *MongoBookingRepo) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return r.findMany(filter, sort)
}

// ListByCustomer returns a customer's bookings, newest first.
func (r *MongoBookingRepo) ListByCustomer(customerUserID string) ([]models.Booking, error) {
	filter := bson.M{"customer_user_id": customerUserID}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return r.findMany(filter, sort)
}

// ListOpenForCoverage returns confirmed bookings inside the staff member's
// coverage that they have not yet accepted or rejected, ordered by scheduled
// date ascending with creation time as the tiebreak.
func (r *MongoBookingRepo) ListOpenForCoverage(panchayathID string, wards []int, excludeStaffUserID string) ([]models.Booking, error) {
	filter := bson.M{
		"status":                    models.StatusConfirmed,
		"panchayath_id":             panchayathID,
		"assignments.staff_user_id": bson.M{"$ne": excludeStaffUserID},
	}
	if len(wards) > 0 {
		// A booking without a ward number is open to the whole panchayath.
		filter["$or"] = bson.A{
			bson.M{"ward_number": bson.M{"$exists": false}},
			bson.M{"ward_number": 0},
			bson.M{"ward_number": bson.M{"$in": wards}},
		}
	}
	sort := bson.D{{Key: "scheduled_date", Value: 1}, {Key: "created_at", Value: 1}}
	return r.findMany(filter, sort)
}

// ListForStaff returns bookings with an accepted assignment for the staff
// member, scheduled soonest first.
func (r *MongoBookingRepo) ListForStaff(staffUserID string, statuses []models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{
		"assignments": bson.M{"$elemMatch": bson.M{
			"staff_user_id": staffUserID,
			"status":        models.AssignmentAccepted,
		}},
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	sort := bson.D{{Key: "scheduled_date", Value: 1}, {Key: "created_at", Value: 1}}
	return r.findMany(filter, sort)
}

func (r *MongoBookingRepo) findMany(filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return out, nil
}
