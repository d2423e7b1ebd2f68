package bookingRepo

import (
	"fmt"
	"time"

	"handrest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SavePayment inserts a settlement record for a booking.
func (r *MongoBookingRepo) SavePayment(p *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.CreatedAt = time.Now()
	if _, err := r.paymentColl.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

// ListPayments returns all payments recorded against a booking.
func (r *MongoBookingRepo) ListPayments(bookingID string) ([]models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.paymentColl.Find(ctx, bson.M{"booking_id": bookingID}, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Payment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return out, nil
}

// SaveRating inserts the customer's rating. The unique index on booking_id
// enforces one rating per booking at the store level.
func (r *MongoBookingRepo) SaveRating(rt *models.Rating) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rt.CreatedAt = time.Now()
	if _, err := r.ratingColl.InsertOne(ctx, rt); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	return nil
}

// GetRating returns the rating for a booking, or nil if none exists.
func (r *MongoBookingRepo) GetRating(bookingID string) (*models.Rating, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rt models.Rating
	err := r.ratingColl.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&rt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rating: %w", err)
	}
	return &rt, nil
}
