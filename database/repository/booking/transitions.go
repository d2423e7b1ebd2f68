package bookingRepo

import (
	"time"

	"handrest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateStatus moves a booking from exactly `from` to `to`. The current
// status is part of the filter, so a booking mutated by a concurrent actor
// after the caller last observed it will simply not match and the write
// becomes a no-op, reported as ErrConditionFailed.
func (r *MongoBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	set := bson.M{
		"status":     to,
		"updated_at": now,
	}
	// completed_at is written in the same update that enters completed, so
	// the invariant (non-null iff completed) can never be observed broken.
	if to == models.StatusCompleted {
		set["completed_at"] = now
	}

	filter := bson.M{"id": id, "status": from}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConditionFailed
		}
		return nil, err
	}
	return &b, nil
}

// ForceStatus sets the status regardless of the current one. Used only by
// the admin override path; the pipeline keeps completed_at consistent:
// entering completed stamps it once, leaving completed clears it.
func (r *MongoBookingRepo) ForceStatus(id string, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	var completedAt interface{}
	if to == models.StatusCompleted {
		completedAt = bson.D{{Key: "$ifNull", Value: bson.A{"$completed_at", now}}}
	} else {
		completedAt = nil
	}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: to},
			{Key: "updated_at", Value: now},
			{Key: "completed_at", Value: completedAt},
		}}},
	}

	filter := bson.M{"id": id}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
