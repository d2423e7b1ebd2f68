package bookingRepo

import (
	"time"

	"handrest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PushAssignment records an accepted assignment in one conditional pipeline
// update. The filter only matches while the booking is still confirmed, the
// staff member has not acted on it, and a slot remains; the pipeline appends
// the assignment, bumps the accepted count and flips the status to assigned
// when the last slot fills. Two staff racing for the final slot can therefore
// never both match - the loser gets ErrConditionFailed.
func (r *MongoBookingRepo) PushAssignment(bookingID string, asg models.Assignment) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     bookingID,
		"status": models.StatusConfirmed,
		"assignments": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"staff_user_id": asg.StaffUserID,
		}}},
		"$expr": bson.M{"$lt": bson.A{"$accepted_count", "$required_staff_count"}},
	}

	asgDoc := bson.D{
		{Key: "id", Value: asg.ID},
		{Key: "booking_id", Value: bookingID},
		{Key: "staff_user_id", Value: asg.StaffUserID},
		{Key: "status", Value: models.AssignmentAccepted},
		{Key: "assigned_at", Value: asg.AssignedAt},
	}
	newCount := bson.D{{Key: "$add", Value: bson.A{"$accepted_count", 1}}}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "assignments", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$assignments", bson.A{}}}},
				bson.A{asgDoc},
			}}}},
			{Key: "accepted_count", Value: newCount},
			{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$gte", Value: bson.A{newCount, "$required_staff_count"}}}},
				{Key: "then", Value: models.StatusAssigned},
				{Key: "else", Value: "$status"},
			}}}},
			{Key: "updated_at", Value: time.Now()},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConditionFailed
		}
		return nil, err
	}
	return &b, nil
}

// PushRejection records a rejected assignment. It only requires that the
// booking is still open and the staff member has not acted on it; rejection
// never touches the booking status or the accepted count.
func (r *MongoBookingRepo) PushRejection(bookingID string, asg models.Assignment) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     bookingID,
		"status": models.StatusConfirmed,
		"assignments": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"staff_user_id": asg.StaffUserID,
		}}},
	}
	asg.BookingID = bookingID
	asg.Status = models.AssignmentRejected
	update := bson.M{
		"$push": bson.M{"assignments": asg},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConditionFailed
		}
		return nil, err
	}
	return &b, nil
}
