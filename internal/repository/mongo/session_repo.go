package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "sessions"

// mongoSessionRepository implements repository.SessionRepository using MongoDB.
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new instance of mongoSessionRepository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new Zumba session.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.ZumbaSession) (primitive.ObjectID, error) {
	if session.Title == "" || session.ScheduledAt.IsZero() {
		return primitive.NilObjectID, errors.New("session title and scheduled time are required")
	}

	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a session by its ObjectID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ZumbaSession, error) {
	var session domain.ZumbaSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// List returns all sessions, soonest first.
func (r *mongoSessionRepository) List(ctx context.Context) ([]domain.ZumbaSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.ZumbaSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Update replaces the editable fields of a session.
func (r *mongoSessionRepository) Update(ctx context.Context, session *domain.ZumbaSession) error {
	update := bson.M{
		"$set": bson.M{
			"title":             session.Title,
			"scheduledAt":       session.ScheduledAt,
			"notifyLeadMinutes": session.NotifyLeadMinutes,
			"isActive":          session.IsActive,
			"updatedAt":         time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": session.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a session.
func (r *mongoSessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListActiveBetween returns active, not-yet-notified sessions scheduled
// within [start, end], soonest first. This is the reminder scheduler's
// per-tick query.
func (r *mongoSessionRepository) ListActiveBetween(ctx context.Context, start, end time.Time) ([]domain.ZumbaSession, error) {
	filter := bson.M{
		"isActive": true,
		"notified": false,
		"scheduledAt": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.ZumbaSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// MarkNotified flips the notified flag from false to true. The filter on
// the current value makes the transition atomic: only one caller can win,
// which keeps the reminder round at-most-once across restarts.
func (r *mongoSessionRepository) MarkNotified(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id, "notified": false}
	update := bson.M{
		"$set": bson.M{
			"notified":  true,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Already notified or missing; either way nothing to do.
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSessionIndexes creates necessary indexes for the sessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Covers the scheduler's time-window scan.
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "notified", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
