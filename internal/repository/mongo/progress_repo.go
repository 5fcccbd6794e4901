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

const progressCollectionName = "progress"

// mongoProgressRepository implements repository.ProgressRepository using MongoDB.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a new instance of mongoProgressRepository.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// Create inserts a new progress entry.
func (r *mongoProgressRepository) Create(ctx context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error) {
	if entry.UserID.IsZero() {
		return primitive.NilObjectID, errors.New("progress entry requires a user ID")
	}

	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()
	if entry.Date.IsZero() {
		entry.Date = entry.CreatedAt
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// ListByUserID returns a member's progress entries, newest first.
func (r *mongoProgressRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.ProgressEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes an entry, scoped to its owner so members cannot delete
// each other's logs.
func (r *mongoProgressRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProgressIndexes creates necessary indexes for the progress collection.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
