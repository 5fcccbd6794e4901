package repository

import (
	"context"
	"time"

	"fittrack/gym-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// ListOptedInWithEmail returns every user with reminders enabled and a
	// non-empty email address. Feeds the reminder scheduler.
	ListOptedInWithEmail(ctx context.Context) ([]domain.User, error)
	SetNotifyOptIn(ctx context.Context, id primitive.ObjectID, optIn bool) error
	SetAvatarKey(ctx context.Context, id primitive.ObjectID, key string) error
}

// SessionRepository defines the interface for interacting with Zumba
// session data.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.ZumbaSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ZumbaSession, error)
	List(ctx context.Context) ([]domain.ZumbaSession, error)
	Update(ctx context.Context, session *domain.ZumbaSession) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ListActiveBetween returns active, not-yet-notified sessions scheduled
	// within [start, end].
	ListActiveBetween(ctx context.Context, start, end time.Time) ([]domain.ZumbaSession, error)
	// MarkNotified atomically flips notified from false to true.
	MarkNotified(ctx context.Context, id primitive.ObjectID) error
}

// ProgressRepository defines the interface for interacting with member
// progress logs.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error)
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
