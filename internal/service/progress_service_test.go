package service

import (
	"context"
	"testing"
	"time"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProgressRepo struct {
	entries map[primitive.ObjectID]*domain.ProgressEntry
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[primitive.ObjectID]*domain.ProgressEntry)}
}

func (f *fakeProgressRepo) Create(_ context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	f.entries[entry.ID] = entry
	return entry.ID, nil
}

func (f *fakeProgressRepo) ListByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	var out []domain.ProgressEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	e, ok := f.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

func TestProgressService_AddComputesBMI(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo())
	userID := primitive.NewObjectID().Hex()

	entry, err := svc.Add(context.Background(), userID, time.Now(), 80, 175, "")
	require.NoError(t, err)
	assert.InDelta(t, 26.1, entry.BMI, 0.001)
}

func TestProgressService_AddRejectsNonPositive(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo())
	userID := primitive.NewObjectID().Hex()

	_, err := svc.Add(context.Background(), userID, time.Now(), 0, 175, "")
	assert.ErrorIs(t, err, ErrInvalidProgress)

	_, err = svc.Add(context.Background(), userID, time.Now(), 80, -1, "")
	assert.ErrorIs(t, err, ErrInvalidProgress)
}

func TestProgressService_DeleteScopedToOwner(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo)

	owner := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()

	entry, err := svc.Add(context.Background(), owner, time.Now(), 80, 175, "")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), entry.ID.Hex(), other)
	assert.ErrorIs(t, err, ErrProgressNotFound)

	err = svc.Delete(context.Background(), entry.ID.Hex(), owner)
	assert.NoError(t, err)
}
