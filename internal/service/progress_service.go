package service

import (
	"context"
	"errors"
	"math"
	"time"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProgressNotFound = errors.New("progress entry not found")
	ErrInvalidProgress  = errors.New("weight and height must be positive numbers")
)

// ProgressService manages a member's body-stats log.
type ProgressService interface {
	Add(ctx context.Context, userID string, date time.Time, weightKg, heightCm float64, notes string) (*domain.ProgressEntry, error)
	ListForUser(ctx context.Context, userID string) ([]domain.ProgressEntry, error)
	Delete(ctx context.Context, entryID, userID string) error
}

type progressService struct {
	progressRepo repository.ProgressRepository
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

// Add records a new entry. BMI is derived here so every stored log carries
// a consistent value.
func (s *progressService) Add(ctx context.Context, userID string, date time.Time, weightKg, heightCm float64, notes string) (*domain.ProgressEntry, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	if weightKg <= 0 || heightCm <= 0 {
		return nil, ErrInvalidProgress
	}

	entry := &domain.ProgressEntry{
		UserID:   uid,
		Date:     date,
		WeightKg: weightKg,
		HeightCm: heightCm,
		BMI:      computeBMI(weightKg, heightCm),
		Notes:    notes,
	}

	id, err := s.progressRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

func (s *progressService) ListForUser(ctx context.Context, userID string) ([]domain.ProgressEntry, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	return s.progressRepo.ListByUserID(ctx, uid)
}

func (s *progressService) Delete(ctx context.Context, entryID, userID string) error {
	eid, err := parseObjectID(entryID)
	if err != nil {
		return ErrProgressNotFound
	}
	uid, err := parseObjectID(userID)
	if err != nil {
		return ErrProgressNotFound
	}
	if err := s.progressRepo.Delete(ctx, eid, uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgressNotFound
		}
		return err
	}
	return nil
}

// computeBMI returns weight/height² rounded to one decimal place.
func computeBMI(weightKg, heightCm float64) float64 {
	meters := heightCm / 100
	return math.Round(weightKg/(meters*meters)*10) / 10
}
