package service

import (
	"context"
	"errors"
	"time"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("session title and a future scheduled time are required")
)

// SessionService is the admin-facing management of scheduled Zumba
// sessions. The reminder scheduler reads the same collection through the
// repository directly.
type SessionService interface {
	Create(ctx context.Context, title string, scheduledAt time.Time, leadMinutes int, isActive bool) (*domain.ZumbaSession, error)
	Get(ctx context.Context, id string) (*domain.ZumbaSession, error)
	List(ctx context.Context) ([]domain.ZumbaSession, error)
	Update(ctx context.Context, id, title string, scheduledAt time.Time, leadMinutes int, isActive bool) (*domain.ZumbaSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) Create(ctx context.Context, title string, scheduledAt time.Time, leadMinutes int, isActive bool) (*domain.ZumbaSession, error) {
	if title == "" || scheduledAt.IsZero() {
		return nil, ErrInvalidSession
	}
	if leadMinutes < 0 {
		leadMinutes = 0
	}

	session := &domain.ZumbaSession{
		Title:             title,
		ScheduledAt:       scheduledAt.UTC(),
		NotifyLeadMinutes: leadMinutes,
		IsActive:          isActive,
	}

	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = id
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*domain.ZumbaSession, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	session, err := s.sessionRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context) ([]domain.ZumbaSession, error) {
	return s.sessionRepo.List(ctx)
}

func (s *sessionService) Update(ctx context.Context, id, title string, scheduledAt time.Time, leadMinutes int, isActive bool) (*domain.ZumbaSession, error) {
	if title == "" || scheduledAt.IsZero() {
		return nil, ErrInvalidSession
	}

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Title = title
	session.ScheduledAt = scheduledAt.UTC()
	session.NotifyLeadMinutes = leadMinutes
	session.IsActive = isActive

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return ErrSessionNotFound
	}
	if err := s.sessionRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}
