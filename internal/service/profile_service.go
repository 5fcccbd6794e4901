package service

import (
	"context"
	"errors"
	"fmt"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/repository"
	"fittrack/gym-app/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoAvatar     = errors.New("no avatar uploaded for this user")
)

// AvatarUpload bundles the presigned URL the client PUTs the file to and
// the object key that must be confirmed afterwards.
type AvatarUpload struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ProfileService covers member self-service: the reminder opt-in toggle
// and the avatar/settings picture upload via presigned S3 URLs.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	SetNotifyOptIn(ctx context.Context, userID string, optIn bool) error
	RequestAvatarUpload(ctx context.Context, userID, contentType string) (*AvatarUpload, error)
	ConfirmAvatarUpload(ctx context.Context, userID, objectKey string) error
	AvatarDownloadURL(ctx context.Context, userID string) (string, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *profileService) SetNotifyOptIn(ctx context.Context, userID string, optIn bool) error {
	uid, err := parseObjectID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.SetNotifyOptIn(ctx, uid, optIn); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// RequestAvatarUpload generates a presigned PUT URL for the member's new
// profile picture. The key is random so stale CDN caches never serve an
// old image under a reused name.
func (s *profileService) RequestAvatarUpload(ctx context.Context, userID, contentType string) (*AvatarUpload, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("avatars/%s/%s", userID, uuid.NewString())
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	return &AvatarUpload{UploadURL: url, ObjectKey: objectKey}, nil
}

// ConfirmAvatarUpload records the uploaded object key on the user after
// the client finished its PUT.
func (s *profileService) ConfirmAvatarUpload(ctx context.Context, userID, objectKey string) error {
	uid, err := parseObjectID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if objectKey == "" {
		return errors.New("object key is required")
	}
	if err := s.userRepo.SetAvatarKey(ctx, uid, objectKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// AvatarDownloadURL returns a short-lived GET URL for the member's
// current avatar.
func (s *profileService) AvatarDownloadURL(ctx context.Context, userID string) (string, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.AvatarKey == "" {
		return "", ErrNoAvatar
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, user.AvatarKey, storage.DefaultPresignedURLExpiry)
}
