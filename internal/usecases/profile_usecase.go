package usecases

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/domain/repositories"
	"complainthub.backend/internal/infrastructure/storage"
	"complainthub.backend/pkg/crypto"
	"complainthub.backend/pkg/logger"
)

// Image kinds accepted by UploadImage.
const (
	ImageKindProfile = "profile"
	ImageKindCover   = "cover"
)

var imageColumns = map[string]string{
	ImageKindProfile: "profile_image_url",
	ImageKindCover:   "cover_image_url",
}

// ProfileUsecase reads and mutates user profiles.
type ProfileUsecase struct {
	userRepo repositories.UserRepository
	store    *storage.LocalStore
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(userRepo repositories.UserRepository, store *storage.LocalStore) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo, store: store}
}

// Get returns a profile with follow counts; for foreign profiles the
// viewer's follow state is included.
func (u *ProfileUsecase) Get(ctx context.Context, viewerID, userID uuid.UUID) (*entities.Profile, error) {
	return u.userRepo.Profile(ctx, viewerID, userID)
}

// Update applies a partial profile update. At least one field must be set;
// a new password is re-hashed before storage.
func (u *ProfileUsecase) Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) error {
	fields := map[string]interface{}{}
	if input.Username != "" {
		fields["username"] = input.Username
	}
	if input.Email != "" {
		fields["email"] = input.Email
	}
	if input.Phone != "" {
		fields["phone_number"] = input.Phone
	}
	if input.Password != "" {
		hash, err := crypto.HashPassword(input.Password)
		if err != nil {
			return err
		}
		fields["password_hash"] = hash
	}

	if len(fields) == 0 {
		return domainerrors.ErrInvalidInput
	}
	return u.userRepo.UpdateFields(ctx, userID, fields)
}

// UploadImage replaces the user's profile or cover image, deleting the prior
// file best-effort, and returns the new image URL.
func (u *ProfileUsecase) UploadImage(ctx context.Context, userID uuid.UUID, kind string, fh *multipart.FileHeader) (string, error) {
	column, ok := imageColumns[kind]
	if !ok {
		return "", domainerrors.ErrInvalidInput
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	path, err := u.store.SaveUserImage(kind, fh)
	if err != nil {
		return "", err
	}
	imageURL := NormalizeFileURL(path)

	if err := u.userRepo.UpdateFields(ctx, userID, map[string]interface{}{column: imageURL}); err != nil {
		if removeErr := u.store.Remove(path); removeErr != nil {
			logger.Warn(ctx, "failed to remove orphaned image",
				zap.String("path", path), zap.Error(removeErr))
		}
		return "", err
	}

	var previous string
	switch kind {
	case ImageKindProfile:
		previous = user.ProfileImageURL.String
	case ImageKindCover:
		previous = user.CoverImageURL.String
	}
	if previous != "" {
		if err := u.store.Remove(previous); err != nil {
			logger.Warn(ctx, "failed to remove previous image",
				zap.String("path", previous), zap.Error(err))
		}
	}
	return imageURL, nil
}
