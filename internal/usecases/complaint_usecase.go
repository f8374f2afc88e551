package usecases

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/domain/repositories"
	"complainthub.backend/internal/infrastructure/storage"
	"complainthub.backend/pkg/logger"
)

// ComplaintUsecase handles complaint creation and deletion. Both run inside
// a transaction so a complaint and its file rows commit or roll back as one.
type ComplaintUsecase struct {
	complaintRepo repositories.ComplaintRepository
	uow           repositories.UnitOfWork
	store         *storage.LocalStore
	maxFiles      int
}

// NewComplaintUsecase creates a new complaint usecase
func NewComplaintUsecase(
	complaintRepo repositories.ComplaintRepository,
	uow repositories.UnitOfWork,
	store *storage.LocalStore,
	maxFiles int,
) *ComplaintUsecase {
	return &ComplaintUsecase{
		complaintRepo: complaintRepo,
		uow:           uow,
		store:         store,
		maxFiles:      maxFiles,
	}
}

// Create persists a complaint with up to maxFiles attachments. Uploads are
// written to disk first; if the transaction fails the stored files are
// unlinked again.
func (u *ComplaintUsecase) Create(ctx context.Context, userID uuid.UUID, text string, files []*multipart.FileHeader) (*entities.Complaint, error) {
	if text == "" && len(files) == 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	if len(files) > u.maxFiles {
		return nil, domainerrors.ErrInvalidInput
	}

	stored := make([]*storage.StoredFile, 0, len(files))
	for _, fh := range files {
		sf, err := u.store.SaveComplaintFile(fh)
		if err != nil {
			u.removeStored(ctx, stored)
			return nil, err
		}
		stored = append(stored, sf)
	}

	complaint := &entities.Complaint{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if text != "" {
		complaint.Text = null.StringFrom(text)
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.complaintRepo.Create(txCtx, complaint); err != nil {
			return err
		}

		fileRows := make([]*entities.ComplaintFile, 0, len(stored))
		for _, sf := range stored {
			fileRows = append(fileRows, &entities.ComplaintFile{
				ID:          uuid.New(),
				ComplaintID: complaint.ID,
				FileURL:     sf.Path,
				FileType:    sf.Type,
			})
		}
		return u.complaintRepo.AddFiles(txCtx, fileRows)
	})
	if err != nil {
		u.removeStored(ctx, stored)
		return nil, err
	}
	return complaint, nil
}

// Delete removes a complaint and its attachments, only for its owner. A
// foreign post and a missing one both come back as ErrForbidden.
func (u *ComplaintUsecase) Delete(ctx context.Context, callerID, complaintID uuid.UUID) error {
	var paths []string
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		// Child rows first: the file rows reference the complaint, so the
		// parent delete must come last. The ownership check still protects
		// foreign posts — a failed DeleteOwned rolls the file rows back.
		var err error
		paths, err = u.complaintRepo.DeleteFiles(txCtx, complaintID)
		if err != nil {
			return err
		}
		return u.complaintRepo.DeleteOwned(txCtx, complaintID, callerID)
	})
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := u.store.Remove(path); err != nil {
			logger.Warn(ctx, "failed to remove complaint file",
				zap.String("path", path), zap.Error(err))
		}
	}
	return nil
}

func (u *ComplaintUsecase) removeStored(ctx context.Context, stored []*storage.StoredFile) {
	for _, sf := range stored {
		if err := u.store.Remove(sf.Path); err != nil {
			logger.Warn(ctx, "failed to remove orphaned upload",
				zap.String("path", sf.Path), zap.Error(err))
		}
	}
}
