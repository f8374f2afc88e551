package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/infrastructure/models"
)

// ComplaintRepository implements complaint write operations. Create and
// AddFiles are transaction-aware so the usecase can wrap them in a
// UnitOfWork scope.
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create creates a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *entities.Complaint) error {
	m := &models.Complaint{
		ID:        complaint.ID,
		UserID:    complaint.UserID,
		Text:      complaint.Text.Ptr(),
		CreatedAt: complaint.CreatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	complaint.ID = m.ID
	return nil
}

// AddFiles stores attachment rows for a complaint.
func (r *ComplaintRepository) AddFiles(ctx context.Context, files []*entities.ComplaintFile) error {
	if len(files) == 0 {
		return nil
	}
	ms := make([]models.ComplaintFile, 0, len(files))
	for _, f := range files {
		ms = append(ms, models.ComplaintFile{
			ID:          f.ID,
			ComplaintID: f.ComplaintID,
			FileURL:     f.FileURL,
			FileType:    string(f.FileType),
		})
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(&ms).Error
}

// DeleteFiles removes the attachment rows of a complaint and returns their
// stored paths.
func (r *ComplaintRepository) DeleteFiles(ctx context.Context, complaintID uuid.UUID) ([]string, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var paths []string
	if err := db.Model(&models.ComplaintFile{}).
		Where("complaint_id = ?", complaintID).
		Pluck("file_url", &paths).Error; err != nil {
		return nil, err
	}

	if err := db.Where("complaint_id = ?", complaintID).
		Delete(&models.ComplaintFile{}).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

// DeleteOwned deletes the complaint only when ownerID owns it. The caller
// cannot distinguish a foreign post from a missing one.
func (r *ComplaintRepository) DeleteOwned(ctx context.Context, complaintID, ownerID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", complaintID, ownerID).
		Delete(&models.Complaint{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrForbidden
	}
	return nil
}

// OwnerPushToken returns the push token of the complaint's author, skipping
// the author's own reactions.
func (r *ComplaintRepository) OwnerPushToken(ctx context.Context, complaintID, excludeID uuid.UUID) (string, error) {
	var token sql.NullString
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.expo_push_token
		FROM users u
		JOIN complaints c ON u.id = c.user_id
		WHERE c.id = ? AND u.id <> ?`,
		complaintID, excludeID,
	).Scan(&token).Error
	if err != nil {
		return "", err
	}
	if !token.Valid || token.String == "" {
		return "", domainerrors.ErrNotFound
	}
	return token.String, nil
}
