package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Username:        user.Username,
		Email:           user.Email,
		PhoneCode:       user.PhoneCode,
		PhoneNumber:     user.PhoneNumber,
		DateOfBirth:     user.DateOfBirth.Ptr(),
		PasswordHash:    user.PasswordHash,
		Role:            string(user.Role),
		Bio:             user.Bio.Ptr(),
		ProfileImageURL: user.ProfileImageURL.Ptr(),
		CoverImageURL:   user.CoverImageURL.Ptr(),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// UpdateFields applies a partial update; keys are column names.
func (r *UserRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return domainerrors.ErrInvalidInput
	}
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetPushToken stores the push delivery token on the user row.
func (r *UserRepository) SetPushToken(ctx context.Context, id uuid.UUID, token string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"expo_push_token": token})
}

type profileRow struct {
	models.User
	Following   int64
	Followers   int64
	IsFollowing bool
}

// Profile returns a user with follow counts and, for foreign profiles, the
// viewer's follow state.
func (r *UserRepository) Profile(ctx context.Context, viewerID, userID uuid.UUID) (*entities.Profile, error) {
	var row profileRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.*,
		       (SELECT COUNT(*) FROM followers WHERE follower_id = u.id)  AS following,
		       (SELECT COUNT(*) FROM followers WHERE following_id = u.id) AS followers,
		       EXISTS(SELECT 1 FROM followers
		              WHERE follower_id = @viewer AND following_id = u.id) AS is_following
		FROM users u
		WHERE u.id = @user`,
		map[string]interface{}{"viewer": viewerID, "user": userID},
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, domainerrors.ErrNotFound
	}

	profile := &entities.Profile{
		User:      *toUserEntity(&row.User),
		Following: row.Following,
		Followers: row.Followers,
	}
	if viewerID != userID {
		following := row.IsFollowing
		profile.IsFollowing = &following
	}
	return profile, nil
}

type searchRow struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	Username        string
	ProfileImageURL *string
	IsFollowing     bool
}

// Search finds users by name or handle, excluding the viewer.
func (r *UserRepository) Search(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entities.UserSearchResult, error) {
	pattern := "%" + query + "%"
	var rows []searchRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.first_name, u.last_name, u.username, u.profile_image_url,
		       EXISTS(SELECT 1 FROM followers f
		              WHERE f.follower_id = @viewer AND f.following_id = u.id) AS is_following
		FROM users u
		WHERE u.id <> @viewer AND (
		      LOWER(u.first_name) LIKE LOWER(@pattern) OR
		      LOWER(u.last_name)  LIKE LOWER(@pattern) OR
		      LOWER(u.username)   LIKE LOWER(@pattern))
		ORDER BY u.username
		LIMIT @limit`,
		map[string]interface{}{"viewer": viewerID, "pattern": pattern, "limit": limit},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toSearchResults(rows), nil
}

// Newest returns the most recently created users, excluding the viewer.
func (r *UserRepository) Newest(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
	var rows []searchRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.first_name, u.last_name, u.username, u.profile_image_url,
		       EXISTS(SELECT 1 FROM followers f
		              WHERE f.follower_id = @viewer AND f.following_id = u.id) AS is_following
		FROM users u
		WHERE u.id <> @viewer
		ORDER BY u.created_at DESC
		LIMIT @limit`,
		map[string]interface{}{"viewer": viewerID, "limit": limit},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toSearchResults(rows), nil
}

// Random returns a random sample of users, excluding the viewer.
func (r *UserRepository) Random(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
	var rows []searchRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.first_name, u.last_name, u.username, u.profile_image_url,
		       EXISTS(SELECT 1 FROM followers f
		              WHERE f.follower_id = @viewer AND f.following_id = u.id) AS is_following
		FROM users u
		WHERE u.id <> @viewer
		ORDER BY RANDOM()
		LIMIT @limit`,
		map[string]interface{}{"viewer": viewerID, "limit": limit},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toSearchResults(rows), nil
}

func toSearchResults(rows []searchRow) []*entities.UserSearchResult {
	results := make([]*entities.UserSearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, &entities.UserSearchResult{
			ID:              row.ID,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			Username:        row.Username,
			ProfileImageURL: null.StringFromPtr(row.ProfileImageURL),
			IsFollowing:     row.IsFollowing,
		})
	}
	return results
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Username:        m.Username,
		Email:           m.Email,
		PhoneCode:       m.PhoneCode,
		PhoneNumber:     m.PhoneNumber,
		DateOfBirth:     null.TimeFromPtr(m.DateOfBirth),
		PasswordHash:    m.PasswordHash,
		Role:            entities.UserRole(m.Role),
		Bio:             null.StringFromPtr(m.Bio),
		ProfileImageURL: null.StringFromPtr(m.ProfileImageURL),
		CoverImageURL:   null.StringFromPtr(m.CoverImageURL),
		ExpoPushToken:   null.StringFromPtr(m.ExpoPushToken),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
