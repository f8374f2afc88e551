package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"complainthub.backend/internal/domain/entities"
	"complainthub.backend/internal/infrastructure/models"
)

// FeedRepository implements the read side of the feed composition: one query
// joining complaints to authors with correlated subqueries for the aggregate
// counts and the viewer-relative flags. Files are fetched separately and
// grouped by the usecase.
type FeedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// feedColumns is shared by every feed variant; is_following is selected only
// where it is meaningful for the viewer.
const feedColumns = `
	c.id AS complaint_id, c.text AS text_content, c.created_at,
	u.id AS user_id, u.first_name, u.last_name, u.username, u.profile_image_url,
	(SELECT COUNT(*) FROM likes    WHERE complaint_id = c.id) AS likes,
	(SELECT COUNT(*) FROM comments WHERE complaint_id = c.id) AS comments,
	(SELECT COUNT(*) FROM reposts  WHERE complaint_id = c.id) AS reposts,
	EXISTS(SELECT 1 FROM likes   WHERE complaint_id = c.id AND user_id = @viewer) AS liked,
	EXISTS(SELECT 1 FROM saves   WHERE complaint_id = c.id AND user_id = @viewer) AS saved,
	EXISTS(SELECT 1 FROM reposts WHERE complaint_id = c.id AND user_id = @viewer) AS reposted`

const followFlagColumn = `,
	EXISTS(SELECT 1 FROM followers
	       WHERE follower_id = @viewer AND following_id = u.id) AS is_following`

type feedRow struct {
	ComplaintID     uuid.UUID
	TextContent     *string
	CreatedAt       time.Time
	UserID          uuid.UUID
	FirstName       string
	LastName        string
	Username        string
	ProfileImageURL *string
	Likes           int64
	Comments        int64
	Reposts         int64
	Liked           bool
	Saved           bool
	Reposted        bool
	IsFollowing     bool
}

// GlobalFeed returns every post not authored by the viewer, newest first.
func (r *FeedRepository) GlobalFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	var rows []feedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+feedColumns+followFlagColumn+`
		FROM complaints c
		JOIN users u ON c.user_id = u.id
		WHERE u.id <> @viewer
		ORDER BY c.created_at DESC, c.id DESC`,
		map[string]interface{}{"viewer": viewerID},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, true), nil
}

// OwnFeed returns the viewer's own posts; is_following is omitted.
func (r *FeedRepository) OwnFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	var rows []feedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+feedColumns+`
		FROM complaints c
		JOIN users u ON c.user_id = u.id
		WHERE c.user_id = @viewer
		ORDER BY c.created_at DESC, c.id DESC`,
		map[string]interface{}{"viewer": viewerID},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, false), nil
}

// UserFeed returns the target's posts with flags computed for the viewer.
func (r *FeedRepository) UserFeed(ctx context.Context, viewerID, targetID uuid.UUID) ([]*entities.FeedPost, error) {
	var rows []feedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+feedColumns+followFlagColumn+`
		FROM complaints c
		JOIN users u ON c.user_id = u.id
		WHERE c.user_id = @target
		ORDER BY c.created_at DESC, c.id DESC`,
		map[string]interface{}{"viewer": viewerID, "target": targetID},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, true), nil
}

// LikedFeed returns posts the viewer liked, excluding their own.
func (r *FeedRepository) LikedFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	var rows []feedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+feedColumns+followFlagColumn+`
		FROM complaints c
		JOIN likes l ON l.complaint_id = c.id
		JOIN users u ON c.user_id = u.id
		WHERE l.user_id = @viewer AND c.user_id <> @viewer
		ORDER BY c.created_at DESC, c.id DESC`,
		map[string]interface{}{"viewer": viewerID},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows, true), nil
}

// FilesByComplaints returns attachment rows for the given post id set. The
// caller must not pass an empty set.
func (r *FeedRepository) FilesByComplaints(ctx context.Context, complaintIDs []uuid.UUID) ([]*entities.ComplaintFile, error) {
	var ms []models.ComplaintFile
	err := r.db.WithContext(ctx).
		Where("complaint_id IN ?", complaintIDs).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	files := make([]*entities.ComplaintFile, 0, len(ms))
	for _, m := range ms {
		files = append(files, &entities.ComplaintFile{
			ID:          m.ID,
			ComplaintID: m.ComplaintID,
			FileURL:     m.FileURL,
			FileType:    entities.FileType(m.FileType),
		})
	}
	return files, nil
}

type notificationRow struct {
	ID              uuid.UUID
	Text            *string
	CreatedAt       time.Time
	UserID          uuid.UUID
	FirstName       string
	LastName        string
	Username        string
	ProfileImageURL *string
	File            *string
}

// RecentByAuthors returns posts by the given authors, newest first, with at
// most one representative file each.
func (r *FeedRepository) RecentByAuthors(ctx context.Context, authorIDs []uuid.UUID) ([]*entities.NotificationPost, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	var rows []notificationRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.text, c.created_at, c.user_id,
		       u.first_name, u.last_name, u.username, u.profile_image_url,
		       (SELECT file_url FROM complaint_files
		        WHERE complaint_id = c.id LIMIT 1) AS file
		FROM complaints c
		JOIN users u ON c.user_id = u.id
		WHERE c.user_id IN ?
		ORDER BY c.created_at DESC, c.id DESC`,
		authorIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entities.NotificationPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, &entities.NotificationPost{
			ID:        row.ID,
			Text:      null.StringFromPtr(row.Text),
			CreatedAt: row.CreatedAt,
			File:      null.StringFromPtr(row.File),
			User: entities.FeedAuthor{
				ID:              row.UserID,
				FirstName:       row.FirstName,
				LastName:        row.LastName,
				Username:        row.Username,
				ProfileImageURL: null.StringFromPtr(row.ProfileImageURL),
			},
		})
	}
	return posts, nil
}

func toFeedPosts(rows []feedRow, withFollowFlag bool) []*entities.FeedPost {
	posts := make([]*entities.FeedPost, 0, len(rows))
	for _, row := range rows {
		author := entities.FeedAuthor{
			ID:              row.UserID,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			Username:        row.Username,
			ProfileImageURL: null.StringFromPtr(row.ProfileImageURL),
		}
		if withFollowFlag {
			following := row.IsFollowing
			author.IsFollowing = &following
		}

		posts = append(posts, &entities.FeedPost{
			ID:          row.ComplaintID,
			TextContent: null.StringFromPtr(row.TextContent),
			CreatedAt:   row.CreatedAt,
			Likes:       row.Likes,
			Comments:    row.Comments,
			Reposts:     row.Reposts,
			Liked:       row.Liked,
			Saved:       row.Saved,
			Reposted:    row.Reposted,
			User:        author,
			Files:       []entities.FeedFile{},
		})
	}
	return posts
}
