package usecases

import (
	"context"

	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
	"complainthub.backend/internal/domain/repositories"
)

// FeedUsecase composes viewer-scoped complaint feeds: the joined post rows
// from the repository plus their attached files, grouped under each post
// with normalized URLs.
type FeedUsecase struct {
	feedRepo repositories.FeedRepository
}

// NewFeedUsecase creates a new feed usecase
func NewFeedUsecase(feedRepo repositories.FeedRepository) *FeedUsecase {
	return &FeedUsecase{feedRepo: feedRepo}
}

// GlobalFeed returns every post not authored by the viewer.
func (u *FeedUsecase) GlobalFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	posts, err := u.feedRepo.GlobalFeed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return u.attachFiles(ctx, posts)
}

// OwnFeed returns the viewer's posts.
func (u *FeedUsecase) OwnFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	posts, err := u.feedRepo.OwnFeed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return u.attachFiles(ctx, posts)
}

// UserFeed returns the target user's posts with flags computed for the
// viewer.
func (u *FeedUsecase) UserFeed(ctx context.Context, viewerID, targetID uuid.UUID) ([]*entities.FeedPost, error) {
	posts, err := u.feedRepo.UserFeed(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}
	return u.attachFiles(ctx, posts)
}

// LikedFeed returns posts the viewer liked, excluding their own.
func (u *FeedUsecase) LikedFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	posts, err := u.feedRepo.LikedFeed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return u.attachFiles(ctx, posts)
}

// attachFiles fetches the attachments for the given posts in one query and
// groups them under their parent. An empty post set short-circuits: no file
// query is issued, so a degenerate IN clause can never be built.
func (u *FeedUsecase) attachFiles(ctx context.Context, posts []*entities.FeedPost) ([]*entities.FeedPost, error) {
	if len(posts) == 0 {
		return []*entities.FeedPost{}, nil
	}

	ids := make([]uuid.UUID, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	files, err := u.feedRepo.FilesByComplaints(ctx, ids)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uuid.UUID][]entities.FeedFile, len(posts))
	for _, f := range files {
		grouped[f.ComplaintID] = append(grouped[f.ComplaintID], entities.FeedFile{
			FileURL:  NormalizeFileURL(f.FileURL),
			FileType: f.FileType,
		})
	}

	for _, post := range posts {
		if attached, ok := grouped[post.ID]; ok {
			post.Files = attached
		}
		// Posts without attachments keep their empty, non-nil Files slice.
	}
	return posts, nil
}
