package usecases

import (
	"context"

	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/domain/repositories"
)

const (
	searchLimit      = 20
	exploreNewLimit  = 10
	exploreRandLimit = 20
)

// SearchUsecase handles user lookup and discovery.
type SearchUsecase struct {
	userRepo repositories.UserRepository
}

// NewSearchUsecase creates a new search usecase
func NewSearchUsecase(userRepo repositories.UserRepository) *SearchUsecase {
	return &SearchUsecase{userRepo: userRepo}
}

// Search finds users matching the query by name or handle.
func (u *SearchUsecase) Search(ctx context.Context, viewerID uuid.UUID, query string) ([]*entities.UserSearchResult, error) {
	if query == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return u.userRepo.Search(ctx, viewerID, query, searchLimit)
}

// Explore returns the newest users and a random recommendation sample.
func (u *SearchUsecase) Explore(ctx context.Context, viewerID uuid.UUID) (*entities.ExploreUsers, error) {
	newest, err := u.userRepo.Newest(ctx, viewerID, exploreNewLimit)
	if err != nil {
		return nil, err
	}
	recommended, err := u.userRepo.Random(ctx, viewerID, exploreRandLimit)
	if err != nil {
		return nil, err
	}
	return &entities.ExploreUsers{
		NewUsers:         newest,
		RecommendedUsers: recommended,
	}, nil
}
