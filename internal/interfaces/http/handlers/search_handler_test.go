package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"complainthub.backend/internal/domain/entities"
	"complainthub.backend/internal/usecases"
)

func newSearchRouter(userID uuid.UUID, users *userRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if users == nil {
		users = &userRepoStub{}
	}

	h := NewSearchHandler(usecases.NewSearchUsecase(users))

	r := gin.New()
	r.Use(asUser(userID))
	r.GET("/search-users", h.Search)
	r.GET("/explore-users", h.Explore)
	return r
}

func TestSearchUsers_MissingQuery(t *testing.T) {
	r := newSearchRouter(uuid.New(), nil)

	req := httptest.NewRequest(http.MethodGet, "/search-users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Search query is required")
}

func TestSearchUsers_Results(t *testing.T) {
	viewer := uuid.New()
	users := &userRepoStub{
		searchFn: func(_ context.Context, viewerID uuid.UUID, query string, limit int) ([]*entities.UserSearchResult, error) {
			assert.Equal(t, viewer, viewerID)
			assert.Equal(t, "smith", query)
			return []*entities.UserSearchResult{{ID: uuid.New(), Username: "jsmith", IsFollowing: true}}, nil
		},
	}
	r := newSearchRouter(viewer, users)

	req := httptest.NewRequest(http.MethodGet, "/search-users?query=smith", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jsmith")
	assert.Contains(t, w.Body.String(), `"is_following":true`)
}

func TestExploreUsers(t *testing.T) {
	users := &userRepoStub{
		newestFn: func(_ context.Context, _ uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
			return []*entities.UserSearchResult{{ID: uuid.New(), Username: "fresh_face"}}, nil
		},
		randomFn: func(_ context.Context, _ uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
			return []*entities.UserSearchResult{{ID: uuid.New(), Username: "wildcard"}}, nil
		},
	}
	r := newSearchRouter(uuid.New(), users)

	req := httptest.NewRequest(http.MethodGet, "/explore-users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"newUsers"`)
	assert.Contains(t, w.Body.String(), "fresh_face")
	assert.Contains(t, w.Body.String(), `"recommendedUsers"`)
	assert.Contains(t, w.Body.String(), "wildcard")
}
