package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/interfaces/http/middleware"
	"complainthub.backend/internal/interfaces/http/response"
	"complainthub.backend/internal/usecases"
)

// SearchHandler handles user discovery endpoints
type SearchHandler struct {
	searchUsecase *usecases.SearchUsecase
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchUsecase *usecases.SearchUsecase) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
	}
}

// Search matches users by name or username, excluding the caller.
// GET /search-users?query=
func (h *SearchHandler) Search(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	results, err := h.searchUsecase.Search(c.Request.Context(), userID, c.Query("query"))
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Search query is required"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, results)
}

// Explore returns the newest users plus a random recommendation set.
// GET /explore-users
func (h *SearchHandler) Explore(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	explore, err := h.searchUsecase.Explore(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, explore)
}
