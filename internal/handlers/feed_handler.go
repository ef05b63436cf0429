package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/services"
)

// FeedHandler assembles the followed-authors feed
type FeedHandler struct {
	promptService services.PromptService
	followService services.FollowService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(promptService services.PromptService, followService services.FollowService) *FeedHandler {
	return &FeedHandler{
		promptService: promptService,
		followService: followService,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/prompts/feed", h.GetFeed)
}

// GetFeed returns prompts from users that the current user follows. A user
// following no one gets recent prompts instead of an empty feed.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 20)
	categoryID := queryUint(c, "categoryId")

	followingIDs, err := h.followService.GetFollowingIDs(currentUserID)
	if err != nil {
		return serviceError(err)
	}

	if len(followingIDs) == 0 {
		result, err := h.promptService.List(services.ListOptions{
			CurrentUserID: currentUserID,
			CategoryID:    categoryID,
			Sort:          services.SortRecent,
			Page:          1,
			PageSize:      pageSize,
		})
		if err != nil {
			return serviceError(err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"prompts":      result.Prompts,
			"pagination":   result.Pagination,
			"followsUsers": false,
			"message":      "Showing recent prompts as you don't follow anyone yet.",
		})
	}

	result, err := h.promptService.List(services.ListOptions{
		CurrentUserID: currentUserID,
		AuthorIDs:     followingIDs,
		CategoryID:    categoryID,
		Sort:          services.SortRecent,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"prompts":      result.Prompts,
		"pagination":   result.Pagination,
		"followsUsers": true,
	})
}
