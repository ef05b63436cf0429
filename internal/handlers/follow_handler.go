package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService services.FollowService
	userService   services.UserService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService services.FollowService, userService services.UserService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		userService:   userService,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/followers", h.ListFollowers)
	g.GET("/users/following", h.ListFollowing)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	if currentUserID == targetID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}
	if _, err := h.userService.GetByID(targetID); err != nil {
		return serviceError(err)
	}

	result, svcErr := h.followService.Follow(currentUserID, targetID)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"following": true, "followerCount": result.FollowerCount},
	})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	result, svcErr := h.followService.Unfollow(currentUserID, targetID)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"following": false, "followerCount": result.FollowerCount},
	})
}

// ListFollowers returns the current user's followers, newest first
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	result, err := h.followService.ListFollowers(services.FollowListParams{
		UserID:        currentUserID,
		CurrentUserID: currentUserID,
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 20),
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListFollowing returns the users the current user follows, newest first
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	result, err := h.followService.ListFollowing(services.FollowListParams{
		UserID: currentUserID,
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
