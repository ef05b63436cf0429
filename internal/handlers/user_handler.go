package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/internal/services"
	"github.com/baldimario/promptly/pkg/format"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userService   services.UserService
	followService services.FollowService
	promptService services.PromptService
	saveService   services.SaveService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userService services.UserService,
	followService services.FollowService,
	promptService services.PromptService,
	saveService services.SaveService,
) *UserHandler {
	return &UserHandler{
		userService:   userService,
		followService: followService,
		promptService: promptService,
		saveService:   saveService,
	}
}

// RegisterPublicRoutes registers user routes readable without login
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetUser)
}

// RegisterProfileRoutes registers routes that require login
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/profile", h.GetProfile)
	g.PUT("/users/profile", h.UpdateProfile)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/saved-prompts", h.GetSavedPrompts)
}

// publicUser is the externally visible shape of a user profile.
type publicUser struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Image       string             `json:"image"`
	Bio         string             `json:"bio,omitempty"`
	Stats       services.UserStats `json:"stats"`
	IsFollowing bool               `json:"isFollowing"`
}

// GetUser returns another user's public profile with counters and the
// viewer's follow flag
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	user, svcErr := h.userService.GetByID(id)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	stats, svcErr := h.userService.Stats(id)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	isFollowing, svcErr := h.followService.IsFollowing(getUserIDFromContext(c), id)
	if svcErr != nil {
		return serviceError(svcErr)
	}

	return c.JSON(http.StatusOK, publicUser{
		ID:          user.ID,
		Name:        user.Name,
		Image:       format.AvatarURL(user.Name, user.Image),
		Bio:         user.Bio,
		Stats:       *stats,
		IsFollowing: isFollowing,
	})
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userService.GetByID(currentUserID)
	if err != nil {
		return serviceError(err)
	}
	stats, err := h.userService.Stats(currentUserID)
	if err != nil {
		return serviceError(err)
	}
	savedCount, err := h.saveService.CountForUser(currentUserID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":       user,
		"stats":      stats,
		"savedCount": savedCount,
	})
}

// UpdateProfile updates the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.GetByID(currentUserID)
	if err != nil {
		return serviceError(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Image != "" {
		user.Image = req.Image
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}

	if err := h.userService.Update(user); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// SearchUsers searches for users by a query string (email or name)
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	users, err := h.userService.Search(query)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetSavedPrompts lists the prompts the current user has bookmarked
func (h *UserHandler) GetSavedPrompts(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	result, err := h.promptService.List(services.ListOptions{
		CurrentUserID: currentUserID,
		SavedBy:       currentUserID,
		Sort:          services.SortRecent,
		Page:          queryInt(c, "page", 1),
		PageSize:      queryInt(c, "pageSize", 20),
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
