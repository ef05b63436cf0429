package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/internal/services"
	"github.com/baldimario/promptly/pkg/format"
)

// PromptHandler handles prompt CRUD, listing and search HTTP requests
type PromptHandler struct {
	promptService  services.PromptService
	commentService services.CommentService
}

// NewPromptHandler creates a new PromptHandler
func NewPromptHandler(promptService services.PromptService, commentService services.CommentService) *PromptHandler {
	return &PromptHandler{
		promptService:  promptService,
		commentService: commentService,
	}
}

// RegisterPublicRoutes registers prompt routes readable without login
func (h *PromptHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/prompts", h.ListPrompts)
	g.GET("/prompts/search", h.SearchPrompts)
	g.GET("/prompts/:id", h.GetPrompt)
}

// RegisterProtectedRoutes registers prompt routes that require login
func (h *PromptHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/prompts", h.CreatePrompt)
	g.PUT("/prompts/:id", h.UpdatePrompt)
	g.DELETE("/prompts/:id", h.DeletePrompt)
	g.POST("/prompts/:id/comments", h.AddComment)
}

// ListPrompts returns a filtered, sorted, paginated page of prompts
func (h *PromptHandler) ListPrompts(c echo.Context) error {
	result, err := h.promptService.List(services.ListOptions{
		CurrentUserID: getUserIDFromContext(c),
		UserID:        queryUint(c, "userId"),
		CategoryID:    queryUint(c, "categoryId"),
		Query:         c.QueryParam("q"),
		Sort:          c.QueryParam("sort"),
		Page:          queryInt(c, "page", 1),
		PageSize:      queryInt(c, "pageSize", 20),
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// SearchPrompts performs a free-text search over titles and descriptions.
// An empty query yields an empty result set rather than everything.
func (h *PromptHandler) SearchPrompts(c echo.Context) error {
	query := c.QueryParam("q")
	pageSize := queryInt(c, "pageSize", 20)
	if query == "" {
		return c.JSON(http.StatusOK, services.PromptList{
			Prompts:    []services.PromptView{},
			Pagination: services.Pagination{Page: 1, PageSize: pageSize},
		})
	}

	result, err := h.promptService.List(services.ListOptions{
		CurrentUserID: getUserIDFromContext(c),
		CategoryID:    queryUint(c, "category"),
		Query:         query,
		Sort:          c.QueryParam("sort"),
		Page:          queryInt(c, "page", 1),
		PageSize:      pageSize,
	})
	if err != nil {
		return serviceError(err)
	}

	// Optional minimum-rating filter applied to the aggregated page.
	if minRating, err := strconv.ParseFloat(c.QueryParam("minRating"), 64); err == nil && minRating > 0 {
		filtered := make([]services.PromptView, 0, len(result.Prompts))
		for _, p := range result.Prompts {
			if p.AverageRating >= minRating {
				filtered = append(filtered, p)
			}
		}
		result.Prompts = filtered
	}
	return c.JSON(http.StatusOK, result)
}

// GetPrompt returns a single prompt with comments and viewer flags
func (h *PromptHandler) GetPrompt(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	prompt, svcErr := h.promptService.GetByID(id, getUserIDFromContext(c))
	if svcErr != nil {
		return serviceError(svcErr)
	}
	if prompt == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Prompt not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"prompt": prompt})
}

// CreatePrompt creates a prompt from a multipart form with optional images
func (h *PromptHandler) CreatePrompt(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	req, files, err := bindPromptForm(c)
	if err != nil {
		return err
	}

	prompt, svcErr := h.promptService.Create(currentUserID, req, files)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	return c.JSON(http.StatusCreated, echo.Map{"prompt": prompt})
}

// UpdatePrompt overwrites a prompt's mutable fields, owner only
func (h *PromptHandler) UpdatePrompt(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.Tags = format.ParseTags(c.FormValue("tags"))
	if err := c.Validate(&req); err != nil {
		return err
	}

	prompt, svcErr := h.promptService.Update(id, currentUserID, &req)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "prompt": prompt})
}

// DeletePrompt removes a prompt, owner only
func (h *PromptHandler) DeletePrompt(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.promptService.Delete(id, currentUserID); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddComment appends a comment to a prompt
func (h *PromptHandler) AddComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, svcErr := h.commentService.Create(currentUserID, id, req.Text)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	return c.JSON(http.StatusCreated, echo.Map{"comment": comment})
}

func bindPromptForm(c echo.Context) (*models.CreatePromptRequest, []*multipart.FileHeader, error) {
	var req models.CreatePromptRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	// Tags arrive as a JSON-encoded form field; malformed input degrades to
	// no tags rather than an error.
	req.Tags = format.ParseTags(c.FormValue("tags"))
	if err := c.Validate(&req); err != nil {
		return nil, nil, err
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["outputImages"]
	}
	return &req, files, nil
}
