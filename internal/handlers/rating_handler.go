package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/internal/services"
)

// RatingHandler handles prompt rating HTTP requests
type RatingHandler struct {
	ratingService services.RatingService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRatingRoutes registers rating-related routes
func (h *RatingHandler) RegisterRatingRoutes(g *echo.Group) {
	g.POST("/prompts/:id/rate", h.RatePrompt)
}

// RatePrompt records the current user's rating and returns the recomputed
// aggregate
func (h *RatingHandler) RatePrompt(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	promptID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req models.RatePromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, svcErr := h.ratingService.RatePrompt(currentUserID, promptID, req.Rating)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": result})
}
