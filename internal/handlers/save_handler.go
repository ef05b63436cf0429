package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/services"
)

// SaveHandler handles saved prompt HTTP requests
type SaveHandler struct {
	saveService services.SaveService
}

// NewSaveHandler creates a new SaveHandler
func NewSaveHandler(saveService services.SaveService) *SaveHandler {
	return &SaveHandler{saveService: saveService}
}

// RegisterSaveRoutes registers saved prompt routes
func (h *SaveHandler) RegisterSaveRoutes(g *echo.Group) {
	g.POST("/prompts/:id/save", h.SavePrompt)
	g.DELETE("/prompts/:id/save", h.UnsavePrompt)
}

// SavePrompt bookmarks a prompt for the current user
func (h *SaveHandler) SavePrompt(c echo.Context) error {
	return h.toggle(c, services.ActionSave)
}

// UnsavePrompt removes a prompt from the current user's bookmarks
func (h *SaveHandler) UnsavePrompt(c echo.Context) error {
	return h.toggle(c, services.ActionUnsave)
}

func (h *SaveHandler) toggle(c echo.Context, action string) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	promptID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	result, svcErr := h.saveService.Toggle(currentUserID, promptID, action)
	if svcErr != nil {
		return serviceError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": result})
}
