package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/services"
)

// ModelHandler handles AI model catalog HTTP requests
type ModelHandler struct {
	modelService services.ModelService
}

// NewModelHandler creates a new ModelHandler
func NewModelHandler(modelService services.ModelService) *ModelHandler {
	return &ModelHandler{modelService: modelService}
}

// RegisterModelRoutes registers model catalog routes
func (h *ModelHandler) RegisterModelRoutes(g *echo.Group) {
	g.GET("/models", h.ListModels)
}

// ListModels returns the curated AI model catalog
func (h *ModelHandler) ListModels(c echo.Context) error {
	models, err := h.modelService.List()
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"models": models})
}
