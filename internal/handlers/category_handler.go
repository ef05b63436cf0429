package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baldimario/promptly/internal/services"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterCategoryRoutes registers category-related routes
func (h *CategoryHandler) RegisterCategoryRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
}

// ListCategories returns all categories with prompt counts
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}
