package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/pkg/format"
)

// CategoryView is a category with its prompt count, image falling back to
// a generated placeholder.
type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	PromptCount int64  `json:"promptCount"`
}

// CategoryService lists prompt categories.
type CategoryService interface {
	List() ([]CategoryView, error)
	GetByID(id uint) (*models.Category, error)
}

type categoryService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewCategoryService creates a new CategoryService backed by the given database.
func NewCategoryService(db *gorm.DB, logger *zap.SugaredLogger) CategoryService {
	return &categoryService{db: db, logger: logger}
}

// List returns all categories alphabetically with per-category prompt counts.
func (s *categoryService) List() ([]CategoryView, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		var count int64
		if err := s.db.Model(&models.Prompt{}).Where("category_id = ?", c.ID).Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "count category prompts")
		}
		views = append(views, CategoryView{
			ID:          c.ID,
			Name:        c.Name,
			Image:       format.AvatarURL(c.Name, c.Image),
			Description: c.Description,
			PromptCount: count,
		})
	}
	return views, nil
}

// GetByID retrieves a category, nil,nil when absent so best-effort
// enrichment callers can degrade without special-casing.
func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find category")
	}
	return &category, nil
}
