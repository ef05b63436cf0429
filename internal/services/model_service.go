package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/baldimario/promptly/internal/models"
)

// ModelView is a curated AI model entry with how many prompts suggest it.
type ModelView struct {
	ID          uint   `json:"id"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Provider    string `json:"provider,omitempty"`
	PromptCount int64  `json:"promptCount"`
}

// ModelService lists and seeds the curated AI model catalog.
type ModelService interface {
	List() ([]ModelView, error)
	Seed(entries []models.Model) error
}

type modelService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewModelService creates a new ModelService backed by the given database.
func NewModelService(db *gorm.DB, logger *zap.SugaredLogger) ModelService {
	return &modelService{db: db, logger: logger}
}

// List returns the model catalog alphabetically, each entry counting the
// prompts whose suggested model matches it by name.
func (s *modelService) List() ([]ModelView, error) {
	var entries []models.Model
	if err := s.db.Order("name ASC").Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "list models")
	}

	views := make([]ModelView, 0, len(entries))
	for _, m := range entries {
		var count int64
		if err := s.db.Model(&models.Prompt{}).Where("suggested_model = ?", m.Name).Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "count model prompts")
		}
		views = append(views, ModelView{
			ID:          m.ID,
			Value:       m.Slug,
			Label:       m.Name,
			Provider:    m.Provider,
			PromptCount: count,
		})
	}
	return views, nil
}

// Seed upserts the given catalog entries by slug, updating descriptions of
// entries that already exist.
func (s *modelService) Seed(entries []models.Model) error {
	for i := range entries {
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "updated_at"}),
		}).Create(&entries[i]).Error; err != nil {
			return errors.Wrapf(err, "seed model %s", entries[i].Slug)
		}
		s.logger.Infow("seeded model", "slug", entries[i].Slug)
	}
	return nil
}
