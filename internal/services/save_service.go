package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
)

// Toggle actions accepted by SaveService.
const (
	ActionSave   = "save"
	ActionUnsave = "unsave"
)

// SaveService tracks which users have bookmarked which prompts.
type SaveService interface {
	IsSaved(userID, promptID uint) (bool, error)
	Toggle(userID, promptID uint, action string) (*SaveResult, error)
	Count(promptID uint) (int64, error)
	CountForUser(userID uint) (int64, error)
	ListSavedPromptIDs(userID uint) ([]uint, error)
}

type saveService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewSaveService creates a new SaveService backed by the given database.
func NewSaveService(db *gorm.DB, logger *zap.SugaredLogger) SaveService {
	return &saveService{db: db, logger: logger}
}

// IsSaved reports whether the user has bookmarked the prompt. A zero id on
// either side resolves to false without a query, so anonymous viewers
// short-circuit safely.
func (s *saveService) IsSaved(userID, promptID uint) (bool, error) {
	if userID == 0 || promptID == 0 {
		return false, nil
	}
	var count int64
	if err := s.db.Model(&models.SavedPrompt{}).
		Where("user_id = ? AND prompt_id = ?", userID, promptID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "count saved prompt")
	}
	return count > 0, nil
}

// Toggle saves or unsaves a prompt for a user. Saving an already-saved
// prompt is a no-op; unsaving a prompt that was never saved returns
// ErrNotSaved. The prompt must exist.
func (s *saveService) Toggle(userID, promptID uint, action string) (*SaveResult, error) {
	if err := s.db.Select("id").First(&models.Prompt{}, promptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, errors.Wrap(err, "find prompt")
	}

	switch action {
	case ActionSave:
		saved, err := s.IsSaved(userID, promptID)
		if err != nil {
			return nil, err
		}
		if !saved {
			if err := s.db.Create(&models.SavedPrompt{UserID: userID, PromptID: promptID}).Error; err != nil {
				return nil, errors.Wrap(err, "create saved prompt")
			}
		}
	case ActionUnsave:
		res := s.db.Where("user_id = ? AND prompt_id = ?", userID, promptID).Delete(&models.SavedPrompt{})
		if res.Error != nil {
			return nil, errors.Wrap(res.Error, "delete saved prompt")
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotSaved
		}
	default:
		return nil, ErrInvalidAction
	}

	saveCount, err := s.Count(promptID)
	if err != nil {
		return nil, err
	}
	isSaved, err := s.IsSaved(userID, promptID)
	if err != nil {
		return nil, err
	}
	return &SaveResult{IsSaved: isSaved, SaveCount: saveCount}, nil
}

// Count returns how many users have saved the prompt.
func (s *saveService) Count(promptID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.SavedPrompt{}).Where("prompt_id = ?", promptID).Count(&count).Error
	return count, errors.Wrap(err, "count saves")
}

// CountForUser returns how many prompts the user has saved.
func (s *saveService) CountForUser(userID uint) (int64, error) {
	if userID == 0 {
		return 0, nil
	}
	var count int64
	err := s.db.Model(&models.SavedPrompt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, errors.Wrap(err, "count saves for user")
}

// ListSavedPromptIDs returns the ids of all prompts the user has saved.
func (s *saveService) ListSavedPromptIDs(userID uint) ([]uint, error) {
	if userID == 0 {
		return []uint{}, nil
	}
	var ids []uint
	err := s.db.Model(&models.SavedPrompt{}).Where("user_id = ?", userID).Pluck("prompt_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "list saved prompt ids")
	}
	return ids, nil
}
