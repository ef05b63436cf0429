package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/pkg/format"
)

// RatingService upserts per-user prompt ratings and recomputes the
// aggregate on every write.
type RatingService interface {
	RatePrompt(userID, promptID uint, rating int) (*RatingResult, error)
	Aggregate(promptID uint) (*RatingResult, error)
}

type ratingService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewRatingService creates a new RatingService backed by the given database.
func NewRatingService(db *gorm.DB, logger *zap.SugaredLogger) RatingService {
	return &ratingService{db: db, logger: logger}
}

// RatePrompt records the user's rating for a prompt. Re-rating overwrites
// the existing row in place, never creating a duplicate. The returned
// aggregate is recomputed from all rating rows for the prompt, so it is
// always consistent with the latest write.
func (s *ratingService) RatePrompt(userID, promptID uint, rating int) (*RatingResult, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if err := s.db.Select("id").First(&models.Prompt{}, promptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, errors.Wrap(err, "find prompt")
	}

	row := &models.Rating{PromptID: promptID, UserID: userID, Rating: rating}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "prompt_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "upsert rating")
	}

	return s.Aggregate(promptID)
}

// Aggregate re-reads all rating rows for a prompt and returns the mean and
// count.
func (s *ratingService) Aggregate(promptID uint) (*RatingResult, error) {
	var values []int
	if err := s.db.Model(&models.Rating{}).
		Where("prompt_id = ?", promptID).
		Pluck("rating", &values).Error; err != nil {
		return nil, errors.Wrap(err, "load ratings")
	}

	ratings := make([]format.RatingValue, len(values))
	for i, v := range values {
		ratings[i] = format.RatingValue{Rating: v}
	}
	return &RatingResult{
		AverageRating: format.AverageRating(ratings),
		TotalRatings:  len(ratings),
	}, nil
}
