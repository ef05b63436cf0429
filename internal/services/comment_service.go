package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/pkg/format"
)

// CommentService appends and lists prompt comments.
type CommentService interface {
	Create(userID, promptID uint, text string) (*CommentView, error)
	ListByPrompt(promptID uint) ([]CommentView, error)
}

type commentService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewCommentService creates a new CommentService backed by the given database.
func NewCommentService(db *gorm.DB, logger *zap.SugaredLogger) CommentService {
	return &commentService{db: db, logger: logger}
}

// Create appends a comment to an existing prompt and returns it enriched
// with the commenter's display fields.
func (s *commentService) Create(userID, promptID uint, text string) (*CommentView, error) {
	if err := s.db.Select("id").First(&models.Prompt{}, promptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, errors.Wrap(err, "find prompt")
	}

	comment := &models.Comment{PromptID: promptID, UserID: userID, Text: text}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, errors.Wrap(err, "create comment")
	}
	if err := s.db.First(&comment.User, userID).Error; err != nil {
		return nil, errors.Wrap(err, "load commenter")
	}

	view := commentView(comment)
	return &view, nil
}

// ListByPrompt returns all comments on a prompt, newest first.
func (s *commentService) ListByPrompt(promptID uint) ([]CommentView, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").
		Where("prompt_id = ?", promptID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, errors.Wrap(err, "list comments")
	}

	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, commentView(&comments[i]))
	}
	return views, nil
}

func commentView(c *models.Comment) CommentView {
	name := c.User.Name
	if name == "" {
		name = "Anonymous User"
	}
	return CommentView{
		ID:        c.ID,
		UserID:    c.UserID,
		UserName:  name,
		UserImage: format.AvatarURL(name, c.User.Image),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
