package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
)

// UserStats are the profile counters shown alongside a user.
type UserStats struct {
	Prompts   int64 `json:"prompts"`
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// UserService defines user data operations.
type UserService interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Search(query string) ([]models.User, error)
	Stats(userID uint) (*UserStats, error)
}

type userService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewUserService creates a new UserService backed by the given database.
func NewUserService(db *gorm.DB, logger *zap.SugaredLogger) UserService {
	return &userService{db: db, logger: logger}
}

// Create inserts a new user. A duplicate email returns ErrEmailTaken.
func (s *userService) Create(user *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return errors.Wrap(err, "check email")
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return errors.Wrap(s.db.Create(user).Error, "create user")
}

// GetByID retrieves a user by id, ErrUserNotFound when absent.
func (s *userService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, ErrUserNotFound when absent.
func (s *userService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "find user by email")
	}
	return &user, nil
}

// Update persists changes to an existing user.
func (s *userService) Update(user *models.User) error {
	return errors.Wrap(s.db.Save(user).Error, "update user")
}

// Search finds users by name or email, case-insensitive substring match.
func (s *userService) Search(query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	if err := s.db.
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern).
		Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "search users")
	}
	return users, nil
}

// Stats returns the user's prompt, follower and following counts.
func (s *userService) Stats(userID uint) (*UserStats, error) {
	stats := &UserStats{}
	if err := s.db.Model(&models.Prompt{}).Where("user_id = ?", userID).Count(&stats.Prompts).Error; err != nil {
		return nil, errors.Wrap(err, "count prompts")
	}
	if err := s.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&stats.Followers).Error; err != nil {
		return nil, errors.Wrap(err, "count followers")
	}
	if err := s.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&stats.Following).Error; err != nil {
		return nil, errors.Wrap(err, "count following")
	}
	return stats, nil
}
