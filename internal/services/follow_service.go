package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/pkg/format"
)

// FollowListParams selects a page of a user's followers or following.
type FollowListParams struct {
	UserID        uint
	CurrentUserID uint
	Page          int
	Limit         int
}

// FollowerList is a page of followers with its pagination envelope.
type FollowerList struct {
	Followers  []FollowerRow `json:"followers"`
	Pagination Pagination    `json:"pagination"`
}

// FollowingList is a page of followed users with its pagination envelope.
type FollowingList struct {
	Following  []FollowingRow `json:"following"`
	Pagination Pagination     `json:"pagination"`
}

// FollowService tracks directed follow edges between users.
type FollowService interface {
	IsFollowing(followerID, followingID uint) (bool, error)
	Follow(followerID, followingID uint) (*FollowResult, error)
	Unfollow(followerID, followingID uint) (*FollowResult, error)
	ListFollowers(params FollowListParams) (*FollowerList, error)
	ListFollowing(params FollowListParams) (*FollowingList, error)
	GetFollowingIDs(userID uint) ([]uint, error)
	FollowerCount(userID uint) (int64, error)
	FollowingCount(userID uint) (int64, error)
}

type followService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewFollowService creates a new FollowService backed by the given database.
func NewFollowService(db *gorm.DB, logger *zap.SugaredLogger) FollowService {
	return &followService{db: db, logger: logger}
}

// IsFollowing reports whether follower follows followee. A zero id on
// either side resolves to false without a query.
func (s *followService) IsFollowing(followerID, followingID uint) (bool, error) {
	if followerID == 0 || followingID == 0 {
		return false, nil
	}
	var count int64
	if err := s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "count follow")
	}
	return count > 0, nil
}

// Follow creates the edge and returns the followee's updated follower
// count. Following an already-followed user returns ErrAlreadyFollowing;
// the composite unique index backstops concurrent duplicates.
func (s *followService) Follow(followerID, followingID uint) (*FollowResult, error) {
	following, err := s.IsFollowing(followerID, followingID)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, ErrAlreadyFollowing
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.db.Create(follow).Error; err != nil {
		return nil, errors.Wrap(err, "create follow")
	}

	count, err := s.FollowerCount(followingID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{FollowerCount: count}, nil
}

// Unfollow deletes the edge and returns the followee's updated follower
// count. Deleting a missing edge returns ErrNotFollowing.
func (s *followService) Unfollow(followerID, followingID uint) (*FollowResult, error) {
	res := s.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "delete follow")
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFollowing
	}

	count, err := s.FollowerCount(followingID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{FollowerCount: count}, nil
}

// ListFollowers returns the page of users following params.UserID, newest
// edge first, each row enriched with whether params.CurrentUserID follows
// that user.
func (s *followService) ListFollowers(params FollowListParams) (*FollowerList, error) {
	page, limit := normalizePage(params.Page, params.Limit)

	var follows []models.Follow
	if err := s.db.Preload("Follower").
		Where("following_id = ?", params.UserID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&follows).Error; err != nil {
		return nil, errors.Wrap(err, "list followers")
	}

	total, err := s.FollowerCount(params.UserID)
	if err != nil {
		return nil, err
	}

	followers := make([]FollowerRow, 0, len(follows))
	for _, f := range follows {
		isFollowing, err := s.IsFollowing(params.CurrentUserID, f.FollowerID)
		if err != nil {
			return nil, err
		}
		followers = append(followers, FollowerRow{
			ID:            f.Follower.ID,
			Name:          f.Follower.Name,
			Image:         format.AvatarURL(f.Follower.Name, f.Follower.Image),
			Bio:           f.Follower.Bio,
			IsFollowing:   isFollowing,
			FollowedSince: f.CreatedAt,
		})
	}

	return &FollowerList{
		Followers:  followers,
		Pagination: NewPagination(page, limit, total),
	}, nil
}

// ListFollowing returns the page of users params.UserID follows, newest
// edge first. IsFollowing is true for every row by construction.
func (s *followService) ListFollowing(params FollowListParams) (*FollowingList, error) {
	page, limit := normalizePage(params.Page, params.Limit)

	var follows []models.Follow
	if err := s.db.Preload("Following").
		Where("follower_id = ?", params.UserID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&follows).Error; err != nil {
		return nil, errors.Wrap(err, "list following")
	}

	total, err := s.FollowingCount(params.UserID)
	if err != nil {
		return nil, err
	}

	following := make([]FollowingRow, 0, len(follows))
	for _, f := range follows {
		following = append(following, FollowingRow{
			ID:             f.Following.ID,
			Name:           f.Following.Name,
			Image:          format.AvatarURL(f.Following.Name, f.Following.Image),
			Bio:            f.Following.Bio,
			IsFollowing:    true,
			FollowingSince: f.CreatedAt,
		})
	}

	return &FollowingList{
		Following:  following,
		Pagination: NewPagination(page, limit, total),
	}, nil
}

// GetFollowingIDs returns the ids of every user the given user follows.
func (s *followService) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("following_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "pluck following ids")
	}
	return ids, nil
}

// FollowerCount returns how many users follow the given user.
func (s *followService) FollowerCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, errors.Wrap(err, "count followers")
}

// FollowingCount returns how many users the given user follows.
func (s *followService) FollowingCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, errors.Wrap(err, "count following")
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
