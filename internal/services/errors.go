package services

import "github.com/pkg/errors"

var (
	ErrPromptNotFound   = errors.New("prompt not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidAction    = errors.New("invalid action")
	ErrNotSaved         = errors.New("saved prompt not found")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("follow relationship not found")
	ErrForbidden        = errors.New("not the owner of this prompt")
	ErrEmailTaken       = errors.New("email already registered")
)
