package models

import "time"

// Rating is a single 1..5 score; at most one row per (prompt, user) pair.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PromptID  uint      `json:"prompt_id" gorm:"index;uniqueIndex:idx_prompt_user_rating"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_prompt_user_rating"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatePromptRequest defines the request body for rating a prompt
type RatePromptRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}
