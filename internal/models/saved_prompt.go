package models

import "time"

// SavedPrompt represents a bookmarked prompt; row presence is the sole
// truth of "saved".
type SavedPrompt struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_prompt_save"`
	PromptID  uint      `json:"prompt_id" gorm:"index;uniqueIndex:idx_user_prompt_save"`
	CreatedAt time.Time `json:"created_at"`
}
