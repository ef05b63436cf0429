package models

import "time"

// Prompt is the primary content unit: a user-authored AI instruction.
type Prompt struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	PromptText     string    `json:"prompt_text" gorm:"type:text;not null"`
	ExampleOutputs string    `json:"example_outputs,omitempty" gorm:"type:text"`
	SuggestedModel string    `json:"suggested_model"`
	Image          string    `json:"image,omitempty"`
	Tags           string    `json:"-" gorm:"type:text"` // JSON-encoded string array; readers degrade malformed content to []
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	CategoryID     *uint     `json:"category_id,omitempty" gorm:"index"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time `json:"updated_at"`

	User     User      `json:"-" gorm:"foreignKey:UserID"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Ratings  []Rating  `json:"-" gorm:"foreignKey:PromptID"`
	Comments []Comment `json:"-" gorm:"foreignKey:PromptID"`
}

// CreatePromptRequest defines the form fields for creating a new prompt
type CreatePromptRequest struct {
	Title          string   `json:"title" form:"title" validate:"required,min=1,max=200"`
	Description    string   `json:"description" form:"description" validate:"required,min=1"`
	PromptText     string   `json:"promptText" form:"promptText" validate:"required,min=1"`
	ExampleOutputs string   `json:"exampleOutputs" form:"exampleOutputs"`
	SuggestedModel string   `json:"suggestedModel" form:"suggestedModel" validate:"required"`
	CategoryID     *uint    `json:"categoryId" form:"categoryId"`
	Tags           []string `json:"tags"`
}

// UpdatePromptRequest defines the form fields for updating an existing prompt
type UpdatePromptRequest struct {
	Title          string   `json:"title" form:"title" validate:"required,min=1,max=200"`
	Description    string   `json:"description" form:"description" validate:"required,min=1"`
	PromptText     string   `json:"promptText" form:"promptText" validate:"required,min=1"`
	ExampleOutputs string   `json:"exampleOutputs" form:"exampleOutputs"`
	SuggestedModel string   `json:"suggestedModel" form:"suggestedModel" validate:"required"`
	CategoryID     *uint    `json:"categoryId" form:"categoryId"`
	Tags           []string `json:"tags"`
	Image          string   `json:"image" form:"image"`
}
