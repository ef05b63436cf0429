package services

import "time"

// Pagination is the envelope returned by every listing operation.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes totalPages = ceil(total/pageSize).
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PromptView is a prompt formatted for display, detached from the ORM.
type PromptView struct {
	ID             uint          `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	PromptText     string        `json:"promptText"`
	ExampleOutputs string        `json:"exampleOutputs,omitempty"`
	SuggestedModel string        `json:"suggestedModel"`
	Image          string        `json:"image"`
	ImageURLs      []string      `json:"imageUrls"`
	UserID         uint          `json:"userId"`
	UserName       string        `json:"userName"`
	UserImage      string        `json:"userImage"`
	CreatedAt      time.Time     `json:"createdAt"`
	Tags           []string      `json:"tags"`
	CategoryID     *uint         `json:"categoryId,omitempty"`
	CategoryName   string        `json:"categoryName,omitempty"`
	CategoryImage  string        `json:"categoryImage,omitempty"`
	AverageRating  float64       `json:"averageRating"`
	NumRatings     int           `json:"numRatings"`
	IsSaved        bool          `json:"isSaved"`
	Comments       []CommentView `json:"comments,omitempty"`
}

// PromptList pairs a page of prompt views with its pagination envelope.
type PromptList struct {
	Prompts    []PromptView `json:"prompts"`
	Pagination Pagination   `json:"pagination"`
}

// CommentView is a comment enriched with its author's display fields.
type CommentView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	UserName  string    `json:"userName"`
	UserImage string    `json:"userImage"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// FollowerRow is one user in a followers listing, enriched with whether
// the viewing user follows them.
type FollowerRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Image         string    `json:"image,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	IsFollowing   bool      `json:"isFollowing"`
	FollowedSince time.Time `json:"followedSince"`
}

// FollowingRow is one user in a following listing.
type FollowingRow struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Image          string    `json:"image,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	IsFollowing    bool      `json:"isFollowing"`
	FollowingSince time.Time `json:"followingSince"`
}

// SaveResult is the outcome of a save/unsave toggle.
type SaveResult struct {
	IsSaved   bool  `json:"isSaved"`
	SaveCount int64 `json:"saveCount"`
}

// FollowResult carries the followee's follower count after a follow edge change.
type FollowResult struct {
	FollowerCount int64 `json:"followerCount"`
}

// RatingResult is the recomputed aggregate after a rating upsert.
type RatingResult struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}
