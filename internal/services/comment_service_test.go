package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldimario/promptly/internal/models"
)

func TestCommentService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, testLogger())
	user := createTestUser(t, db, "commenter")
	prompt := createTestPrompt(t, db, user.ID, "A prompt")

	view, err := svc.Create(user.ID, prompt.ID, "great prompt")
	require.NoError(t, err)
	assert.Equal(t, "great prompt", view.Text)
	assert.Equal(t, "commenter", view.UserName)
	assert.NotEmpty(t, view.UserImage)
}

func TestCommentService_Create_PromptNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, testLogger())
	user := createTestUser(t, db, "commenter")

	_, err := svc.Create(user.ID, 9999, "orphan comment")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestCommentService_ListByPrompt_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, testLogger())
	user := createTestUser(t, db, "commenter")
	prompt := createTestPrompt(t, db, user.ID, "A prompt")

	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&models.Comment{PromptID: prompt.ID, UserID: user.ID, Text: "older", CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Comment{PromptID: prompt.ID, UserID: user.ID, Text: "newer", CreatedAt: base.Add(time.Minute)}).Error)

	comments, err := svc.ListByPrompt(prompt.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Text)
	assert.Equal(t, "older", comments[1].Text)
}
