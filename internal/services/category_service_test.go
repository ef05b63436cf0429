package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldimario/promptly/internal/models"
)

func TestCategoryService_ListWithCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db, testLogger())
	user := createTestUser(t, db, "author")

	writing := &models.Category{Name: "Writing"}
	coding := &models.Category{Name: "Coding"}
	require.NoError(t, db.Create(writing).Error)
	require.NoError(t, db.Create(coding).Error)

	prompt := createTestPrompt(t, db, user.ID, "Blog post")
	require.NoError(t, db.Model(prompt).Update("category_id", writing.ID).Error)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Alphabetical order.
	assert.Equal(t, "Coding", views[0].Name)
	assert.Equal(t, int64(0), views[0].PromptCount)
	assert.Equal(t, "Writing", views[1].Name)
	assert.Equal(t, int64(1), views[1].PromptCount)
	assert.NotEmpty(t, views[0].Image)
}

func TestCategoryService_GetByIDAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db, testLogger())

	category, err := svc.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, category)
}
