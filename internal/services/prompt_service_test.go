package services

import (
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
)

func newPromptService(t *testing.T, db *gorm.DB) PromptService {
	t.Helper()
	images := NewImageService(t.TempDir(), testLogger())
	return NewPromptService(db, images, testLogger())
}

func TestPromptService_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)

	view, err := svc.GetByID(9999, 0)
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestPromptService_GetByID_PlaceholderFallback(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	user := createTestUser(t, db, "author")
	prompt := createTestPrompt(t, db, user.ID, "Imageless prompt")

	view, err := svc.GetByID(prompt.ID, 0)
	require.NoError(t, err)
	require.NotNil(t, view)

	// A prompt without uploads or a stored image still renders an image.
	assert.Contains(t, view.Image, "ui-avatars.com")
	require.NotEmpty(t, view.ImageURLs)
	assert.Equal(t, view.Image, view.ImageURLs[0])
	assert.Equal(t, []string{}, view.Tags)
	assert.Equal(t, "author", view.UserName)
}

func TestPromptService_GetByID_CommentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	user := createTestUser(t, db, "author")
	prompt := createTestPrompt(t, db, user.ID, "Discussed prompt")

	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&models.Comment{PromptID: prompt.ID, UserID: user.ID, Text: "first", CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Comment{PromptID: prompt.ID, UserID: user.ID, Text: "second", CreatedAt: base.Add(time.Minute)}).Error)

	view, err := svc.GetByID(prompt.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.Comments, 2)
	assert.Equal(t, "second", view.Comments[0].Text)
	assert.Equal(t, "first", view.Comments[1].Text)
}

func TestPromptService_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	user := createTestUser(t, db, "author")
	for i := 0; i < 5; i++ {
		createTestPrompt(t, db, user.ID, "Prompt")
	}

	list, err := svc.List(ListOptions{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, list.Prompts, 1)
	assert.Equal(t, int64(5), list.Pagination.Total)
	assert.Equal(t, 3, list.Pagination.TotalPages)
	assert.Equal(t, 2, list.Pagination.PageSize)
}

func TestPromptService_List_RecentOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	user := createTestUser(t, db, "author")

	base := time.Now().Add(-time.Hour)
	old := createTestPrompt(t, db, user.ID, "Old")
	require.NoError(t, db.Model(old).Update("created_at", base).Error)
	fresh := createTestPrompt(t, db, user.ID, "Fresh")
	require.NoError(t, db.Model(fresh).Update("created_at", base.Add(time.Minute)).Error)

	list, err := svc.List(ListOptions{Sort: SortRecent})
	require.NoError(t, err)
	require.Len(t, list.Prompts, 2)
	assert.Equal(t, fresh.ID, list.Prompts[0].ID)
	assert.Equal(t, old.ID, list.Prompts[1].ID)
}

func TestPromptService_List_TrendingOrdersByRatingCount(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	author := createTestUser(t, db, "author")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	// One high rating versus two low ratings: trending ranks by how many
	// ratings a prompt received, not by their value.
	highValue := createTestPrompt(t, db, author.ID, "High value")
	popular := createTestPrompt(t, db, author.ID, "Popular")
	require.NoError(t, db.Create(&models.Rating{PromptID: highValue.ID, UserID: alice.ID, Rating: 5}).Error)
	require.NoError(t, db.Create(&models.Rating{PromptID: popular.ID, UserID: alice.ID, Rating: 1}).Error)
	require.NoError(t, db.Create(&models.Rating{PromptID: popular.ID, UserID: bob.ID, Rating: 1}).Error)

	list, err := svc.List(ListOptions{Sort: SortTrending})
	require.NoError(t, err)
	require.Len(t, list.Prompts, 2)
	assert.Equal(t, popular.ID, list.Prompts[0].ID)
	assert.Equal(t, highValue.ID, list.Prompts[1].ID)
}

func TestPromptService_List_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	category := &models.Category{Name: "Writing"}
	require.NoError(t, db.Create(category).Error)

	aPrompt := createTestPrompt(t, db, alice.ID, "Alice prompt")
	require.NoError(t, db.Model(aPrompt).Update("category_id", category.ID).Error)
	createTestPrompt(t, db, bob.ID, "Bob prompt")

	byUser, err := svc.List(ListOptions{UserID: alice.ID})
	require.NoError(t, err)
	require.Len(t, byUser.Prompts, 1)
	assert.Equal(t, aPrompt.ID, byUser.Prompts[0].ID)

	byCategory, err := svc.List(ListOptions{CategoryID: category.ID})
	require.NoError(t, err)
	require.Len(t, byCategory.Prompts, 1)
	assert.Equal(t, aPrompt.ID, byCategory.Prompts[0].ID)

	byAuthors, err := svc.List(ListOptions{AuthorIDs: []uint{bob.ID}})
	require.NoError(t, err)
	require.Len(t, byAuthors.Prompts, 1)
	assert.Equal(t, "Bob prompt", byAuthors.Prompts[0].Title)
}

func TestPromptService_List_SearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	user := createTestUser(t, db, "author")
	createTestPrompt(t, db, user.ID, "Email Marketing Campaign")
	createTestPrompt(t, db, user.ID, "Cooking recipe")

	list, err := svc.List(ListOptions{Query: "MARKETING"})
	require.NoError(t, err)
	require.Len(t, list.Prompts, 1)
	assert.Equal(t, "Email Marketing Campaign", list.Prompts[0].Title)

	// Search matches descriptions too.
	list, err = svc.List(ListOptions{Query: "of cooking RECIPE"})
	require.NoError(t, err)
	assert.Len(t, list.Prompts, 1)
}

func TestPromptService_List_SavedByFilterAndIsSaved(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	author := createTestUser(t, db, "author")
	viewer := createTestUser(t, db, "viewer")
	other := createTestUser(t, db, "other")

	saved := createTestPrompt(t, db, author.ID, "Saved one")
	createTestPrompt(t, db, author.ID, "Unsaved one")
	require.NoError(t, db.Create(&models.SavedPrompt{UserID: viewer.ID, PromptID: saved.ID}).Error)

	list, err := svc.List(ListOptions{SavedBy: viewer.ID, CurrentUserID: viewer.ID})
	require.NoError(t, err)
	require.Len(t, list.Prompts, 1)
	assert.Equal(t, saved.ID, list.Prompts[0].ID)
	assert.True(t, list.Prompts[0].IsSaved)

	// The isSaved flag is per viewer.
	all, err := svc.List(ListOptions{CurrentUserID: other.ID})
	require.NoError(t, err)
	for _, p := range all.Prompts {
		assert.False(t, p.IsSaved)
	}
}

func TestPromptService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	user := createTestUser(t, db, "author")

	view, err := svc.Create(user.ID, &models.CreatePromptRequest{
		Title:          "New prompt",
		Description:    "A useful prompt",
		PromptText:     "Do the thing",
		SuggestedModel: "GPT-4o",
		Tags:           []string{"writing", "ai"},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, "New prompt", view.Title)
	assert.Equal(t, []string{"writing", "ai"}, view.Tags)
	assert.Equal(t, user.ID, view.UserID)
	assert.False(t, view.IsSaved)
	assert.NotEmpty(t, view.ImageURLs)
}

func TestPromptService_Create_ImageFailureKeepsPrompt(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	user := createTestUser(t, db, "author")

	// A header with no backing content cannot be opened, so persistence
	// fails. The prompt row must survive.
	broken := &multipart.FileHeader{Filename: "broken.png"}
	view, err := svc.Create(user.ID, &models.CreatePromptRequest{
		Title:          "Resilient prompt",
		Description:    "Survives upload failure",
		PromptText:     "Do the thing",
		SuggestedModel: "GPT-4o",
	}, []*multipart.FileHeader{broken})
	require.NoError(t, err)
	require.NotNil(t, view)

	var count int64
	require.NoError(t, db.Model(&models.Prompt{}).Where("title = ?", "Resilient prompt").Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Contains(t, view.Image, "ui-avatars.com")
}

func TestPromptService_Update_OwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")
	prompt := createTestPrompt(t, db, owner.ID, "Original title")

	req := &models.UpdatePromptRequest{
		Title:          "Updated title",
		Description:    "Updated description",
		PromptText:     "Updated text",
		SuggestedModel: "Claude 3 Opus",
		Tags:           []string{"updated"},
	}

	_, err := svc.Update(prompt.ID, intruder.ID, req)
	assert.ErrorIs(t, err, ErrForbidden)

	view, err := svc.Update(prompt.ID, owner.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", view.Title)
	assert.Equal(t, []string{"updated"}, view.Tags)

	_, err = svc.Update(9999, owner.ID, req)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestPromptService_Delete_RemovesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := newPromptService(t, db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")
	prompt := createTestPrompt(t, db, owner.ID, "Doomed prompt")

	require.NoError(t, db.Create(&models.Rating{PromptID: prompt.ID, UserID: intruder.ID, Rating: 4}).Error)
	require.NoError(t, db.Create(&models.Comment{PromptID: prompt.ID, UserID: intruder.ID, Text: "nice"}).Error)
	require.NoError(t, db.Create(&models.SavedPrompt{UserID: intruder.ID, PromptID: prompt.ID}).Error)

	assert.ErrorIs(t, svc.Delete(prompt.ID, intruder.ID), ErrForbidden)
	require.NoError(t, svc.Delete(prompt.ID, owner.ID))

	for _, model := range []interface{}{&models.Rating{}, &models.Comment{}, &models.SavedPrompt{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("prompt_id = ?", prompt.ID).Count(&count).Error)
		assert.Zero(t, count)
	}
	assert.ErrorIs(t, svc.Delete(prompt.ID, owner.ID), ErrPromptNotFound)
}
