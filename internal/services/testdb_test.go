package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
)

// newTestDB opens an isolated in-memory SQLite database migrated with the
// full schema. The single-connection pool keeps the shared cache alive for
// the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Prompt{},
		&models.Rating{},
		&models.Comment{},
		&models.SavedPrompt{},
		&models.Follow{},
		&models.Model{},
	))
	return db
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPrompt(t *testing.T, db *gorm.DB, userID uint, title string) *models.Prompt {
	t.Helper()
	prompt := &models.Prompt{
		Title:          title,
		Description:    "description of " + title,
		PromptText:     "prompt text of " + title,
		SuggestedModel: "GPT-4o",
		UserID:         userID,
	}
	require.NoError(t, db.Create(prompt).Error)
	return prompt
}
