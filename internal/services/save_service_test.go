package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveService_Toggle_SaveAndUnsave(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaveService(db, testLogger())
	user := createTestUser(t, db, "saver")
	prompt := createTestPrompt(t, db, user.ID, "A prompt")

	result, err := svc.Toggle(user.ID, prompt.ID, ActionSave)
	require.NoError(t, err)
	assert.True(t, result.IsSaved)
	assert.Equal(t, int64(1), result.SaveCount)

	result, err = svc.Toggle(user.ID, prompt.ID, ActionUnsave)
	require.NoError(t, err)
	assert.False(t, result.IsSaved)
	assert.Equal(t, int64(0), result.SaveCount)
}

func TestSaveService_Toggle_SaveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaveService(db, testLogger())
	user := createTestUser(t, db, "saver")
	prompt := createTestPrompt(t, db, user.ID, "A prompt")

	_, err := svc.Toggle(user.ID, prompt.ID, ActionSave)
	require.NoError(t, err)
	result, err := svc.Toggle(user.ID, prompt.ID, ActionSave)
	require.NoError(t, err)

	assert.True(t, result.IsSaved)
	assert.Equal(t, int64(1), result.SaveCount)
}

func TestSaveService_Toggle_UnsaveNotSaved(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaveService(db, testLogger())
	user := createTestUser(t, db, "saver")
	prompt := createTestPrompt(t, db, user.ID, "A prompt")

	_, err := svc.Toggle(user.ID, prompt.ID, ActionUnsave)
	assert.ErrorIs(t, err, ErrNotSaved)
}

func TestSaveService_Toggle_PromptNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaveService(db, testLogger())
	user := createTestUser(t, db, "saver")

	_, err := svc.Toggle(user.ID, 9999, ActionSave)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestSaveService_Toggle_InvalidAction(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaveService(db, testLogger())
	user := createTestUser(t, db, "saver")
	prompt := createTestPrompt(t, db, user.ID, "A prompt")

	_, err := svc.Toggle(user.ID, prompt.ID, "toggle")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestSaveService_IsSavedAnonymous(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaveService(db, testLogger())

	saved, err := svc.IsSaved(0, 1)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSaveService_CountsAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaveService(db, testLogger())
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	p1 := createTestPrompt(t, db, alice.ID, "First")
	p2 := createTestPrompt(t, db, alice.ID, "Second")

	for _, promptID := range []uint{p1.ID, p2.ID} {
		_, err := svc.Toggle(bob.ID, promptID, ActionSave)
		require.NoError(t, err)
	}
	_, err := svc.Toggle(alice.ID, p1.ID, ActionSave)
	require.NoError(t, err)

	count, err := svc.Count(p1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.CountForUser(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ids, err := svc.ListSavedPromptIDs(bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{p1.ID, p2.ID}, ids)
}
