package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_ListPromptImages(t *testing.T) {
	dir := t.TempDir()
	svc := NewImageService(dir, testLogger())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "7_abc_shot.png"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7_def_other.png"), []byte("x"), 0o644))
	// Prefix matching is exact: prompt 7 must not pick up prompt 17's files.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "17_ghi_unrelated.png"), []byte("x"), 0o644))

	urls := svc.ListPromptImages(7)
	assert.ElementsMatch(t, []string{
		"/uploads/images/7_abc_shot.png",
		"/uploads/images/7_def_other.png",
	}, urls)

	assert.Equal(t, []string{"/uploads/images/17_ghi_unrelated.png"}, svc.ListPromptImages(17))
	assert.Empty(t, svc.ListPromptImages(99))
}

func TestImageService_ListPromptImagesMissingDir(t *testing.T) {
	svc := NewImageService(filepath.Join(t.TempDir(), "missing"), testLogger())
	assert.Equal(t, []string{}, svc.ListPromptImages(1))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my-photo.png", sanitizeFilename("my-photo.png"))
	assert.Equal(t, "my_photo__1_.png", sanitizeFilename("my photo (1).png"))
	assert.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
}
