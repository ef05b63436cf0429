package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]RatingValue{}))
	assert.Equal(t, 4.0, AverageRating([]RatingValue{{Rating: 4}}))
	assert.Equal(t, 3.0, AverageRating([]RatingValue{{Rating: 4}, {Rating: 2}}))
	assert.InDelta(t, 3.6666, AverageRating([]RatingValue{{Rating: 5}, {Rating: 3}, {Rating: 3}}), 0.001)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{}, ParseTags("not json"))
	assert.Equal(t, []string{}, ParseTags(`{"a":1}`))
	assert.Equal(t, []string{}, ParseTags("null"))
	assert.Equal(t, []string{}, ParseTags("[]"))
	assert.Equal(t, []string{"writing", "ai"}, ParseTags(`["writing","ai"]`))
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://example.com/me.png", AvatarURL("Alice", "https://example.com/me.png"))
	assert.Equal(t, "https://ui-avatars.com/api/?name=Alice&background=random", AvatarURL("Alice", ""))
	assert.Equal(t, "https://ui-avatars.com/api/?name=Jane+Doe&background=random", AvatarURL("Jane Doe", ""))
	assert.Equal(t, "https://ui-avatars.com/api/?name=Unknown&background=random", AvatarURL("", ""))
}

func TestPromptPlaceholderDeterministic(t *testing.T) {
	a := PromptPlaceholder("Write a blog post", "alice", []string{"writing"})
	b := PromptPlaceholder("Write a blog post", "alice", []string{"writing"})
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
	assert.Contains(t, a, "background=6366F1")
}

func TestPromptPlaceholderHashFallback(t *testing.T) {
	// No recognized tag keyword falls back to a color hashed from the author.
	a := PromptPlaceholder("Some title", "alice", []string{"nonsense"})
	b := PromptPlaceholder("Some title", "bob", []string{"nonsense"})
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestPromptPlaceholderTruncatesTitle(t *testing.T) {
	u := PromptPlaceholder("Supercalifragilistic expialidocious extra words here", "alice", nil)
	assert.Contains(t, u, "name=Supercalifragilistic")
	assert.NotContains(t, u, "expialidocious")
}

func TestPromptImageURL(t *testing.T) {
	assert.Equal(t, "/uploads/images/1_a.png", PromptImageURL("Title", "/uploads/images/1_a.png", "alice", nil))
	placeholder := PromptImageURL("Title", "", "alice", nil)
	assert.Contains(t, placeholder, "ui-avatars.com")
	// Whitespace-only stored image counts as absent.
	assert.Equal(t, placeholder, PromptImageURL("Title", "   ", "alice", nil))
}

func TestHashColor(t *testing.T) {
	c := hashColor("alice")
	assert.Len(t, c, 6)
	assert.Equal(t, c, hashColor("alice"))
}
