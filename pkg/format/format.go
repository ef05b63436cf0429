package format

import (
	"encoding/json"
	"net/url"
)

// RatingValue is the projection of a rating row used for aggregation.
type RatingValue struct {
	Rating int `json:"rating"`
}

// AverageRating returns the arithmetic mean of the given ratings, 0 when empty.
// No rounding is applied; callers display-round.
func AverageRating(ratings []RatingValue) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r.Rating
	}
	return float64(total) / float64(len(ratings))
}

// ParseTags decodes a JSON-encoded string array. Empty, malformed or
// non-array input degrades to an empty slice, never an error.
func ParseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{}
	}
	if parsed == nil {
		return []string{}
	}
	return parsed
}

// AvatarURL returns the stored image verbatim when present, otherwise a
// deterministic ui-avatars placeholder keyed by the display name.
func AvatarURL(name, image string) string {
	if image != "" {
		return image
	}
	if name == "" {
		name = "Unknown"
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
