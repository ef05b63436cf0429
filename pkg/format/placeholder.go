package format

import (
	"fmt"
	"net/url"
	"strings"
)

// categoryColors maps well-known tag keywords to placeholder background colors.
var categoryColors = map[string]string{
	"writing":          "6366F1",
	"marketing":        "EC4899",
	"ai":               "8B5CF6",
	"blog":             "14B8A6",
	"social-media":     "F59E0B",
	"content":          "10B981",
	"coding":           "3B82F6",
	"programming":      "3B82F6",
	"academic":         "8B5CF6",
	"business":         "6366F1",
	"creative":         "EC4899",
	"data":             "3B82F6",
	"education":        "14B8A6",
	"design":           "EC4899",
	"advertising":      "F59E0B",
	"product":          "6366F1",
	"travel":           "10B981",
	"health":           "14B8A6",
	"chatbot":          "3B82F6",
	"customer-service": "F59E0B",
}

// PromptPlaceholder generates a deterministic ui-avatars URL for a prompt
// without a real image. The displayed text is the first few words of the
// title; the background color comes from a known tag keyword, falling back
// to a hash of the author name.
func PromptPlaceholder(title, userName string, tags []string) string {
	if title == "" {
		title = "Untitled Prompt"
	}
	if userName == "" {
		userName = "Unknown User"
	}

	// Up to 3 words of the title, capped at 20 characters.
	words := strings.Fields(title)
	displayText := ""
	charCount := 0
	for i := 0; i < len(words) && i < 3; i++ {
		if charCount+len(words[i]) > 20 {
			break
		}
		if displayText != "" {
			displayText += " "
		}
		displayText += words[i]
		charCount += len(words[i])
	}

	bgColor := ""
	for _, tag := range tags {
		normalized := strings.ToLower(tag)
		for key, color := range categoryColors {
			if strings.Contains(normalized, key) {
				bgColor = color
				break
			}
		}
		if bgColor != "" {
			break
		}
	}
	if bgColor == "" {
		bgColor = hashColor(userName)
	}

	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=%s&color=fff&size=300&font-size=0.33&bold=true&length=20",
		url.QueryEscape(displayText), bgColor,
	)
}

// PromptImageURL returns the stored prompt image when present, otherwise a
// generated placeholder.
func PromptImageURL(title, image, userName string, tags []string) string {
	if strings.TrimSpace(image) != "" {
		return image
	}
	keywords := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			keywords = append(keywords, t)
		}
	}
	return PromptPlaceholder(title, userName, keywords)
}

// hashColor derives a stable hex color from a name.
func hashColor(name string) string {
	var hash int32
	for _, c := range name {
		hash = int32(c) + (hash << 5) - hash
	}
	if hash < 0 {
		hash = -hash
	}
	hex := fmt.Sprintf("%x", hash)
	if len(hex) > 6 {
		hex = hex[:6]
	}
	for len(hex) < 6 {
		hex += "0"
	}
	return hex
}
