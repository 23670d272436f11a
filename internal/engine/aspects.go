package engine

import (
	"strings"

	"github.com/spacesedan/sentimentscope/internal/models"
)

// DefaultAspectKeywords is the out-of-the-box keyword list.
var DefaultAspectKeywords = []string{
	"service", "food", "price", "parking", "staff", "ambience", "delivery",
}

// AspectTags returns every keyword that occurs in text, compared
// case-insensitively, in the order the keywords were configured. When
// nothing matches the result is exactly ["general"].
func AspectTags(text string, keywords []string) []string {
	lowered := strings.ToLower(text)

	var found []string
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			found = append(found, keyword)
		}
	}

	if len(found) == 0 {
		return []string{models.AspectGeneral}
	}
	return found
}

// ParseKeywords splits a comma-separated keyword list, trimming whitespace
// and dropping empty entries.
func ParseKeywords(s string) []string {
	var keywords []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}
