package enrichment

import (
	"regexp"
	"strings"
)

var numberedLine = regexp.MustCompile(`\d+\.\s+.+`)

// ParseNumbered extracts the "1. ..." items of a numbered list answer.
func ParseNumbered(answer string) []string {
	matches := numberedLine.FindAllString(answer, -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		if m = strings.TrimSpace(m); m != "" {
			items = append(items, m)
		}
	}
	return items
}
