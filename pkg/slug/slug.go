package slug

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphens      = regexp.MustCompile(`-+`)
	legacyPath   = regexp.MustCompile(`/listing/(\d+)`)
)

// Generate normalizes a display title to a URL path segment. Characters
// outside [a-z0-9\s-] are dropped, not transliterated, so accented letters
// disappear from the result.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ExtractLegacyId pulls the numeric id out of an old /listing/<id> path.
func ExtractLegacyId(path string) (int64, bool) {
	match := legacyPath.FindStringSubmatch(path)
	if match == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
