package normalize

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// NormalizeNDC uppercases an NDC and strips separators (dashes, spaces) so
// differently punctuated renderings of the same code compare equal.
// Returns "" when nothing alphanumeric remains.
func NormalizeNDC(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return nonAlphanumeric.ReplaceAllString(strings.ToUpper(s), "")
}
