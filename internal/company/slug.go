package company

import (
	"regexp"
	"strings"
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe company code from a display name:
// lowercase, with runs of anything non-alphanumeric collapsed to "-".
// "Apple Computer, Inc." -> "apple-computer-inc".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
