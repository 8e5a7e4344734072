package sanitizer

import (
	"regexp"
	"strings"
)

var (
	reNonSlug     = regexp.MustCompile(`[^a-z0-9]+`)
	reMultiHyphen = regexp.MustCompile(`-+`)
)

func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reNonSlug.ReplaceAllString(s, "-")
	s = reMultiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
