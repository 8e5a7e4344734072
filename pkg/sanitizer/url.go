package sanitizer

import "strings"

// NormalizeURL canonicalizes a stay image URL: https scheme forced,
// lowercase host, trailing slash dropped. Catalog entries come from a CMS
// form and arrive in every casing imaginable.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	raw = strings.TrimPrefix(raw, "http://")
	raw = strings.TrimPrefix(raw, "https://")

	host, path, found := strings.Cut(raw, "/")
	normalized := "https://" + strings.ToLower(host)
	if found {
		normalized += "/" + path
	}
	return strings.TrimSuffix(normalized, "/")
}
