// Package sanitizer normalizes customer- and admin-entered data before
// validation and storage.
//
// All functions are idempotent and handle invalid input by returning empty
// values rather than errors:
//   - Phone numbers: E.164 format (+[country][number]), Sri Lanka default region
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Slugs: lowercase, non-alphanumerics collapsed to single hyphens
//   - URLs: enforce HTTPS, lowercase domain
//   - Slices: drop duplicates and empties after normalization
package sanitizer
