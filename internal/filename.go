package internal

import (
	"regexp"
	"strings"
)

// idToken matches a session identifier immediately preceding the file
// extension. This token embedded in output filenames is the on-disk
// idempotence contract: filename patterns that drop it break change
// detection across runs.
var idToken = regexp.MustCompile(`(hst_[0-9a-fA-F]+)\.[^.]+$`)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugLength = 60

// ExtractSessionID returns the session identifier embedded in an output
// filename, or false when the name carries no identifier token.
func ExtractSessionID(filename string) (string, bool) {
	m := idToken.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Slugify derives a filename-safe slug from a session topic: lowercased,
// every run of characters outside [a-z0-9] collapsed to a single hyphen,
// leading/trailing hyphens stripped, truncated to 60 characters.
func Slugify(topic string) string {
	slug := strings.ToLower(topic)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return slug
}

// DateToken returns the date portion of an RFC3339-style timestamp, i.e.
// everything before the first "T".
func DateToken(timestamp string) string {
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		return timestamp[:i]
	}
	return timestamp
}

// ResolveFilename substitutes the {date}, {id} and {slug} placeholders in
// the configured filename pattern for the given session.
func ResolveFilename(pattern string, detail *SessionDetail) string {
	return strings.NewReplacer(
		"{date}", DateToken(detail.CreatedAt),
		"{id}", detail.ID,
		"{slug}", Slugify(detail.Topic),
	).Replace(pattern)
}
