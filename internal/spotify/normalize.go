package spotify

import (
	"regexp"
	"strings"
)

var (
	parenPattern    = regexp.MustCompile(`\([^)]*\)`)
	featPattern     = regexp.MustCompile(`(?i)\s+(feat\.?|ft\.?|featuring|with)\s+.*$`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// Placeholder billings that never correspond to a real artist.
var nonArtistNames = map[string]bool{
	"tba":              true,
	"tbd":              true,
	"unknown":          true,
	"surprise guest":   true,
	"surprise guests":  true,
	"special guest":    true,
	"guests":           true,
}

// NormalizeName reduces an artist billing to a comparable form: lowercase,
// parentheticals and feat/with clauses stripped, punctuation collapsed to
// spaces.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = parenPattern.ReplaceAllString(s, " ")
	s = featPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&", " ")
	s = strings.ReplaceAll(s, "+", " ")
	s = nonAlnumPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// IsNonArtist reports whether a billing is a placeholder rather than a
// performer worth looking up.
func IsNonArtist(name string) bool {
	return nonArtistNames[NormalizeName(name)]
}
