package sitectl

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	slugStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\x1c-\x1f\x85\p{Z}-]`)
	slugCollapse = regexp.MustCompile(`[\s\v\x1c-\x1f\x85\p{Z}-]+`)
)

// Slugify converts a title into a URL-friendly id.
//
// The title is lowercased, every rune that is not a letter, digit,
// underscore, whitespace or hyphen is dropped, and runs of whitespace and
// hyphens collapse into a single hyphen. Leading and trailing hyphens are
// kept so that ids stay stable for existing stores.
func Slugify(title string) string {
	// Casers carry state and must not be shared.
	s := cases.Lower(language.Und).String(title)
	s = slugStrip.ReplaceAllString(s, "")
	return slugCollapse.ReplaceAllString(s, "-")
}
