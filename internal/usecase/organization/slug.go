package organization

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
)

// Slugify turns a display name into a URL slug: lowercase, characters
// outside [a-z0-9], whitespace and '-' removed, whitespace runs turned into
// a single '-', repeated hyphens collapsed, surrounding whitespace trimmed.
//
//	Slugify("Jane Doe")          // "jane-doe"
//	Slugify("Karang Taruna  RT 03") // "karang-taruna-rt-03"
//	Slugify("PKK (Ibu-ibu)")     // "pkk-ibu-ibu"
func Slugify(name string) string {
	s := strings.ToLower(name)
	// RE2's \s is ASCII-only; fold other Unicode spaces (e.g. NBSP) first.
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
	s = disallowedChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}
