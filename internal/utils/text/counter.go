// Package text provides rune-aware helpers for plain-text processing.
// Lengths are counted in runes so that Indonesian text with diacritics or
// emoji is never cut in the middle of a character.
package text

// CountRunes counts the Unicode characters (runes) in s.
//
//	CountRunes("desa")      // 4
//	CountRunes("café")      // 4
//	CountRunes("")          // 0
func CountRunes(s string) int {
	return len([]rune(s))
}

// TruncateRunes returns the first n runes of s. It returns s unchanged when
// it is already n runes or shorter, and "" when n <= 0.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
