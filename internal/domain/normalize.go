package domain

import "strings"

// NormalizeWord prepares a headword for lookup and storage: lowercase, outer
// whitespace trimmed, inner whitespace runs collapsed to a single space.
// Hyphens, apostrophes and diacritics are preserved, so "Well-Known" and
// "  ice  cream " normalize to "well-known" and "ice cream".
func NormalizeWord(word string) string {
	fields := strings.Fields(strings.ToLower(word))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}
