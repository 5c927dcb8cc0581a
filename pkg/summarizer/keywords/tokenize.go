// --- START OF NEW FILE pkg/summarizer/keywords/tokenize.go ---
package keywords

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r belongs to a word: a Unicode letter, a Unicode
// number, or underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize splits text into lowercase word tokens. A token is a maximal run of
// word runes in the case-folded text. No stemming is applied.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	return len(Tokenize(text))
}

// --- END OF NEW FILE pkg/summarizer/keywords/tokenize.go ---
