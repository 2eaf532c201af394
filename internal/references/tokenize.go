package references

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text, replaces every non-word rune with a space and
// splits on whitespace. Unicode letters and digits are word characters, so
// accented Italian text tokenizes cleanly.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		if unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)
	return strings.Fields(cleaned)
}

// tokenCounts builds the bag-of-words profile for a piece of text.
func tokenCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, token := range Tokenize(text) {
		counts[token]++
	}
	return counts
}
