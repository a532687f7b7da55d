package lexical

import (
	"strings"
	"unicode"
)

// minTokenLen drops single-character tokens.
const minTokenLen = 2

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Tokenize lowercases text and splits it into maximal runs of word
// characters, keeping runs of at least two characters. This matches the
// default pattern of common TF-IDF vectorizers, \b\w\w+\b.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minTokenLen {
			out = append(out, f)
		}
	}
	return out
}
