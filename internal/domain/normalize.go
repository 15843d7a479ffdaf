package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeAnswer folds text into the form used when comparing a player's
// answer with a stored translation:
//   - converts to lowercase
//   - strips diacritics (Vietnamese tone marks, hooks, breves; đ becomes d)
//   - replaces every run of whitespace with a single hyphen
//
// Leading and trailing whitespace is not trimmed; callers trim first.
func NormalizeAnswer(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// transform.Chain keeps internal state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, text); err == nil {
		text = stripped
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte('-')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		if r == 'đ' {
			r = 'd'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CleanText trims text and compresses inner whitespace into single spaces.
// Case and diacritics are preserved; it is applied to values before storage.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
