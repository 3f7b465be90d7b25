package mapping

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel folds a raw parameter label into the form aliases are
// stored in: lowercase, μ unified to "micro", Latin diacritics stripped
// (NFKD) only when the label carries no Cyrillic, and every run of
// non-letter/non-digit characters collapsed to a single space.
//
// Cyrillic is preserved because decomposition would mangle й and ё, and
// Russian-language lab reports are a primary input.
func NormalizeLabel(raw string) string {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "μ", "micro")
	s = strings.ReplaceAll(s, "µ", "micro")

	if !containsCyrillic(s) {
		s = stripDiacritics(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		} else {
			space = true
		}
	}
	return b.String()
}

func containsCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

// stripDiacritics decomposes to NFKD and drops combining marks.
func stripDiacritics(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
