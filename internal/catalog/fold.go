package catalog

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey folds free text for comparison: lower case, accents removed,
// inner whitespace collapsed, trimmed. Catalog data is typed in by hand, so
// "Toyota", "toyota " and "TOYOTA" are the same brand, and so are
// "Citroën" and "Citroen".
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

func sameKey(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(NormalizeKey(haystack), NormalizeKey(needle))
}

// sortDisplay orders option labels the way a Spanish reader expects
// ("Ñandú" after "Nissan", case ignored).
func sortDisplay(values []string) {
	c := collate.New(language.Spanish, collate.IgnoreCase, collate.IgnoreDiacritics)
	slices.SortStableFunc(values, func(a, b string) int {
		if n := c.CompareString(a, b); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
}
