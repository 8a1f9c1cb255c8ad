package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stopWords = map[string]bool{
	"a": true, "o": true, "e": true, "de": true, "da": true, "do": true, "das": true, "dos": true,
	"em": true, "na": true, "no": true, "para": true, "com": true, "por": true,
	"the": true, "an": true, "and": true, "of": true, "for": true, "in": true, "to": true, "with": true,
}

// Normalize lower-cases s, strips diacritics and collapses whitespace. It is the
// comparison key used for skills, locations, languages and work models.
func Normalize(s string) string { return normalize(s) }

func normalize(s string) string {
	// Transformers keep internal state, so each call builds its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// tokens splits the normalized text on anything that is not a letter or a digit.
func tokens(s string) []string {
	return strings.FieldsFunc(normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// keywords returns the distinct tokens of s without stop words.
func keywords(s string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, tok := range tokens(s) {
		if stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		result = append(result, tok)
	}
	return result
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokens(s) {
		set[tok] = true
	}
	return set
}

// jaccard computes |a ∩ b| / |a ∪ b| over the token sets of both strings.
func jaccard(a, b string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// sameText reports whether two free-text values are equal ignoring case, accents
// and spacing, or one contains the other.
func sameText(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}

// uniqueNormalized merges lists keeping the first spelling of each normalized value.
func uniqueNormalized(lists ...[]string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, list := range lists {
		for _, v := range list {
			key := normalize(v)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, strings.TrimSpace(v))
		}
	}
	return result
}
