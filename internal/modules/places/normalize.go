// README: Place-name normalization (accents, case, punctuation, informal aliases).
package places

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tokenAbbreviations expands common abbreviations found in Mexican place names.
// Expanded values must never appear as keys, otherwise Normalize stops being idempotent.
var tokenAbbreviations = map[string]string{
	"cd":   "ciudad",
	"sta":  "santa",
	"sto":  "santo",
	"sn":   "san",
	"gral": "general",
	"edo":  "estado",
}

// nameAliases rewrites whole informal names to their canonical form.
// Every canonical value is also listed as a key mapping to itself.
var nameAliases = map[string]string{
	"ciudad de mexico": "ciudad de mexico",
	"cdmx":             "ciudad de mexico",
	"df":               "ciudad de mexico",
	"d f":              "ciudad de mexico",
	"mexico df":        "ciudad de mexico",
	"mexico d f":       "ciudad de mexico",
	"distrito federal": "ciudad de mexico",
	"mexico city":      "ciudad de mexico",
}

// Normalize canonicalizes a free-text place name into its lookup form.
// Blank input yields "", which callers treat as "no match possible".
func Normalize(raw string) string {
	s := Fold(raw)
	if s == "" {
		return ""
	}
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if full, ok := tokenAbbreviations[tok]; ok {
			tokens[i] = full
		}
	}
	s = strings.Join(tokens, " ")
	if canonical, ok := nameAliases[s]; ok {
		return canonical
	}
	return s
}

// Fold lowercases, strips diacritics and punctuation and collapses whitespace,
// without any abbreviation or alias substitution.
// Periods and apostrophes are dropped so "D.F." folds to "df"; any other
// non-alphanumeric rune separates tokens.
func Fold(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ToLower(StripAccents(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '.' || r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// StripAccents removes combining marks, e.g. "México" -> "Mexico".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
