package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quoteStripper removes ASCII and typographic quotes and apostrophes.
// Apostrophes are removed rather than replaced with spaces so that
// "Schitt's Creek" and "Schitts Creek" compare equal.
var quoteStripper = strings.NewReplacer(
	"‘", "",
	"’", "",
	"“", "",
	"”", "",
	"ʼ", "",
	"`", "",
	"\"", "",
	"'", "",
)

// ligatures that NFD does not decompose to ASCII.
var ligatureReplacer = strings.NewReplacer(
	"æ", "ae",
	"Æ", "AE",
	"œ", "oe",
	"Œ", "OE",
	"ß", "ss",
	"ø", "o",
	"Ø", "O",
	"đ", "d",
	"Đ", "D",
	"ł", "l",
	"Ł", "L",
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Unaccent folds accented characters to their base ASCII forms.
// Characters that cannot be folded are kept as-is.
func Unaccent(s string) string {
	s = ligatureReplacer.Replace(s)
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// StripQuotes removes all quote and apostrophe characters.
func StripQuotes(s string) string {
	return quoteStripper.Replace(s)
}

// Words splits a string into words on whitespace, commas and plus signs,
// dropping empty entries.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "+", " ")
	return strings.Fields(s)
}

// List splits a comma separated string into trimmed entries, dropping
// empties. Used for configuration values like noun lists.
func List(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CollapseSpaces replaces newlines with spaces and squeezes runs of
// whitespace down to single spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
