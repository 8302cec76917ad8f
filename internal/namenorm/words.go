package namenorm

import (
	"strings"

	"librarian/internal/textutil"
)

// punctuation replaced with spaces during word splitting. '#' survives so
// issue markers like "#12" stay recognizable, and '!' and '?' survive because
// they appear in real magazine titles.
const spacedPunctuation = "$%&()*+,-./:;<=>@[\\]^_{|}~"

// Words normalizes free text into lowercase comparison words. Quotes and
// apostrophes are removed, remaining punctuation becomes spaces, and runs of
// single-letter tokens merge into one initials token: "j", "r", "r" becomes
// "j.r.r". A run of a single letter stays the bare letter.
func Words(text string) []string {
	text = textutil.StripQuotes(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(spacedPunctuation, r) {
			return ' '
		}
		return r
	}, text)
	raw := strings.Fields(strings.ToLower(text))

	words := make([]string, 0, len(raw))
	var run []string
	flush := func() {
		if len(run) == 0 {
			return
		}
		words = append(words, strings.Join(run, "."))
		run = nil
	}
	for _, word := range raw {
		if len(word) == 1 && !isDigit(word[0]) {
			run = append(run, word)
			continue
		}
		flush()
		words = append(words, word)
	}
	flush()
	return words
}

// titleSkipWords never contribute to a title.
var titleSkipWords = map[string]bool{"volume": true, "vol": true, "issue": true}

// TitleWords extracts the leading title portion of a word sequence, skipping
// leading digit-ending tokens and stopping at the next digit-ending token.
// Tokens like "v2" and "40,000" are allowed through since they are usually
// part of the title itself.
func TitleWords(words []string) []string {
	var title []string
	for _, word := range words {
		if titleSkipWords[strings.TrimRight(word, "0123456789")] || len(word) < 2 {
			continue
		}
		if isDigit(word[len(word)-1]) && word[0] != 'v' && !strings.Contains(word, ",") {
			if len(title) > 0 {
				break
			}
			continue
		}
		title = append(title, word)
	}
	return title
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
