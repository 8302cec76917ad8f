package bookmatch

import (
	"strings"
	"unicode"
)

// SplitTitle strips a leading "Author:" prefix from a title and separates
// the remainder into (name, subtitle, series). A trailing parenthetical
// ending in a digit is series info ("... (Discworld, #4)"); any other
// trailing parenthetical is a subtitle. Otherwise the subtitle starts at
// the first colon, unless a noSplit prefix shows the colon belongs to the
// title itself.
func SplitTitle(author, title string, noSplit []string) (name, sub, series string) {
	if strings.HasPrefix(title, author+":") {
		title = strings.TrimSpace(strings.TrimPrefix(title, author+":"))
	}

	if brace := strings.LastIndex(title, "("); brace >= 0 && strings.HasSuffix(title, ")") {
		runes := []rune(title)
		if len(runes) >= 2 && unicode.IsDigit(runes[len(runes)-2]) {
			series = strings.TrimSuffix(title[brace+1:], ")")
			title = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(title[:brace]), ":"))
		} else {
			name = strings.TrimSpace(title[:brace])
			sub = strings.TrimSpace(strings.TrimRight(title[brace:], ":"))
			for _, item := range noSplit {
				if "("+item+")" == strings.ToLower(sub) {
					sub = ""
					break
				}
			}
			return name, sub, series
		}
	}

	name = title
	if colon := strings.Index(title, ":"); colon >= 0 {
		name = strings.TrimSpace(title[:colon])
		sub = strings.TrimSpace(strings.TrimRight(title[colon+1:], ":"))
		nameLower := strings.ToLower(name)
		subLower := strings.ToLower(sub)
		for _, item := range noSplit {
			if item == "" {
				continue
			}
			if strings.HasPrefix(subLower, item) || strings.HasPrefix(nameLower, item) {
				name = title
				sub = ""
				break
			}
		}
	}
	return name, sub, series
}
