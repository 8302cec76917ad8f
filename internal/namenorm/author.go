package namenorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// FormatAuthorName renders an author name in canonical "Forename Surname"
// form. "Surname, Forename" is swapped unless the part after the comma is a
// known postfix ("Jr", "Phd", ...), spaced initials are tightened to
// "L.E. Modesitt" style, and all-upper or all-lower names are title cased.
func FormatAuthorName(author string, postfixes []string) string {
	// if multiple authors assume the first one is primary
	if idx := strings.Index(author, "& "); idx >= 0 {
		author = strings.TrimSpace(author[:idx])
	}
	if strings.Contains(author, ",") {
		parts := strings.SplitN(author, ",", 2)
		if len(parts) == 2 && !strings.Contains(parts[1], ",") {
			first := strings.TrimSpace(parts[0])
			second := strings.TrimSpace(parts[1])
			if isPostfix(second, postfixes) {
				// "L. E. Modesitt, Jr." keeps its order
				author = first + " " + second
			} else {
				// "Surname, Forename" or "Surname, Initial(s)": swap
				author = second + " " + first
			}
		}
	}
	// tighten any spaced initials: "L. E. Modesitt" -> "L.E. Modesitt"
	if len(author) > 2 && (author[1] == '.' || author[1] == ' ') {
		surname := author
		forename := ""
		for len(surname) > 2 && (surname[1] == '.' || surname[1] == ' ') {
			forename += surname[:1] + "."
			surname = strings.TrimSpace(surname[2:])
		}
		author = forename + " " + surname
	}
	author = strings.Join(strings.Fields(author), " ")
	if author == strings.ToUpper(author) || author == strings.ToLower(author) {
		author = titleCaser.String(strings.ToLower(author))
	}
	return author
}

func isPostfix(word string, postfixes []string) bool {
	cleaned := strings.ToLower(strings.Trim(word, "._ "))
	for _, p := range postfixes {
		if cleaned == strings.ToLower(p) {
			return true
		}
	}
	return false
}
