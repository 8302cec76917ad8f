package issuedate

import (
	"strings"

	"librarian/internal/textutil"
)

// MonthTable holds long and short month names for multiple languages. Row 0
// lists language codes, two columns per language; rows 1 through 12 hold the
// matching month names, full name in the even column and abbreviation in the
// odd column. All names are stored lowercase and unaccented.
type MonthTable [][]string

// DefaultMonthTable covers the languages magazine uploads commonly use.
func DefaultMonthTable() MonthTable {
	return MonthTable{
		{"en", "en", "de", "de", "fr", "fr", "es", "es", "it", "it", "nl", "nl"},
		{"january", "jan", "januar", "jan", "janvier", "janv", "enero", "ene", "gennaio", "gen", "januari", "jan"},
		{"february", "feb", "februar", "feb", "fevrier", "fevr", "febrero", "feb", "febbraio", "feb", "februari", "feb"},
		{"march", "mar", "marz", "mar", "mars", "mars", "marzo", "mar", "marzo", "mar", "maart", "mrt"},
		{"april", "apr", "april", "apr", "avril", "avr", "abril", "abr", "aprile", "apr", "april", "apr"},
		{"may", "may", "mai", "mai", "mai", "mai", "mayo", "may", "maggio", "mag", "mei", "mei"},
		{"june", "jun", "juni", "jun", "juin", "juin", "junio", "jun", "giugno", "giu", "juni", "jun"},
		{"july", "jul", "juli", "jul", "juillet", "juil", "julio", "jul", "luglio", "lug", "juli", "jul"},
		{"august", "aug", "august", "aug", "aout", "aout", "agosto", "ago", "agosto", "ago", "augustus", "aug"},
		{"september", "sep", "september", "sep", "septembre", "sept", "septiembre", "sep", "settembre", "set", "september", "sep"},
		{"october", "oct", "oktober", "okt", "octobre", "oct", "octubre", "oct", "ottobre", "ott", "oktober", "okt"},
		{"november", "nov", "november", "nov", "novembre", "nov", "noviembre", "nov", "novembre", "nov", "november", "nov"},
		{"december", "dec", "dezember", "dez", "decembre", "dec", "diciembre", "dic", "dicembre", "dic", "december", "dec"},
	}
}

// MonthNumber returns the month (1-12) matching word in any language, or 0.
func (t MonthTable) MonthNumber(word string) int {
	word = strings.Trim(strings.ToLower(textutil.Unaccent(word)), ". ")
	if word == "" || len(t) < 13 {
		return 0
	}
	for month := 1; month <= 12; month++ {
		for _, name := range t[month] {
			if word == name {
				return month
			}
		}
	}
	return 0
}

// MonthName returns the full month name for the requested language, falling
// back to the table's first language when lang is unknown.
func (t MonthTable) MonthName(month int, lang string) string {
	if month < 1 || month > 12 || len(t) < 13 {
		return ""
	}
	col := 0
	for i, code := range t[0] {
		if i%2 == 0 && strings.EqualFold(code, lang) {
			col = i
			break
		}
	}
	if col >= len(t[month]) {
		col = 0
	}
	return t[month][col]
}
