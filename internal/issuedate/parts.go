package issuedate

import (
	"fmt"
	"strings"
)

// Style identifies which of the recognized date/issue numbering conventions a
// parsed string matched. Styles are mutually exclusive classifications.
type Style int

const (
	// StyleNone means no numeric or date information could be extracted.
	StyleNone Style = iota
	// StyleMonthPair is "MonthName MonthName YYYY", a bi-monthly issue.
	StyleMonthPair
	// StyleNumberMonthYear is "nn MonthName YYYY" with nn too large to be a
	// day; the number is an assumed issue number and the date is month+year.
	StyleNumberMonthYear
	// StyleDayMonthYear is "DD MonthName YYYY".
	StyleDayMonthYear
	// StyleMonthYear is "MonthName YYYY".
	StyleMonthYear
	// StyleMonthDayYear is "MonthName DD YYYY" or "MonthName DD, YYYY".
	StyleMonthDayYear
	// StyleYearMonthDay is "YYYY MM DD" or "YYYY MonthName DD".
	StyleYearMonthDay
	// StyleYearMonth is "YYYY MM" or "YYYY MonthName".
	StyleYearMonth
	// StyleVolumeIssueYear is "Vol x Iss y" in either order, with a year.
	StyleVolumeIssueYear
	// StyleVolumeIssue is "Vol x Iss y" in either order, without a year.
	StyleVolumeIssue
	// StyleNounIssueYear is "Issue/No/Nr/Vol/# nn" with a year present.
	StyleNounIssueYear
	// StyleNounIssue is "Issue/No/Nr/Vol/# nn" without a year.
	StyleNounIssue
	// StyleNumberYear is a bare number adjacent to a year, no noun.
	StyleNumberYear
	// StyleCompactYearMonth is a six-digit YYYYMM or MMYYYY token.
	StyleCompactYearMonth
	// StyleBareIssue is a bare zero-padded issue number like "0063".
	StyleBareIssue
	// StyleYearOnly is just a year, an annual.
	StyleYearOnly
	// StyleCompactYearIssue is an eight-digit YYYYIIII token.
	StyleCompactYearIssue
	// StyleCompactVolumeIssue is an eight-digit VVVVIIII token.
	StyleCompactVolumeIssue
	// StyleCompactYearVolumeIssue is a twelve-digit YYYYVVVVIIII token.
	StyleCompactYearVolumeIssue
)

// String renders the style's numeric code, which is what operators know from
// scan logs.
func (s Style) String() string {
	return fmt.Sprintf("%d", int(s))
}

// DateParts is the result of classifying one filename or issue string.
// Zero-valued numeric fields mean unknown. The DBDate string is the only
// field ever persisted.
type DateParts struct {
	Year   int
	Month  int
	Day    int
	Issue  int
	Volume int
	// Months holds every month matched, in order of appearance; more than
	// one entry means a bi-monthly range.
	Months []int
	Style  Style
	// INoun and VNoun keep the literal issue/volume noun token matched, for
	// diagnostics.
	INoun string
	VNoun string
	// DBDate is the canonical sortable encoding; empty when Style is
	// StyleNone.
	DBDate string
}

// styles supplying each DateType component.
var (
	monthStyles = styleSet(StyleMonthPair, StyleNumberMonthYear, StyleDayMonthYear, StyleMonthYear,
		StyleMonthDayYear, StyleYearMonthDay, StyleYearMonth, StyleNumberYear, StyleCompactYearMonth)
	dayStyles      = styleSet(StyleDayMonthYear, StyleMonthDayYear, StyleYearMonthDay)
	biMonthStyles  = styleSet(StyleMonthPair)
	volumeStyles   = styleSet(StyleNumberMonthYear, StyleVolumeIssueYear, StyleVolumeIssue, StyleNounIssueYear, StyleNounIssue, StyleNumberYear, StyleBareIssue, StyleCompactVolumeIssue, StyleCompactYearVolumeIssue)
	issueStyles    = styleSet(StyleNumberMonthYear, StyleVolumeIssueYear, StyleVolumeIssue, StyleNounIssueYear, StyleNounIssue, StyleNumberYear, StyleBareIssue, StyleCompactYearIssue, StyleCompactVolumeIssue, StyleCompactYearVolumeIssue)
	yearStyles     = styleSet(StyleMonthPair, StyleNumberMonthYear, StyleDayMonthYear, StyleMonthYear, StyleMonthDayYear, StyleYearMonthDay, StyleYearMonth, StyleVolumeIssueYear, StyleNounIssueYear, StyleNumberYear, StyleCompactYearMonth, StyleYearOnly, StyleCompactYearIssue, StyleCompactYearVolumeIssue)
	issueEncStyles = styleSet(StyleNounIssueYear, StyleNounIssue, StyleNumberYear)
)

func styleSet(styles ...Style) map[Style]bool {
	set := make(map[Style]bool, len(styles))
	for _, s := range styles {
		set[s] = true
	}
	return set
}

// SatisfiesDateType reports whether the style supplies every component the
// constraint letters demand: M month, D day, MM bi-month range, V volume,
// I issue, Y year.
func (p DateParts) SatisfiesDateType(datetype string) bool {
	datetype = strings.ToUpper(strings.TrimSpace(datetype))
	if datetype == "" {
		return true
	}
	if strings.Contains(datetype, "M") && !monthStyles[p.Style] {
		return false
	}
	if strings.Contains(datetype, "MM") && !biMonthStyles[p.Style] {
		return false
	}
	if strings.Contains(datetype, "D") && !dayStyles[p.Style] {
		return false
	}
	if strings.Contains(datetype, "V") && !volumeStyles[p.Style] {
		return false
	}
	if strings.Contains(datetype, "I") && !issueStyles[p.Style] {
		return false
	}
	if strings.Contains(datetype, "Y") && !yearStyles[p.Style] {
		return false
	}
	return true
}

// deriveDBDate computes the canonical sortable encoding for the parse.
// Issue-driven styles encode as a zero-filled issue number optionally
// prefixed by the year; calendar styles encode as YYYY-MM-DD with the day
// defaulting to 1.
func (p DateParts) deriveDBDate(datetype string) string {
	switch p.Style {
	case StyleNone:
		return ""
	case StyleBareIssue:
		return fmt.Sprintf("%04d", p.Issue)
	case StyleYearOnly:
		return fmt.Sprintf("%04d", p.Year)
	case StyleCompactYearIssue:
		return fmt.Sprintf("%04d%04d", p.Year, p.Issue)
	case StyleCompactVolumeIssue:
		return fmt.Sprintf("%04d%04d", p.Volume, p.Issue)
	case StyleCompactYearVolumeIssue:
		return fmt.Sprintf("%04d%04d%04d", p.Year, p.Volume, p.Issue)
	case StyleVolumeIssueYear:
		return fmt.Sprintf("%04d%04d%04d", p.Year, p.Volume, p.Issue)
	case StyleVolumeIssue:
		return fmt.Sprintf("%04d%04d", p.Volume, p.Issue)
	}
	if issueEncStyles[p.Style] || (p.INoun != "" && p.Issue > 0) ||
		(strings.Contains(strings.ToUpper(datetype), "I") && p.Issue > 0) {
		if p.Year > 0 {
			return fmt.Sprintf("%04d%04d", p.Year, p.Issue)
		}
		return fmt.Sprintf("%04d", p.Issue)
	}
	month := p.Month
	if month == 0 {
		month = 1
	}
	day := p.Day
	if day == 0 {
		day = 1
	}
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, month, day)
}
