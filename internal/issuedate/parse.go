package issuedate

import (
	"strconv"
	"strings"
	"time"
)

// Options carries the configuration the parser needs. Callers pass it
// explicitly; the parser reads no package-level state.
type Options struct {
	Months MonthTable
	// IssueNouns and VolumeNouns are the literal tokens that may precede an
	// issue or volume number, lowercase, without trailing periods.
	IssueNouns  []string
	VolumeNouns []string
}

// DefaultOptions returns parser options matching the shipped configuration.
func DefaultOptions() Options {
	return Options{
		Months:      DefaultMonthTable(),
		IssueNouns:  []string{"issue", "iss", "no", "nr", "#", "n"},
		VolumeNouns: []string{"vol", "volume"},
	}
}

func (o Options) isIssueNoun(word string) bool {
	return containsWord(o.IssueNouns, word)
}

func (o Options) isVolumeNoun(word string) bool {
	return containsWord(o.VolumeNouns, word)
}

func (o Options) isNoun(word string) bool {
	return o.isIssueNoun(word) || o.isVolumeNoun(word)
}

func containsWord(list []string, word string) bool {
	word = strings.Trim(word, ".")
	for _, item := range list {
		if word == item {
			return true
		}
	}
	return false
}

// Parse classifies text into DateParts. The datetype constraint, when
// non-empty, rejects parses whose style does not supply every demanded
// component; a rejected parse comes back as StyleNone with an empty DBDate.
func Parse(opts Options, text, datetype string) DateParts {
	words := explode(text)
	parts := classify(opts, words, datetype)
	if parts.Style != StyleNone && !parts.SatisfiesDateType(datetype) {
		return DateParts{}
	}
	if parts.Style != StyleNone {
		parts.DBDate = parts.deriveDBDate(datetype)
	}
	return parts
}

// fileExtensions stripped before tokenizing.
var fileExtensions = map[string]bool{
	"pdf": true, "epub": true, "mobi": true, "azw": true, "azw3": true,
	"cbz": true, "cbr": true, "cb7": true, "m4b": true, "mp3": true,
}

// explode splits text into lowercase tokens. Periods are kept inside tokens
// so "Vol.3" and the "19.2" year.issue shorthand survive, but are trimmed
// from token edges. A '#' glued to digits becomes its own token.
func explode(text string) []string {
	text = strings.ToLower(text)
	if dot := strings.LastIndex(text, "."); dot > 0 && fileExtensions[text[dot+1:]] {
		text = text[:dot]
	}
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '-', '/', '+', '_', '(', ')', '[', ']', ',', ';', '!', '?', '\'', '"':
			b.WriteRune(' ')
		case '#':
			b.WriteRune(' ')
			b.WriteRune('#')
		default:
			b.WriteRune(r)
		}
	}
	raw := strings.Fields(b.String())
	words := make([]string, 0, len(raw))
	for _, word := range raw {
		word = strings.Trim(word, ".")
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

func classify(opts Options, words []string, datetype string) DateParts {
	if parts, ok := compactNumeric(words); ok {
		return parts
	}
	if parts, ok := monthBeforeYear(opts, words, datetype); ok {
		return parts
	}
	if parts, ok := monthDayYear(opts, words); ok {
		return parts
	}
	if parts, ok := yearMonthDay(opts, words); ok {
		return parts
	}

	year := findYear(words)

	if parts, ok := volumeAndIssue(opts, words, year); ok {
		return parts
	}
	if parts, ok := nounIssue(opts, words, year); ok {
		return parts
	}
	if parts, ok := numberAdjacentYear(words, year); ok {
		return parts
	}
	if parts, ok := bareIssue(words, year, datetype); ok {
		return parts
	}
	if year != 0 {
		return DateParts{Year: year, Style: StyleYearOnly}
	}
	return DateParts{}
}

// compactNumeric interprets a single all-digit token contextually by length:
// six digits are YYYYMM or MMYYYY, eight are YYYYIIII or VVVVIIII, twelve are
// YYYYVVVVIIII. When both halves of a six-digit token could be a year the
// leading-year reading wins.
func compactNumeric(words []string) (DateParts, bool) {
	for _, word := range words {
		if !allDigits(word) {
			continue
		}
		switch len(word) {
		case 6:
			y, m := atoi(word[:4]), atoi(word[4:])
			if plausibleYear(y) && m >= 1 && m <= 12 {
				return DateParts{Year: y, Month: m, Months: []int{m}, Style: StyleCompactYearMonth}, true
			}
			y, m = atoi(word[2:]), atoi(word[:2])
			if plausibleYear(y) && m >= 1 && m <= 12 {
				return DateParts{Year: y, Month: m, Months: []int{m}, Style: StyleCompactYearMonth}, true
			}
		case 8:
			if y := atoi(word[:4]); plausibleYear(y) {
				return DateParts{Year: y, Issue: atoi(word[4:]), Style: StyleCompactYearIssue}, true
			}
			return DateParts{Volume: atoi(word[:4]), Issue: atoi(word[4:]), Style: StyleCompactVolumeIssue}, true
		case 12:
			return DateParts{
				Year:   atoi(word[:4]),
				Volume: atoi(word[4:8]),
				Issue:  atoi(word[8:]),
				Style:  StyleCompactYearVolumeIssue,
			}, true
		}
	}
	return DateParts{}, false
}

// monthBeforeYear handles the month-name-immediately-before-year family:
// bi-monthly pairs, day-month-year, noun-number-month-year, bare
// number-month-year, and plain month-year.
func monthBeforeYear(opts Options, words []string, datetype string) (DateParts, bool) {
	for pos := 1; pos < len(words); pos++ {
		year := checkYear(words[pos])
		if year == 0 {
			continue
		}
		month := opts.Months.MonthNumber(words[pos-1])
		if month == 0 {
			continue
		}
		parts := DateParts{Year: year, Month: month, Day: 1, Months: []int{month}, Style: StyleMonthYear}
		if pos > 1 {
			if month2 := opts.Months.MonthNumber(words[pos-2]); month2 != 0 {
				// bi-monthly; the earlier month anchors the date
				parts.Style = StyleMonthPair
				parts.Months = []int{month2, month}
				parts.Month = min(month, month2)
			} else if num := atoi(digitsOf(words[pos-2])); num != 0 {
				switch {
				case pos > 2 && opts.isNoun(words[pos-3]):
					return nounNumber(opts, words[pos-3], num, year), true
				case num > 31:
					if strings.ContainsAny(strings.ToUpper(datetype), "IV") {
						return DateParts{Year: year, Issue: num, Style: StyleNounIssueYear}, true
					}
					parts.Style = StyleNumberMonthYear
					parts.Issue = num
				default:
					parts.Style = StyleDayMonthYear
					parts.Day = num
				}
			}
		}
		if validDate(parts.Year, parts.Month, parts.Day) {
			return parts, true
		}
	}
	return DateParts{}, false
}

// monthDayYear handles "MonthName DD YYYY" and "MonthName DD, YYYY".
func monthDayYear(opts Options, words []string) (DateParts, bool) {
	for pos := 2; pos < len(words); pos++ {
		year := checkYear(words[pos])
		if year == 0 {
			continue
		}
		month := opts.Months.MonthNumber(words[pos-2])
		if month == 0 {
			continue
		}
		day := atoi(digitsOf(words[pos-1]))
		if validDate(year, month, day) {
			return DateParts{Year: year, Month: month, Day: day, Months: []int{month}, Style: StyleMonthDayYear}, true
		}
	}
	return DateParts{}, false
}

// yearMonthDay handles "YYYY MM DD", "YYYY MonthName DD", and the two-token
// forms without a day.
func yearMonthDay(opts Options, words []string) (DateParts, bool) {
	for pos := 0; pos+1 < len(words); pos++ {
		year := checkYear(words[pos])
		if year == 0 {
			continue
		}
		month := opts.Months.MonthNumber(words[pos+1])
		if month == 0 {
			month = atoi(words[pos+1])
		}
		if month == 0 {
			continue
		}
		day := 0
		style := StyleYearMonth
		if pos+2 < len(words) {
			if day = atoi(digitsOf(words[pos+2])); day != 0 {
				style = StyleYearMonthDay
			}
		}
		if day == 0 {
			day = 1
		}
		if validDate(year, month, day) {
			return DateParts{Year: year, Month: month, Day: day, Months: []int{month}, Style: style}, true
		}
	}
	return DateParts{}, false
}

// volumeAndIssue handles "Vol x Iss y" in either order, with or without a
// year anywhere in the name.
func volumeAndIssue(opts Options, words []string, year int) (DateParts, bool) {
	var parts DateParts
	for pos := 0; pos+1 < len(words); pos++ {
		num := atoi(words[pos+1])
		if num == 0 {
			continue
		}
		if opts.isIssueNoun(words[pos]) {
			parts.Issue = num
			parts.INoun = words[pos]
		}
		if opts.isVolumeNoun(words[pos]) {
			parts.Volume = num
			parts.VNoun = words[pos]
		}
		if parts.Issue != 0 && parts.Volume != 0 {
			parts.Year = year
			parts.Style = StyleVolumeIssue
			if year != 0 {
				parts.Style = StyleVolumeIssueYear
			}
			return parts, true
		}
	}
	return DateParts{}, false
}

// nounIssue handles an issue/volume noun followed by a number, including
// glued forms like "Vol.3" and "#12", and the "No. 19.2" year.issue
// shorthand.
func nounIssue(opts Options, words []string, year int) (DateParts, bool) {
	for pos, word := range words {
		noun, glued := splitNounDigits(word)
		if !opts.isNoun(noun) {
			continue
		}
		if glued != "" {
			if issue := atoi(glued); issue != 0 {
				return nounNumber(opts, noun, issue, year), true
			}
			continue
		}
		if pos+1 >= len(words) {
			continue
		}
		next := words[pos+1]
		if issue := atoi(next); issue != 0 {
			return nounNumber(opts, noun, issue, year), true
		}
		// "No. 19.2" means year 2019 issue 02
		if yy, ii, ok := splitDecimalShorthand(next); ok {
			parts := nounNumber(opts, noun, ii, yy)
			return parts, true
		}
	}
	return DateParts{}, false
}

func nounNumber(opts Options, noun string, number, year int) DateParts {
	parts := DateParts{Year: year, Issue: number, Style: StyleNounIssue}
	if year != 0 {
		parts.Style = StyleNounIssueYear
	}
	if opts.isVolumeNoun(noun) {
		parts.VNoun = noun
	} else {
		parts.INoun = noun
	}
	return parts
}

// numberAdjacentYear handles a bare number immediately before a year, with no
// noun: "Morgue Drawer Four 77 2021".
func numberAdjacentYear(words []string, year int) (DateParts, bool) {
	if year == 0 {
		return DateParts{}, false
	}
	for pos := 1; pos < len(words); pos++ {
		if checkYear(words[pos]) == 0 {
			continue
		}
		if issue := atoi(words[pos-1]); issue != 0 {
			return DateParts{Year: year, Issue: issue, Style: StyleNumberYear}, true
		}
	}
	return DateParts{}, false
}

// bareIssue handles a zero-padded issue number like "0063"; when the
// constraint demands an issue component, any all-digit token other than the
// year qualifies.
func bareIssue(words []string, year int, datetype string) (DateParts, bool) {
	wantIssue := strings.Contains(strings.ToUpper(datetype), "I")
	for _, word := range words {
		if !allDigits(word) {
			continue
		}
		padded := len(word) > 2 && word[0] == '0'
		if !padded && !(wantIssue && atoi(word) != year) {
			continue
		}
		return DateParts{Issue: atoi(word), Style: StyleBareIssue}, true
	}
	return DateParts{}, false
}

func splitNounDigits(word string) (noun, digits string) {
	for i := 0; i < len(word); i++ {
		if word[i] >= '0' && word[i] <= '9' {
			return word[:i], word[i:]
		}
	}
	return word, ""
}

// splitDecimalShorthand recognizes "19.2" as year 2019 issue 2.
func splitDecimalShorthand(word string) (year, issue int, ok bool) {
	dot := strings.Index(word, ".")
	if dot <= 0 || strings.Count(word, ".") != 1 {
		return 0, 0, false
	}
	yy, ii := word[:dot], word[dot+1:]
	if !allDigits(yy) || !allDigits(ii) {
		return 0, 0, false
	}
	if len(yy) == 2 {
		yy = "20" + yy
	}
	if len(yy) != 4 || len(ii) > 2 {
		return 0, 0, false
	}
	return atoi(yy), atoi(ii), true
}

func findYear(words []string) int {
	for _, word := range words {
		if year := checkYear(word); year != 0 {
			return year
		}
	}
	return 0
}

// checkYear returns the token's value when it is a plausible publication
// year, from 1850 through next year.
func checkYear(word string) int {
	if len(word) != 4 || !allDigits(word) {
		return 0
	}
	year := atoi(word)
	if plausibleYear(year) {
		return year
	}
	return 0
}

func plausibleYear(year int) bool {
	return year >= 1850 && year <= time.Now().Year()+1
}

func validDate(year, month, day int) bool {
	if year == 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && int(d.Month()) == month && d.Day() == day
}

func allDigits(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}

func digitsOf(word string) string {
	var b strings.Builder
	for i := 0; i < len(word); i++ {
		if word[i] >= '0' && word[i] <= '9' {
			b.WriteByte(word[i])
		}
	}
	return b.String()
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
