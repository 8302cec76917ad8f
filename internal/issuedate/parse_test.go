package issuedate

import (
	"testing"
)

func TestParseStyles(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name     string
		text     string
		datetype string
		style    Style
		dbdate   string
	}{
		{
			name:   "month year",
			text:   "Vogue - March 2024.pdf",
			style:  StyleMonthYear,
			dbdate: "2024-03-01",
		},
		{
			name:   "noun issue year",
			text:   "The Economist No. 45, 2023.pdf",
			style:  StyleNounIssueYear,
			dbdate: "20230045",
		},
		{
			name:   "padded bare issue",
			text:   "MyZine 0063.pdf",
			style:  StyleBareIssue,
			dbdate: "0063",
		},
		{
			name:   "bi-monthly pair",
			text:   "Mag January-February 2024",
			style:  StyleMonthPair,
			dbdate: "2024-01-01",
		},
		{
			name:   "day month year",
			text:   "Newsletter 15 March 2020",
			style:  StyleDayMonthYear,
			dbdate: "2020-03-15",
		},
		{
			name:   "month day year",
			text:   "Journal March 15, 2020",
			style:  StyleMonthDayYear,
			dbdate: "2020-03-15",
		},
		{
			name:   "year month day",
			text:   "Daily 2020-03-15.pdf",
			style:  StyleYearMonthDay,
			dbdate: "2020-03-15",
		},
		{
			name:   "year month",
			text:   "Monthly 2021 05",
			style:  StyleYearMonth,
			dbdate: "2021-05-01",
		},
		{
			name:   "volume issue year",
			text:   "Series Vol 3 No 12 2022",
			style:  StyleVolumeIssueYear,
			dbdate: "202200030012",
		},
		{
			name:   "volume issue no year",
			text:   "Series Vol 3 No 12",
			style:  StyleVolumeIssue,
			dbdate: "00030012",
		},
		{
			name:   "hash glued to issue",
			text:   "Comics #7",
			style:  StyleNounIssue,
			dbdate: "0007",
		},
		{
			name:   "noun glued with period",
			text:   "Mag Vol.3 2021",
			style:  StyleNounIssueYear,
			dbdate: "20210003",
		},
		{
			name:   "decimal year issue shorthand",
			text:   "Quarterly No. 19.2",
			style:  StyleNounIssueYear,
			dbdate: "20190002",
		},
		{
			name:   "compact year month",
			text:   "Zine 202403",
			style:  StyleCompactYearMonth,
			dbdate: "2024-03-01",
		},
		{
			name:   "compact month year",
			text:   "Zine 032024",
			style:  StyleCompactYearMonth,
			dbdate: "2024-03-01",
		},
		{
			name:   "compact year issue",
			text:   "Archive 20230045",
			style:  StyleCompactYearIssue,
			dbdate: "20230045",
		},
		{
			name:   "compact volume issue",
			text:   "Archive 10250012",
			style:  StyleCompactVolumeIssue,
			dbdate: "10250012",
		},
		{
			name:   "compact year volume issue",
			text:   "Archive 202300030012",
			style:  StyleCompactYearVolumeIssue,
			dbdate: "202300030012",
		},
		{
			name:   "bare number before year",
			text:   "Morgue Drawer Four 77 2021",
			style:  StyleNumberYear,
			dbdate: "20210077",
		},
		{
			name:   "year only",
			text:   "Annual Report 2019",
			style:  StyleYearOnly,
			dbdate: "2019",
		},
		{
			name:     "unpadded issue needs constraint",
			text:     "Puzzler 85",
			datetype: "I",
			style:    StyleBareIssue,
			dbdate:   "0085",
		},
		{
			name:   "unpadded issue without constraint",
			text:   "Puzzler 85",
			style:  StyleNone,
			dbdate: "",
		},
		{
			name:     "large number before month becomes issue",
			text:     "Newsletter 45 March 2020",
			datetype: "I",
			style:    StyleNounIssueYear,
			dbdate:   "20200045",
		},
		{
			name:   "german month name",
			text:   "Zeitschrift März 2021",
			style:  StyleMonthYear,
			dbdate: "2021-03-01",
		},
		{
			name:   "invalid calendar day falls back to year",
			text:   "Mag 31 February 2021",
			style:  StyleYearOnly,
			dbdate: "2021",
		},
		{
			name:   "nothing recognizable",
			text:   "Some Random Words",
			style:  StyleNone,
			dbdate: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := Parse(opts, tt.text, tt.datetype)
			if parts.Style != tt.style {
				t.Fatalf("Parse(%q, %q) style = %v, want %v", tt.text, tt.datetype, parts.Style, tt.style)
			}
			if parts.DBDate != tt.dbdate {
				t.Errorf("Parse(%q, %q) dbdate = %q, want %q", tt.text, tt.datetype, parts.DBDate, tt.dbdate)
			}
		})
	}
}

func TestParseConstraintRejection(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name     string
		text     string
		datetype string
	}{
		{name: "month year cannot satisfy issue", text: "Vogue March 2024", datetype: "I"},
		{name: "noun issue cannot satisfy day", text: "Economist No 45 2023", datetype: "D"},
		{name: "year only cannot satisfy month", text: "Annual 2019", datetype: "M"},
		{name: "single month cannot satisfy pair", text: "Vogue March 2024", datetype: "MMY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := Parse(opts, tt.text, tt.datetype)
			if parts.Style != StyleNone {
				t.Fatalf("Parse(%q, %q) style = %v, want StyleNone", tt.text, tt.datetype, parts.Style)
			}
			if parts.DBDate != "" {
				t.Errorf("Parse(%q, %q) dbdate = %q, want empty", tt.text, tt.datetype, parts.DBDate)
			}
		})
	}
}

func TestParseBiMonthlyMonths(t *testing.T) {
	parts := Parse(DefaultOptions(), "Mag November/December 2023", "")
	if parts.Style != StyleMonthPair {
		t.Fatalf("style = %v, want StyleMonthPair", parts.Style)
	}
	if len(parts.Months) != 2 || parts.Months[0] != 11 || parts.Months[1] != 12 {
		t.Errorf("months = %v, want [11 12]", parts.Months)
	}
	if parts.Month != 11 {
		t.Errorf("anchor month = %d, want 11", parts.Month)
	}
}

func TestParseVolumeIssueParts(t *testing.T) {
	parts := Parse(DefaultOptions(), "Series Vol 3 Iss 12 2022", "VI")
	if parts.Volume != 3 || parts.Issue != 12 || parts.Year != 2022 {
		t.Fatalf("got volume=%d issue=%d year=%d, want 3/12/2022", parts.Volume, parts.Issue, parts.Year)
	}
	if parts.VNoun != "vol" || parts.INoun != "iss" {
		t.Errorf("nouns = %q/%q, want vol/iss", parts.VNoun, parts.INoun)
	}
}

func TestParseDBDateRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	inputs := []string{
		"Vogue March 2024",
		"Economist No 45 2023",
		"Daily 2020-03-15",
		"Series Vol 3 No 12 2022",
		"MyZine 0063",
		"Annual 2019",
	}
	for _, input := range inputs {
		first := Parse(opts, input, "")
		if first.Style == StyleNone {
			t.Fatalf("Parse(%q) did not classify", input)
		}
		second := Parse(opts, "Reparse "+first.DBDate, "")
		if second.DBDate != first.DBDate {
			t.Errorf("dbdate %q reparsed to %q", first.DBDate, second.DBDate)
		}
	}
}

func TestMonthTableLookups(t *testing.T) {
	table := DefaultMonthTable()

	lookups := map[string]int{
		"january": 1, "Jan": 1, "januar": 1, "janvier": 1,
		"märz": 3, "maart": 3,
		"dec.": 12, "diciembre": 12,
		"notamonth": 0, "": 0,
	}
	for word, want := range lookups {
		if got := table.MonthNumber(word); got != want {
			t.Errorf("MonthNumber(%q) = %d, want %d", word, got, want)
		}
	}

	if got := table.MonthName(3, "de"); got != "marz" {
		t.Errorf("MonthName(3, de) = %q, want marz", got)
	}
	if got := table.MonthName(3, "xx"); got != "march" {
		t.Errorf("MonthName(3, xx) = %q, want march (fallback)", got)
	}
	if got := table.MonthName(13, "en"); got != "" {
		t.Errorf("MonthName(13, en) = %q, want empty", got)
	}
}
