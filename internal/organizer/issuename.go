package organizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"librarian/internal/issuedate"
	"librarian/internal/textutil"
)

// Options carries the month table and display language used when a pattern
// asks for month names.
type Options struct {
	Months   issuedate.MonthTable
	Language string
}

// DefaultOptions renders month names in English from the built-in table.
func DefaultOptions() Options {
	return Options{Months: issuedate.DefaultMonthTable(), Language: "en"}
}

var monthCaser = cases.Title(language.Und)

// FormatIssueFile expands a file-name pattern for one issue. Patterns that
// cannot identify the issue uniquely fall back to "<title> - <dbdate>",
// which always parses back to the same date parts. The result is
// sanitized for use as a single path component.
func FormatIssueFile(opts Options, pattern, title string, parts issuedate.DateParts) string {
	if !ValidFilePattern(pattern) {
		pattern = "$Title - $IssueDate"
	}
	name := expand(opts, pattern, title, parts)
	return textutil.SanitizeFileName(name)
}

// FormatIssueFolder expands a folder pattern for one issue. Folder patterns
// are not required to identify the issue, so no validity check applies.
// Each path segment is sanitized independently and separators survive.
func FormatIssueFolder(opts Options, pattern, title string, parts issuedate.DateParts) string {
	return textutil.SanitizePathSegments(expand(opts, pattern, title, parts))
}

// ValidFilePattern reports whether a file pattern carries enough
// substitutions to reconstruct the issue identity on a later scan.
func ValidFilePattern(pattern string) bool {
	has := func(token string) bool { return strings.Contains(pattern, token) }
	switch {
	case has("$IssueDate"):
		return true
	case has("$IssueYear") && has("$IssueNum"):
		return true
	case has("$Title") && has("$IssueNum"):
		return true
	case has("$IssueVol") && has("$IssueNum"):
		return true
	case has("$IssueYear") && has("$IssueMonth"):
		return true
	}
	return false
}

func expand(opts Options, pattern, title string, parts issuedate.DateParts) string {
	replacer := strings.NewReplacer(
		"$IssueDate", parts.DBDate,
		"$IssueYear", renderYear(parts.Year),
		"$IssueMonth", renderMonths(opts, parts),
		"$IssueDay", renderDay(parts.Day),
		"$IssueNum", renderIssue(parts.Issue),
		"$IssueVol", renderVolume(parts.Volume),
		"$Title", title,
	)
	return textutil.CollapseSpaces(replacer.Replace(pattern))
}

func renderYear(year int) string {
	if year <= 0 {
		return ""
	}
	return fmt.Sprintf("%04d", year)
}

func renderDay(day int) string {
	if day <= 0 {
		return ""
	}
	return fmt.Sprintf("%02d", day)
}

func renderIssue(issue int) string {
	if issue <= 0 {
		return ""
	}
	return fmt.Sprintf("%04d", issue)
}

func renderVolume(volume int) string {
	if volume <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", volume)
}

// renderMonths names the month, or the "First-Second" pair for bi-monthly
// issues, in the configured language.
func renderMonths(opts Options, parts issuedate.DateParts) string {
	months := parts.Months
	if len(months) == 0 && parts.Month > 0 {
		months = []int{parts.Month}
	}
	names := make([]string, 0, len(months))
	for _, m := range months {
		name := opts.Months.MonthName(m, opts.Language)
		if name == "" {
			continue
		}
		names = append(names, monthCaser.String(name))
	}
	return strings.Join(names, "-")
}
