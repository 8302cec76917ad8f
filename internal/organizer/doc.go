// Package organizer derives library-facing folder and file names from
// parsed issue metadata.
//
// Patterns use $-substitutions ($Title, $IssueDate, $IssueYear and so on)
// in the style of magazine destination templates. A file pattern that
// cannot reproduce a unique issue identity is rejected and replaced with a
// deterministic fallback so that scans of the resulting names always map
// back to the same issue.
package organizer
