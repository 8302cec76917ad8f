// Package issuedate classifies free-form magazine filenames and stored issue
// strings into one of eighteen recognized date and issue numbering
// conventions, and derives the canonical sortable string persisted to the
// catalog.
//
// Parse runs a fixed sequence of passes: compound all-digit tokens first,
// then positional month/day/year heuristics, then issue and volume noun
// scans, then fallbacks. The first pass that classifies the input wins; this
// ordering is a deliberate heuristic, not guaranteed-optimal parsing. A
// DateType constraint configured per magazine title can reject a parse whose
// style does not supply every demanded component.
//
// Parse is a pure function of its Options and input and is safe for
// concurrent use.
package issuedate
