// Package namenorm normalizes author and title names into word sequences
// used by the matching engine.
//
// Words lowercases, strips punctuation, and merges runs of single-letter
// tokens into one initials token so "J. R. R. Tolkien" and "J.R.R. Tolkien"
// produce the same sequence. TitleWords extracts the leading title portion of
// a filename-derived word sequence, stopping at trailing volume, issue, or
// year tokens. FormatAuthorName renders an author name in the catalog's
// canonical "Forename Surname" form.
package namenorm
