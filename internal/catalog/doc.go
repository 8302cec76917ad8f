// Package catalog persists the book and magazine catalog in SQLite.
//
// The store owns schema creation and versioning, registers the
// NOPUNCTUATION collation used for exact-title comparisons, and exposes
// typed operations for authors, books, magazines, and issues. Lookups that
// find nothing return a nil record with a nil error; callers treat "not
// found" as a normal outcome, not a failure.
package catalog
