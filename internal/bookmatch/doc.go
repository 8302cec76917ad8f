// Package bookmatch resolves a scanned (author, title) pair to a catalog
// book.
//
// Matching runs in two passes: an exact title comparison under the
// catalog's punctuation-insensitive collation, then a fuzzy pass over the
// author's books scoring token-sort, partial, and pre-subtitle ratios
// against configurable thresholds. A nil Match with a nil error is the
// normal "no such book" outcome.
package bookmatch
