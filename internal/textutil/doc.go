// Package textutil provides text processing utilities for title and name
// matching and for filename sanitization.
//
// The primary use cases are:
//   - Folding accented characters to their ASCII base forms
//   - Splitting free text into comparison words
//   - Computing fuzzy similarity scores on a 0-100 scale
//   - Sanitizing filenames and path segments for safe filesystem use
//
// Similarity scores follow the conventions of the matching engine: a
// token-sort ratio that ignores word order, and a partial ratio that rewards
// one string containing the other.
package textutil
