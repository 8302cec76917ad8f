// Package libscan walks a library directory tree and reconciles the book
// files it finds with the catalog. Author and title are inferred from the
// directory layout or the filename; each pair is resolved through the
// fuzzy book matcher and resolved books are marked Open. Files that
// cannot be classified are logged and skipped, so a scan always runs to
// completion. A file lock serializes scans across processes.
package libscan
