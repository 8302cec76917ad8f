// Command librarian manages a book and magazine catalog from the command
// line: parsing issue names, rendering destination filenames, matching
// titles against the catalog, and scanning library directories.
package main
