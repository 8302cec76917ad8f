// Package magscan walks the magazine directory and records the issues it
// finds. The magazine title comes from the filename pattern or the
// containing folder; the issue date is parsed from the filename under the
// magazine's stored date type, so a title that numbers by volume never
// flips to calendar dates because one filename looked like a year. Files
// whose name yields no date are logged and skipped.
package magscan
