package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. Trailing periods and spaces are stripped because
// Windows rejects names that end with either.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = fileNameReplacer.Replace(name)
	return strings.TrimRight(strings.TrimSpace(name), ". ")
}

// SanitizePathSegments sanitizes each segment of a relative path, keeping the
// separators. Used for destination patterns that encode folder layout.
func SanitizePathSegments(path string) string {
	segments := strings.Split(path, "/")
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		cleaned := SanitizeFileName(segment)
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return strings.Join(out, "/")
}
