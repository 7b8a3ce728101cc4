package form

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower lower-cases a view name for use as a resource identifier.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToDotted converts a slash separated output path into a package path.
func ToDotted(path string) string {
	return strings.ReplaceAll(path, "/", ".")
}
