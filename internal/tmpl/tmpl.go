package tmpl

import (
	"strconv"
	"strings"
)

// Vars holds the runtime values available to file name templates.
type Vars struct {
	Size int
}

// Expand replaces template placeholders in s with runtime values.
// {size} → edge length ("16"), {dims} → "16x16".
func Expand(s string, v Vars) string {
	n := strconv.Itoa(v.Size)
	s = strings.ReplaceAll(s, "{dims}", n+"x"+n)
	s = strings.ReplaceAll(s, "{size}", n)
	return s
}

// HasSize reports whether s contains a placeholder that varies with size.
// A template without one would make every icon overwrite the same file.
func HasSize(s string) bool {
	return strings.Contains(s, "{size}") || strings.Contains(s, "{dims}")
}
