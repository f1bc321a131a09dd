package util

import (
	"regexp"
	"strings"
)

var nonGroupChar = regexp.MustCompile(`[^a-z0-9_]`)

// SanitizeGroupName converts a string into a safe inventory group name.
// Ansible group names are conventionally lowercase alphanumerics and
// underscores.
func SanitizeGroupName(s string) string {
	s = strings.ToLower(s)
	s = nonGroupChar.ReplaceAllString(s, "_")
	if s == "" {
		return "ungrouped"
	}
	return s
}
