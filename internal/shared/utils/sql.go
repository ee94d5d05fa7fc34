package utils

import "strings"

// EscapeLike prevents user input from injecting LIKE wildcards.
// The result is meant for a bound parameter; PostgreSQL's default LIKE
// escape character is the backslash.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\") // Escape backslash first
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}

// ContainsPattern builds a %term% pattern for ILIKE "contains" matching.
func ContainsPattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}
