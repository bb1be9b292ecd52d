// Package search prepares user keywords for SQL pattern matching.
package search

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeILIKE escapes LIKE wildcards in keyword and wraps it in % for a contains match.
// PostgreSQL uses backslash as the default LIKE escape character.
func EscapeILIKE(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// Normalize trims keyword and collapses internal whitespace runs to single spaces.
func Normalize(keyword string) string {
	return strings.Join(strings.Fields(keyword), " ")
}
