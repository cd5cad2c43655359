// Package strutil provides string utilities.
package strutil

import "strings"

// ChopLineEnding removes one line ending ("\r\n" or "\n") from the end of s.
// It returns s if it doesn't end with a line ending.
func ChopLineEnding(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
