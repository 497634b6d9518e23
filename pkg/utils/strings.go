package utils

import "strings"

// Truncate keeps at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}

// StripDashes turns "123-456-7890" into "1234567890".
func StripDashes(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
