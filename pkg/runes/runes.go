package runes

import (
	"unicode/utf8"
)

// Count returns the number of runes in s, which is the column width of s.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}

// Prefix returns the first n runes of s. n is clamped to [0, Count(s)].
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
