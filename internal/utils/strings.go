package utils

import "fmt"

const (
	// DefaultMaxStringLength is the default maximum length for truncated strings
	DefaultMaxStringLength = 500
)

// TruncateString shortens s to at most maxLen characters, appending a suffix
// that records the original total length so callers know data was omitted.
// If maxLen is zero or negative, [DefaultMaxStringLength] is used instead.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}

// Snippet shortens s to at most maxLen characters with a plain ellipsis
// suffix. Unlike [TruncateString] it produces user-facing text, not a debug
// preview.
func Snippet(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
