package validate

import (
	"strings"
	"unicode"
)

// SanitizeLabel trims a label and removes control characters.
func SanitizeLabel(label string) string {
	return strings.TrimSpace(StripControlChars(strings.ReplaceAll(label, "\n", " ")))
}

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TruncateString truncates a string to the given length, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
