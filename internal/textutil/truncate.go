// Package textutil provides small helpers for display text.
package textutil

// Truncate cuts s to at most max bytes, backing up so a multi-byte UTF-8
// sequence is never split, and appends an ellipsis when anything was cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]>>6 == 0b10 {
		cut--
	}
	return s[:cut] + "..."
}
