package forms

import "strings"

// SplitList turns a single comma-delimited input into an ordered list.
// Segments are trimmed but never deduplicated, and empty segments produced
// by trailing or doubled commas are kept: "a, b, b, " yields
// ["a" "b" "b" ""]. The directory has always accepted this shape, so the
// splitter preserves it rather than silently cleaning the input.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// JoinList is the inverse used to prefill an edit prompt.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
