// utils/text.go
package utils

import "strings"

// NormalizeToken lowercases and trims a single caller-supplied token
// (an interest or a suitable_for group) before set matching.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitSet turns a comma-separated column value ("History, Local Food")
// into the normalized token set the matching rules operate on: lowercase
// with all space characters removed. Returns nil for an empty value.
func SplitSet(raw string) []string {
	cleaned := strings.ReplaceAll(strings.ToLower(raw), " ", "")
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, ",")
}

// HasElement reports whether v is an exact element of set.
func HasElement(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
