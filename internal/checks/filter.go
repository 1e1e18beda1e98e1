package checks

import (
	"path/filepath"
	"strings"
)

// MatchKey reports whether a category key matches pattern.
// Supports comma separated alternatives, wildcards like "metro*" or
// "*database*", and plain substrings. An empty pattern matches everything.
func MatchKey(key, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return true
	}

	for _, alt := range strings.Split(pattern, ",") {
		alt = strings.TrimSpace(alt)
		if alt != "" && matchOne(key, alt) {
			return true
		}
	}
	return false
}

func matchOne(key, pattern string) bool {
	// Wildcard patterns are anchored to the whole key
	if strings.ContainsAny(pattern, "*?[") {
		matched, err := filepath.Match(pattern, key)
		return err == nil && matched
	}
	return strings.Contains(key, pattern)
}

// FilterKeys returns the keys matching pattern, in order
func FilterKeys(keys []string, pattern string) []string {
	var filtered []string
	for _, k := range keys {
		if MatchKey(k, pattern) {
			filtered = append(filtered, k)
		}
	}
	return filtered
}
