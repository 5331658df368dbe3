package utils

import "strings"

// ExtractJSONObject slices the substring between the first '{' and the last
// '}' of a generative response. Markdown fences and surrounding prose fall
// outside the braces and are discarded. Returns false when no such pair
// exists.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
