package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxCaptionLen is the longest description Shutterstock accepts.
const maxCaptionLen = 150

// Normalize trims whitespace, drops empty entries, and removes duplicates
// case-insensitively while preserving order and first-seen casing.
func Normalize(kws []string) []string {
	if len(kws) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(kws))
	out := make([]string, 0, len(kws))
	for _, kw := range kws {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		folded := strings.ToLower(kw)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, kw)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// Merge appends extra onto base and normalizes the result.
func Merge(base, extra []string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	merged = append(merged, base...)
	merged = append(merged, extra...)
	return Normalize(merged)
}

// Split parses a comma-separated keyword string into a normalized list.
func Split(s string) []string {
	return Normalize(strings.Split(s, ","))
}

// RefineCaption cleans a raw model caption: trims whitespace, upper-cases
// the first rune, and truncates anything longer than 150 runes to 147
// runes plus an ellipsis.
func RefineCaption(raw string) string {
	caption := strings.TrimSpace(raw)
	if caption == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(caption)
	if unicode.IsLower(r) {
		caption = string(unicode.ToUpper(r)) + caption[size:]
	}

	if runes := []rune(caption); len(runes) > maxCaptionLen {
		caption = string(runes[:maxCaptionLen-3]) + "..."
	}

	return caption
}
