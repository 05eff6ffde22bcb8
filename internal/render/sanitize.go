package render

import "strings"

// EscapeHTML replaces the five HTML-significant characters with their
// named entities. The ampersand is replaced first so already-substituted
// entities are not escaped twice.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// SanitizeURL accepts only values usable in href/src attributes:
// absolute http(s) URLs and fragment references. Everything else
// (empty strings, javascript: URIs, data: URIs, relative paths) is
// replaced with "#". Root-relative paths like "/kontakt" are also
// reduced to "#"; see DESIGN.md for why that restriction is kept.
func SanitizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") ||
		strings.HasPrefix(raw, "https://") ||
		strings.HasPrefix(raw, "#") {
		return raw
	}
	return "#"
}
