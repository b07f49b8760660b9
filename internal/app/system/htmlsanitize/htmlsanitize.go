// Package htmlsanitize strips markup from user-supplied profile text.
//
// Profile fields are plain text. Anything that looks like HTML is removed
// before it is stored, so clients that render partner cards as HTML cannot
// be handed a script through another user's profile.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element and attribute. It is safe for concurrent use.
var strict = bluemonday.StrictPolicy()

// maxPasses bounds how many layers of entity encoding are peeled.
const maxPasses = 8

// PlainText returns s with all tags removed and surrounding space trimmed.
// bluemonday escapes the text it keeps; the escaping is undone so that
// "Math & Physics" is stored as typed. Unescaping can surface markup that
// arrived entity-encoded, so sanitize and unescape repeat until the text
// stops changing. If markup still remains the escaped form is returned.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	out := s
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(strict.Sanitize(out))
		if next == out {
			break
		}
		out = next
	}
	if !IsPlainText(out) {
		out = strict.Sanitize(out)
	}
	return strings.TrimSpace(out)
}

// IsPlainText reports whether s contains no tag-like sequences.
func IsPlainText(s string) bool {
	i := strings.IndexByte(s, '<')
	if i < 0 {
		return true
	}
	return !strings.Contains(s[i:], ">")
}
