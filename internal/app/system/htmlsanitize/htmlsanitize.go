// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from operator-entered free text before
// it is persisted. Addresses, notes, and school names are stored as plain
// text; anything that looks like HTML is removed, not escaped.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements and attributes from s and decodes any
// entities the scrubber left behind, returning trimmed plain text.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
