package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag and attribute. bluemonday policies are safe for
// concurrent use once built; never mutate it after init.
var strict = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true) // "<b>a</b><b>b</b>" must not become "ab"
	return p
}()

// Clean turns arbitrary user input into plain text for display:
// HTML is stripped, entities are unescaped, non-breaking spaces become
// spaces, runs of blanks collapse to one space per line and the result is
// trimmed. Input that is only markup or whitespace cleans to "".
//
//   - "<p>Buy <b>milk</b></p>" -> "Buy milk"
//   - "Tom &amp; Jerry"        -> "Tom & Jerry"
//   - "   "                    -> ""
func Clean(s string) string {
	out := strings.TrimSpace(strict.Sanitize(s))
	out = html.UnescapeString(out)
	out = strings.ReplaceAll(out, "\u00a0", " ")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Preview returns Clean(s) cut to at most limit runes, with an ellipsis
// appended when something was cut. Stored values must never go through it.
func Preview(s string, limit int) string {
	out := []rune(Clean(s))
	if limit <= 0 || len(out) <= limit {
		return string(out)
	}
	return string(out[:limit]) + "…"
}
