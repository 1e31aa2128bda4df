// Package normalize cleans raw extracted text into a canonical form the
// field extractors can pattern-match reliably.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// characters outside the whitelist become spaces; word chars,
	// whitespace and . , : ; ! ? @ ( ) - / survive
	reDisallowed = regexp.MustCompile(`[^\w\s.,:;!?@()\-/]`)
	reSpaces     = regexp.MustCompile(`[ \t]+`)
	reBlankRuns  = regexp.MustCompile(`\n[ \t]*(?:\n[ \t]*)+`)
)

// Normalize collapses whitespace runs, strips non-whitelisted characters,
// normalizes line endings and collapses blank-line runs to a single blank
// line. Newlines are preserved: the name and education extractors are
// line-oriented. Idempotent; empty input yields empty output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// normalize line endings first so the remaining rules only see \n;
	// form feeds are page separators and count as line endings too
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\f", "\n")
	s = strings.ReplaceAll(s, "\v", "\n")

	s = reDisallowed.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")

	// trim per line so " \n" never survives to break blank-line collapsing
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
