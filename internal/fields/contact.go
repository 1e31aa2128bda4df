package fields

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Checked in order: international beats US-style beats a bare 10-digit
	// run, so "+91-9876543210" is reported with its country code intact.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10}`),
	}

	namePrefixes = []string{"curriculum vitae", "resume", "cv", "phone", "email"}
)

const (
	nameScanLines = 5
	maxNameLen    = 50
)

// ExtractEmail returns the first email address in the text, or "".
func ExtractEmail(text string) string {
	return reEmail.FindString(text)
}

// ExtractPhone returns the first phone number found, trying formats in
// priority order, or "".
func ExtractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// ExtractName scans the first few non-empty lines for one that looks like
// a person's name: short, no digits, not shouted, not a document label.
// Returns "" when nothing plausible appears; callers fall back to the
// filename.
func ExtractName(text string) string {
	scanned := 0
	for _, ln := range strings.Split(text, "\n") {
		line := strings.TrimSpace(ln)
		if line == "" {
			continue
		}
		scanned++
		if scanned > nameScanLines {
			break
		}
		if plausibleName(line) {
			return line
		}
	}
	return ""
}

func plausibleName(line string) bool {
	if len(line) == 0 || len(line) >= maxNameLen {
		return false
	}
	lower := strings.ToLower(line)
	for _, p := range namePrefixes {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	hasUpper := false
	hasLower := false
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	// all-caps lines are headings, not names
	if hasUpper && !hasLower {
		return false
	}
	return true
}
