package fields

import "strings"

var educationHeaders = []string{"education", "academic", "qualification"}

var educationKeywords = []string{
	"bachelor", "b.tech", "b.e.", "bsc", "b.sc", "bca", "master", "m.tech",
	"msc", "m.sc", "mca", "mba", "phd", "diploma", "degree", "certificate",
	"certification", "university", "college", "institute", "school",
	"computer science", "engineering", "information technology", "commerce",
	"arts", "science",
}

const (
	educationWindow   = 10
	maxEducationLines = 3
	minEducationLen   = 10
)

// ExtractEducation returns up to three education lines joined by " | ",
// or "" when nothing qualifies. The scan prefers the window of lines
// following an education-style header; without one it falls back to the
// whole text.
func ExtractEducation(text string) string {
	lines := strings.Split(text, "\n")
	scan := lines

	for i, ln := range lines {
		lower := strings.ToLower(ln)
		if containsAny(lower, educationHeaders) {
			end := i + educationWindow
			if end > len(lines) {
				end = len(lines)
			}
			scan = lines[i:end]
			break
		}
	}

	var picked []string
	seen := make(map[string]struct{})
	for _, ln := range scan {
		trimmed := strings.TrimSpace(ln)
		if len(trimmed) <= minEducationLen {
			continue
		}
		if !containsAny(strings.ToLower(trimmed), educationKeywords) {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		picked = append(picked, trimmed)
		if len(picked) == maxEducationLines {
			break
		}
	}
	return strings.Join(picked, " | ")
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
