package fields

import (
	"regexp"
	"strings"
)

// Section headers like "Skills:", "Technical Skills" or "Expertise" mark a
// span that runs until a blank line or the next "Label:" line. Matching is
// re-run inside that span because dense skill lists ("Python, R, SQL") are
// where most tags live.
var skillSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)skills?[\s:]*(.*?)(?:\n\n|\n\w+:)`),
	regexp.MustCompile(`(?is)technical\s*skills?[\s:]*(.*?)(?:\n\n|\n\w+:)`),
	regexp.MustCompile(`(?is)expertise[\s:]*(.*?)(?:\n\n|\n\w+:)`),
}

// ExtractSkills scans the whole text for vocabulary hits, then re-scans
// any explicit skills sections, unioning the results. The returned tags
// are deduplicated and ordered by first discovery.
func ExtractSkills(text string, vocab *Vocabulary) []string {
	lower := strings.ToLower(text)

	found := vocab.match(lower)
	seen := make(map[string]struct{}, len(found))
	for _, tag := range found {
		seen[tag] = struct{}{}
	}

	for _, re := range skillSectionRes {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		for _, tag := range vocab.match(m[1]) {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				found = append(found, tag)
			}
		}
	}
	return found
}
