package fields

import (
	"fmt"
	"regexp"
)

// SkillEntry maps one canonical skill tag to its lowercase surface-form
// variations. Variations are matched as whole words, never substrings, so
// "java" cannot fire inside "javascript".
type SkillEntry struct {
	Tag        string
	Variations []string
}

type compiledEntry struct {
	tag        string
	variations []*regexp.Regexp
}

// Vocabulary is the compiled skill table. The entry order is the discovery
// order reported by ExtractSkills. Build once at startup; safe for
// concurrent use afterwards.
type Vocabulary struct {
	entries []compiledEntry
}

// NewVocabulary compiles a vocabulary. Callers extend the skill surface by
// passing extra entries; the core matching code never changes for that.
func NewVocabulary(entries []SkillEntry) (*Vocabulary, error) {
	v := &Vocabulary{entries: make([]compiledEntry, 0, len(entries))}
	for _, e := range entries {
		ce := compiledEntry{tag: e.Tag, variations: make([]*regexp.Regexp, 0, len(e.Variations))}
		for _, raw := range e.Variations {
			re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(raw) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("compile variation %q for tag %q: %w", raw, e.Tag, err)
			}
			ce.variations = append(ce.variations, re)
		}
		v.entries = append(v.entries, ce)
	}
	return v, nil
}

// MustVocabulary is NewVocabulary for static tables.
func MustVocabulary(entries []SkillEntry) *Vocabulary {
	v, err := NewVocabulary(entries)
	if err != nil {
		panic(err)
	}
	return v
}

// match returns canonical tags found in text, ordered by first discovery.
// The first matching variation claims the tag; later variations of the
// same tag are not tested.
func (v *Vocabulary) match(text string) []string {
	var tags []string
	for _, e := range v.entries {
		for _, re := range e.variations {
			if re.MatchString(text) {
				tags = append(tags, e.tag)
				break
			}
		}
	}
	return tags
}

// DefaultVocabulary returns the built-in skill table. Tags referenced by
// the classifier rules (django, flask, html, r) are first-class tags here
// rather than variations of broader ones, so rule predicates can see them.
func DefaultVocabulary() *Vocabulary {
	return MustVocabulary([]SkillEntry{
		{Tag: "python", Variations: []string{"python", "python3", "python 3", "python programming", "fastapi", "pandas", "numpy"}},
		{Tag: "django", Variations: []string{"django"}},
		{Tag: "flask", Variations: []string{"flask"}},
		{Tag: "java", Variations: []string{"java", "java programming", "spring", "spring boot", "spring framework", "hibernate", "j2ee"}},
		{Tag: "javascript", Variations: []string{"javascript", "js", "node.js", "nodejs", "react", "angular", "vue", "typescript", "express.js"}},
		{Tag: "html", Variations: []string{"html", "html5"}},
		{Tag: "sql", Variations: []string{"sql", "mysql", "postgresql", "postgres", "oracle", "sql server", "database", "mongodb"}},
		{Tag: "excel", Variations: []string{"excel", "microsoft excel", "spreadsheet", "vlookup", "pivot table"}},
		{Tag: "ml", Variations: []string{"machine learning", "ml", "ai", "artificial intelligence", "deep learning", "neural network", "tensorflow", "pytorch"}},
		{Tag: "r", Variations: []string{"r", "r programming", "rstudio"}},
		{Tag: "data_analysis", Variations: []string{"data analysis", "data analytics", "power bi", "tableau", "data visualization", "business intelligence"}},
		{Tag: "web_development", Variations: []string{"web development", "css", "bootstrap", "frontend", "backend", "full stack"}},
		{Tag: "cloud", Variations: []string{"aws", "amazon web services", "azure", "google cloud", "gcp", "cloud computing", "docker", "kubernetes"}},
		{Tag: "testing", Variations: []string{"testing", "selenium", "junit", "testng", "automation testing", "manual testing"}},
		{Tag: "devops", Variations: []string{"devops", "ci/cd", "jenkins", "git", "github", "gitlab"}},
	})
}
