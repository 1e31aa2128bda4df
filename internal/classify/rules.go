// Package classify assigns a candidate category from extracted skills and
// experience using a fixed-priority rule table.
package classify

import (
	"github.com/hirestack/resume-intake/constants"
)

// SkillSet is membership lookup over extracted skill tags.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from a tag slice.
func NewSkillSet(skills []string) SkillSet {
	s := make(SkillSet, len(skills))
	for _, tag := range skills {
		s[tag] = struct{}{}
	}
	return s
}

// Has reports whether tag is in the set.
func (s SkillSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

func (s SkillSet) hasAny(tags ...string) bool {
	for _, tag := range tags {
		if s.Has(tag) {
			return true
		}
	}
	return false
}

type rule struct {
	category string
	matches  func(s SkillSet, years float64) bool
}

// rules is evaluated top to bottom; the first match wins. Ordering is
// most-specific-and-senior first, so "Senior Python Developer" shadows
// "Python Developer" rather than the other way round.
var rules = []rule{
	{constants.CategorySeniorPython, func(s SkillSet, y float64) bool {
		return s.Has("python") && y >= 5 && s.hasAny("django", "flask")
	}},
	{constants.CategoryPython, func(s SkillSet, y float64) bool {
		return s.Has("python") && s.hasAny("django", "flask")
	}},
	{constants.CategoryDataScientist, func(s SkillSet, y float64) bool {
		return s.Has("ml") && s.hasAny("python", "r") && y >= 2
	}},
	{constants.CategoryDataAnalyst, func(s SkillSet, y float64) bool {
		return (s.Has("excel") && s.Has("sql")) || s.Has("data_analysis")
	}},
	{constants.CategorySeniorJava, func(s SkillSet, y float64) bool {
		return s.Has("java") && y >= 5
	}},
	{constants.CategoryJava, func(s SkillSet, y float64) bool {
		return s.Has("java") && y >= 1
	}},
	{constants.CategoryWebDeveloper, func(s SkillSet, y float64) bool {
		return s.Has("web_development") || (s.Has("javascript") && s.Has("html"))
	}},
	{constants.CategoryFullStack, func(s SkillSet, y float64) bool {
		return s.hasAny("python", "java", "javascript") && s.hasAny("web_development", "html") && y >= 2
	}},
	{constants.CategoryMLEngineer, func(s SkillSet, y float64) bool {
		return s.Has("ml") && y >= 2
	}},
	{constants.CategoryCloudEngineer, func(s SkillSet, y float64) bool {
		return s.Has("cloud") && y >= 2
	}},
	{constants.CategoryDevOpsEngineer, func(s SkillSet, y float64) bool {
		return s.Has("devops") && y >= 2
	}},
}

// Classify maps skills and experience to a category name. It is total:
// when no skill rule fires, an experience-only ladder guarantees a result.
func Classify(skills []string, experienceYears float64) string {
	set := NewSkillSet(skills)
	for _, r := range rules {
		if r.matches(set, experienceYears) {
			return r.category
		}
	}
	switch {
	case experienceYears == 0:
		return constants.CategoryFresher
	case experienceYears < 2:
		return constants.CategoryJuniorDeveloper
	case experienceYears < 5:
		return constants.CategoryMidLevel
	default:
		return constants.CategorySeniorPro
	}
}
