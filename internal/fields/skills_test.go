package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsWordBoundaries(t *testing.T) {
	vocab := DefaultVocabulary()

	skills := ExtractSkills("Senior JavaScript engineer", vocab)
	assert.Contains(t, skills, "javascript")
	assert.NotContains(t, skills, "java", "java must not fire inside javascript")

	skills = ExtractSkills("Java and JavaScript", vocab)
	assert.Contains(t, skills, "java")
	assert.Contains(t, skills, "javascript")
}

func TestExtractSkillsVariationsMapToTag(t *testing.T) {
	vocab := DefaultVocabulary()

	skills := ExtractSkills("Built services with FastAPI and pandas", vocab)
	assert.Equal(t, []string{"python"}, skills)

	skills = ExtractSkills("React, TypeScript, Node.js", vocab)
	assert.Equal(t, []string{"javascript"}, skills)
}

func TestExtractSkillsSectionScan(t *testing.T) {
	vocab := DefaultVocabulary()

	text := "John Smith\n\nTechnical Skills:\nPython, Django, PostgreSQL\n\nHobbies:\nchess"
	skills := ExtractSkills(text, vocab)
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "django")
	assert.Contains(t, skills, "sql")
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	vocab := DefaultVocabulary()

	text := "Python python PYTHON\nSkills: python"
	skills := ExtractSkills(text, vocab)
	assert.Equal(t, []string{"python"}, skills)
}

func TestExtractSkillsEmpty(t *testing.T) {
	assert.Empty(t, ExtractSkills("", DefaultVocabulary()))
	assert.Empty(t, ExtractSkills("nothing relevant here", DefaultVocabulary()))
}

func TestNewVocabularyRejectsNothing(t *testing.T) {
	v, err := NewVocabulary([]SkillEntry{{Tag: "go", Variations: []string{"golang", "go"}}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"go"}, ExtractSkills("I write Golang", v))
}
