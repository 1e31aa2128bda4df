package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducationSectionWindow(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"Education",
		"Bachelor of Science in Computer Science, State University",
		"MBA, Business School of Commerce",
		"Hobbies: chess",
	}, "\n")

	got := ExtractEducation(text)
	assert.Contains(t, got, "Bachelor of Science")
	assert.Contains(t, got, "MBA")
	assert.Contains(t, got, " | ")
}

func TestExtractEducationFallsBackToWholeText(t *testing.T) {
	text := "Jane Doe\nworked for years\nMaster of Engineering, Tech Institute"
	got := ExtractEducation(text)
	assert.Contains(t, got, "Master of Engineering")
}

func TestExtractEducationLimits(t *testing.T) {
	lines := []string{
		"Education",
		"Bachelor of Arts, First University",
		"Master of Arts, Second University",
		"PhD in History, Third University",
		"Diploma in Design, Fourth College",
	}
	got := ExtractEducation(strings.Join(lines, "\n"))
	assert.Equal(t, 3, len(strings.Split(got, " | ")), "at most three lines")
	assert.NotContains(t, got, "Fourth College")
}

func TestExtractEducationSkipsShortAndIrrelevantLines(t *testing.T) {
	assert.Equal(t, "", ExtractEducation("no education mentioned anywhere"))
	assert.Equal(t, "", ExtractEducation("degree"), "too short to be a real entry")
}

func TestExtractEducationDeduplicates(t *testing.T) {
	text := "Education\nBachelor of Science, State University\nBachelor of Science, State University"
	got := ExtractEducation(text)
	assert.Equal(t, 1, strings.Count(got, "Bachelor of Science"))
}
