package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRuleOrder(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		years  float64
		want   string
	}{
		{"senior python", []string{"python", "django"}, 5, "Senior Python Developer"},
		{"senior python via flask", []string{"python", "flask"}, 7, "Senior Python Developer"},
		{"python below senior bar", []string{"python", "django"}, 4.9, "Python Developer"},
		{"python with zero years", []string{"python", "flask"}, 0, "Python Developer"},
		{"data scientist python", []string{"ml", "python"}, 2, "Data Scientist"},
		{"data scientist r", []string{"ml", "r"}, 3, "Data Scientist"},
		{"ml without language falls through", []string{"ml"}, 3, "ML Engineer"},
		{"data analyst excel sql", []string{"excel", "sql"}, 0, "Data Analyst"},
		{"data analyst tag alone", []string{"data_analysis"}, 0, "Data Analyst"},
		{"senior java", []string{"java"}, 5, "Senior Java Developer"},
		{"java", []string{"java"}, 1, "Java Developer"},
		{"java under a year ladders", []string{"java"}, 0.5, "Junior Developer"},
		{"web developer tag", []string{"web_development"}, 0, "Web Developer"},
		{"web developer js html", []string{"javascript", "html"}, 0, "Web Developer"},
		{"full stack", []string{"python", "html"}, 2, "Full Stack Developer"},
		{"full stack under two years ladders", []string{"python", "html"}, 1, "Junior Developer"},
		{"cloud engineer", []string{"cloud"}, 2, "Cloud Engineer"},
		{"devops engineer", []string{"devops"}, 4, "DevOps Engineer"},
		{"cloud under two years ladders", []string{"cloud"}, 1.5, "Junior Developer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.skills, tt.years))
		})
	}
}

func TestClassifySpecificBeatsGeneral(t *testing.T) {
	// a profile matching several rules gets the highest-priority one
	got := Classify([]string{"python", "django", "ml", "cloud", "devops"}, 6)
	assert.Equal(t, "Senior Python Developer", got)

	got = Classify([]string{"java", "javascript", "html"}, 6)
	assert.Equal(t, "Senior Java Developer", got)
}

func TestClassifyExperienceLadder(t *testing.T) {
	tests := []struct {
		years float64
		want  string
	}{
		{0, "Fresher"},
		{0.5, "Junior Developer"},
		{1.99, "Junior Developer"},
		{2, "Mid-Level Developer"},
		{4.99, "Mid-Level Developer"},
		{5, "Senior Professional"},
		{20, "Senior Professional"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(nil, tt.years), "years=%v", tt.years)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	assert.NotEmpty(t, Classify(nil, 0))
	assert.NotEmpty(t, Classify([]string{"unrecognized"}, 0))
}
