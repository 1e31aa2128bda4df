package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plus years experience", "5+ years experience with Python", 5.0},
		{"years of experience", "7 years of experience in backend work", 7.0},
		{"experience colon years", "Experience: 3 years", 3.0},
		{"range takes the mean", "3-5 years in data engineering", 4.0},
		{"months convert to years", "24 months of consulting", 2.0},
		{"nothing found", "no numbers here", 0.0},
		{"empty", "", 0.0},
		{"max wins across mentions", "2 years at Acme, then 6 years at Globex", 6.0},
		{"yrs abbreviation", "10 yrs experience", 10.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractExperienceYears(tt.text), 0.001)
		})
	}
}

func TestExtractExperienceYearsRangeSuppressesBareYears(t *testing.T) {
	// the upper bound of "3-5 years" must not count as a separate "5 years"
	assert.InDelta(t, 4.0, ExtractExperienceYears("looking back on 3-5 years of work"), 0.001)
}

func TestExtractExperienceYearsDateRanges(t *testing.T) {
	text := "Acme Corp Jan 2018 - Dec 2020\nGlobex 2021-2023\nInitech 03/2015 to 11/2016"
	// three ranges, two years each
	assert.InDelta(t, 6.0, ExtractExperienceYears(text), 0.001)

	// a single range is not enough signal
	assert.InDelta(t, 0.0, ExtractExperienceYears("Acme Jan 2018 - Dec 2020"), 0.001)
}

func TestExtractExperienceYearsSummarySection(t *testing.T) {
	text := "Summary: seasoned engineer with 8 years building platforms\n\nSkills: Go"
	assert.InDelta(t, 8.0, ExtractExperienceYears(text), 0.001)
}
