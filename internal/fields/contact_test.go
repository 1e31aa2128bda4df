package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "john@x.com", ExtractEmail("reach me at john@x.com or by phone"))
	assert.Equal(t, "first.last+tag@sub.example.co", ExtractEmail("first.last+tag@sub.example.co"))
	assert.Equal(t, "", ExtractEmail("no address here"))
	assert.Equal(t, "a@b.co", ExtractEmail("a@b.co then c@d.org"), "first match wins")
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"international", "call +91-9876543210 anytime", "+91-9876543210"},
		{"us style", "(555) 010-2222", "(555) 010-2222"},
		{"bare ten digits", "id 5550102222 on file", "5550102222"},
		{"none", "no numbers", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractPhonePrefersInternational(t *testing.T) {
	text := "home (555) 010-2222, mobile +1 555 010 3333"
	got := ExtractPhone(text)
	assert.Contains(t, got, "+1")
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first line", "John Smith\njohn@x.com", "John Smith"},
		{"skips document labels", "Curriculum Vitae\nJane Doe\n", "Jane Doe"},
		{"skips resume prefix", "Resume\nJane Doe", "Jane Doe"},
		{"skips lines with digits", "42 Wallaby Way\nJane Doe", "Jane Doe"},
		{"skips shouted headings", "PROFESSIONAL SUMMARY\nJane Doe", "Jane Doe"},
		{"first plausible line wins", "a b\nc d\ne f\ng h\ni j\nJane Doe", "a b"},
		{"nothing plausible", "RESUME\n12345\nEMAIL: x@y.co", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractNameRejectsLongLines(t *testing.T) {
	long := "An Extremely Long Line That Cannot Plausibly Be A Name At All"
	assert.Equal(t, "", ExtractName(long))
}
