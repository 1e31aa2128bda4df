package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses spaces and tabs", "a  \t b", "a b"},
		{"strips disallowed characters", "skills: C#, F*", "skills: C , F"},
		{"keeps whitelist punctuation", "a.b,c:d;e!f?g@h(i)j-k/l", "a.b,c:d;e!f?g@h(i)j-k/l"},
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"form feed becomes newline", "page one\fpage two", "page one\npage two"},
		{"blank line runs collapse", "a\n\n\n\nb", "a\n\nb"},
		{"whitespace-only lines collapse", "a\n   \n \t\nb", "a\n\nb"},
		{"trims edges", "  \n John Smith \n", "John Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"John Smith\r\n\r\n\r\nEmail: j@x.com\t\tPhone: +1 555 010 2222",
		"résumé ★ unusual → characters",
		"a\n \n \nb   c\fd",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
