package extract

import (
	"context"
	"time"

	"github.com/hirestack/resume-intake/constants"
)

// TextExtractor is Stage 1: file -> raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string, format constants.Format) (ExtractionResult, error)
}

// ExtractionResult carries the raw text and which strategy produced it.
// Text may be empty; that is the degraded case, not an error.
type ExtractionResult struct {
	Text     string
	Pages    int
	Format   constants.Format
	Method   constants.ExtractionMethod
	Duration time.Duration
	Warnings []string
}

// Empty reports whether the extraction yielded no usable text.
func (r ExtractionResult) Empty() bool {
	for _, c := range r.Text {
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}
