// Package pipeline coordinates the resume processing stages: text
// extraction, normalization, field extraction, and classification.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/internal/classify"
	"github.com/hirestack/resume-intake/internal/extract"
	"github.com/hirestack/resume-intake/internal/fields"
	"github.com/hirestack/resume-intake/internal/normalize"
)

// Pipeline is the core document pipeline. It owns no persistent state
// and is safe for concurrent use across documents.
type Pipeline struct {
	Logger    *slog.Logger
	Extractor extract.TextExtractor
	Fields    *fields.Extractor
}

func New(logger *slog.Logger, tx extract.TextExtractor, fe *fields.Extractor) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if fe == nil {
		fe = fields.NewExtractor(nil)
	}
	return &Pipeline{Logger: logger, Extractor: tx, Fields: fe}
}

// Process runs the full pipeline for one document. When extraction yields
// no usable text the degraded branch produces a minimal record with
// category "Unknown" rather than an error; the only fatal input problem
// is an unsupported format.
func (p *Pipeline) Process(ctx context.Context, path string, format constants.Format) (Record, error) {
	res, err := p.Extractor.Extract(ctx, path, format)
	if err != nil {
		return Record{}, err
	}
	rec := p.Build(res.Text, path, format, res.Method, res.Warnings)
	p.Logger.Info("document processed",
		"path", path,
		"format", format,
		"method", res.Method,
		"degraded", rec.Degraded,
		"skills", len(rec.Skills),
		"experience_years", rec.ExperienceYears,
		"category", rec.Category,
	)
	return rec, nil
}

// Build assembles a record from already-extracted raw text. Whitespace-only
// text takes the degraded branch: category "Unknown", fields defaulted,
// name derived from the filename.
func (p *Pipeline) Build(rawText, path string, format constants.Format, method constants.ExtractionMethod, warnings []string) Record {
	rec := Record{
		Skills:       []string{},
		SourceFormat: string(format),
		Method:       string(method),
		Warnings:     warnings,
	}

	if strings.TrimSpace(rawText) == "" {
		p.Logger.Warn("no text extracted, taking degraded path",
			"path", path, "format", format, "method", method)
		rec.Name = filenameStem(path)
		rec.Category = constants.CategoryUnknown
		rec.Degraded = true
		return rec
	}

	text := normalize.Normalize(rawText)

	facts := p.Fields.Extract(text)
	rec.Name = facts.Name
	if rec.Name == "" {
		rec.Name = filenameStem(path)
	}
	rec.Email = facts.Email
	rec.Phone = facts.Phone
	if facts.Skills != nil {
		rec.Skills = facts.Skills
	}
	rec.ExperienceYears = facts.ExperienceYears
	rec.Education = facts.Education

	rec.Category = classify.Classify(rec.Skills, rec.ExperienceYears)
	return rec
}

func filenameStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
