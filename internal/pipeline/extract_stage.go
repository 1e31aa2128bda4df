package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/internal/extract"
	"github.com/hirestack/resume-intake/internal/repository"
)

// ExtractStage runs stage 1 against the database: it starts a parse job
// for a file, extracts the raw text, and persists it on the job row.
type ExtractStage struct {
	FilesRepo     repository.ResumeFileRepository
	JobsRepo      repository.ParseJobRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewExtractStage(files repository.ResumeFileRepository, jobs repository.ParseJobRepository, tx extract.TextExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts a parse job, extracts text, and persists the outcome.
// An empty result is stored as TEXT_OK with method "none"; the analyze
// stage decides whether to take the degraded branch.
func (p *ExtractStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.ExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.ExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.ExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, string(format))
	if err != nil {
		return uuid.Nil, extract.ExtractionResult{}, err
	}

	res, err := p.TextExtractor.Extract(ctx, row.SourcePath, format)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if err := p.JobsRepo.FinishText(ctx, job.ID, res.Text, string(res.Method)); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
