package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates text extraction then candidate analysis.
type Processor struct {
	Logger  *slog.Logger
	Extract *ExtractStage
	Analyze *AnalyzeStage
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage, analyze *AnalyzeStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: extract, Analyze: analyze}
}

// ProcessFile runs the extract stage for a fileID (creating/advancing the
// parse job), then analyzes the stored text and upserts the candidate.
// Returns the final jobID (same one started by extraction).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	jobID, res, err := p.Extract.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.extract.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
	)

	if _, err := p.Analyze.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.analyze.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.analyze.ok", "job_id", jobID)
	return jobID, nil
}
