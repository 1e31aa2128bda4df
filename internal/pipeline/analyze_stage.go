package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/internal/repository"
)

// AnalyzeStage runs stage 2: it reads the raw text persisted by the
// extract stage, builds the candidate record, and writes the candidate
// row plus the finished job.
type AnalyzeStage struct {
	Logger         *slog.Logger
	Core           *Pipeline
	JobsRepo       repository.ParseJobRepository
	CandidatesRepo repository.CandidateRepository
	CategoriesRepo repository.CategoryRepository
}

func NewAnalyzeStage(
	logger *slog.Logger,
	core *Pipeline,
	jobs repository.ParseJobRepository,
	candidates repository.CandidateRepository,
	categories repository.CategoryRepository,
) *AnalyzeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeStage{
		Logger:         logger,
		Core:           core,
		JobsRepo:       jobs,
		CandidatesRepo: candidates,
		CategoriesRepo: categories,
	}
}

// Run executes the analyze stage for an existing extract job (jobID).
// Preconditions: job is TEXT_OK with a stored raw text (possibly empty)
// and a valid file link.
func (p *AnalyzeStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusTextOK) {
		return job.ID, fmt.Errorf("job not ready for analyze: status=%v", job.Status)
	}

	rawText := ""
	if job.RawText != nil {
		rawText = *job.RawText
	}
	method := string(constants.MethodNone)
	if job.Method != nil {
		method = *job.Method
	}

	rec := p.Core.Build(rawText, file.SourcePath, constants.Format(job.Format), constants.ExtractionMethod(method), nil)

	if err := ValidateRecord(rec); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate record: %w", err)
	}

	cat, err := p.CategoriesRepo.GetOrCreate(ctx, rec.Category)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("category: %w", err)
	}

	cand, err := p.CandidatesRepo.UpsertForFile(ctx, &repository.UpsertCandidateRequest{
		FileID:          file.ID,
		CategoryID:      cat.ID,
		Name:            rec.Name,
		Email:           rec.Email,
		Phone:           rec.Phone,
		Skills:          rec.Skills,
		ExperienceYears: rec.ExperienceYears,
		Education:       rec.Education,
		Degraded:        rec.Degraded,
	})
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert candidate: %w", err)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal record: %w", err)
	}

	finish := p.JobsRepo.FinishClassified
	if rec.Degraded {
		finish = p.JobsRepo.FinishDegraded
	}
	if err := finish(ctx, job.ID, cand.ID, raw); err != nil {
		return job.ID, err
	}

	p.Logger.Info("candidate analyzed",
		"job_id", job.ID, "candidate_id", cand.ID,
		"name", rec.Name, "category", rec.Category,
		"degraded", rec.Degraded,
	)
	return job.ID, nil
}
