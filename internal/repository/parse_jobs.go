package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/gen/ent"
	entjob "github.com/hirestack/resume-intake/gen/ent/parsejob"
)

type ParseJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ParseJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, *ent.ResumeFile, error)
	FinishText(ctx context.Context, jobID uuid.UUID, rawText, method string) error
	FinishClassified(ctx context.Context, jobID, candidateID uuid.UUID, record json.RawMessage) error
	FinishDegraded(ctx context.Context, jobID, candidateID uuid.UUID, record json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *parseJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, *ent.ResumeFile, error) {
	job, err := r.ent.ParseJob.Query().
		Where(entjob.ID(jobID)).
		WithFile().
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}
	return job, job.Edges.File, nil
}

func (r *parseJobRepo) FinishText(ctx context.Context, jobID uuid.UUID, rawText, method string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetRawText(rawText).
		SetMethod(method).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job text extracted", "job_id", jobID, "method", method)
	return nil
}

func (r *parseJobRepo) FinishClassified(ctx context.Context, jobID, candidateID uuid.UUID, record json.RawMessage) error {
	return r.finish(ctx, jobID, candidateID, record, constants.JobStatusClassified)
}

func (r *parseJobRepo) FinishDegraded(ctx context.Context, jobID, candidateID uuid.UUID, record json.RawMessage) error {
	return r.finish(ctx, jobID, candidateID, record, constants.JobStatusDegraded)
}

func (r *parseJobRepo) finish(ctx context.Context, jobID, candidateID uuid.UUID, record json.RawMessage, status constants.JobStatus) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetCandidateID(candidateID).
		SetRecordJSON(record).
		SetFinishedAt(time.Now()).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish failed", "job_id", jobID, "status", status, "err", err)
		return err
	}
	r.log.Info("parse_job finished", "job_id", jobID, "status", status)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
