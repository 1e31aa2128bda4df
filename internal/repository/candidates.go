package repository

import (
	"context"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/gen/ent"
	entcand "github.com/hirestack/resume-intake/gen/ent/candidate"
	"github.com/hirestack/resume-intake/gen/ent/predicate"
	"github.com/hirestack/resume-intake/internal/entity"
	"github.com/hirestack/resume-intake/internal/utils"
)

// UpsertCandidateRequest wraps parameters for writing a candidate row.
type UpsertCandidateRequest struct {
	FileID          uuid.UUID
	CategoryID      uuid.UUID
	Name            string
	Email           string
	Phone           string
	Skills          []string
	ExperienceYears float64
	Education       string
	Degraded        bool
}

type CandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error)
	ListCandidates(ctx context.Context, categoryID *uuid.UUID, skill string, limit, offset int) ([]*entity.Candidate, error)
	UpsertForFile(ctx context.Context, req *UpsertCandidateRequest) (*entity.Candidate, error)
}

type candidateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCandidateRepository(client *ent.Client, logger *slog.Logger) CandidateRepository {
	return &candidateRepository{
		client: client,
		logger: logger,
	}
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error) {
	row, err := r.client.Candidate.Query().
		Where(entcand.ID(id)).
		WithCategory().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCandidate(row), nil
}

func (r *candidateRepository) ListCandidates(ctx context.Context, categoryID *uuid.UUID, skill string, limit, offset int) ([]*entity.Candidate, error) {
	q := r.client.Candidate.Query().WithCategory()
	if categoryID != nil {
		q = q.Where(entcand.CategoryID(*categoryID))
	}
	if skill = strings.ToLower(strings.TrimSpace(skill)); skill != "" {
		q = q.Where(predicate.Candidate(func(s *sql.Selector) {
			s.Where(sqljson.ValueContains(entcand.FieldSkills, skill))
		}))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(entcand.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list candidates", "error", err)
		return nil, err
	}

	result := make([]*entity.Candidate, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCandidate(row)
	}
	return result, nil
}

// UpsertForFile creates the candidate row for a file or, when the file was
// already processed, overwrites it with the fresh extraction.
func (r *candidateRepository) UpsertForFile(ctx context.Context, req *UpsertCandidateRequest) (*entity.Candidate, error) {
	existing, err := r.client.Candidate.Query().
		Where(entcand.FileID(req.FileID)).
		Only(ctx)
	if err == nil {
		row, uerr := existing.Update().
			SetCategoryID(req.CategoryID).
			SetName(req.Name).
			SetEmail(req.Email).
			SetPhone(req.Phone).
			SetSkills(req.Skills).
			SetExperienceYears(req.ExperienceYears).
			SetEducation(req.Education).
			SetDegraded(req.Degraded).
			Save(ctx)
		if uerr != nil {
			r.logger.Error("failed to update candidate", "file_id", req.FileID, "error", uerr)
			return nil, uerr
		}
		return utils.ToCandidate(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	row, err := r.client.Candidate.Create().
		SetFileID(req.FileID).
		SetCategoryID(req.CategoryID).
		SetName(req.Name).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetSkills(req.Skills).
		SetExperienceYears(req.ExperienceYears).
		SetEducation(req.Education).
		SetDegraded(req.Degraded).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create candidate", "file_id", req.FileID, "error", err)
		return nil, err
	}
	return utils.ToCandidate(row), nil
}
