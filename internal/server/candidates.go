package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/internal/repository"
	"github.com/hirestack/resume-intake/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	resumespb "github.com/hirestack/resume-intake/gen/proto/resumes/v1"
)

type CandidatesService struct {
	resumespb.UnimplementedCandidatesServiceServer
	candidatesRepo repository.CandidateRepository
	categoriesRepo repository.CategoryRepository
	logger         *slog.Logger
}

func NewCandidatesService(candidates repository.CandidateRepository, categories repository.CategoryRepository, logger *slog.Logger) *CandidatesService {
	return &CandidatesService{
		candidatesRepo: candidates,
		categoriesRepo: categories,
		logger:         logger,
	}
}

func (s *CandidatesService) GetCandidate(ctx context.Context, req *resumespb.GetCandidateRequest) (*resumespb.GetCandidateResponse, error) {
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	candidateID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("invalid candidate id format", "id", id, "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	cand, err := s.candidatesRepo.GetByID(ctx, candidateID)
	if err != nil {
		s.logger.Error("failed to get candidate", "id", candidateID, "error", err)
		return nil, status.Error(codes.NotFound, "candidate not found")
	}
	return &resumespb.GetCandidateResponse{Candidate: utils.ToPBCandidate(cand)}, nil
}

func (s *CandidatesService) ListCandidates(ctx context.Context, req *resumespb.ListCandidatesRequest) (*resumespb.ListCandidatesResponse, error) {
	var categoryID *uuid.UUID
	if cid := strings.TrimSpace(req.GetCategoryId()); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			s.logger.Error("invalid category_id format", "category_id", cid, "error", err)
			return nil, status.Error(codes.InvalidArgument, "category_id must be a UUID")
		}
		categoryID = &id
	}

	s.logger.Info("listing candidates", "category_id", categoryID, "skill", req.GetSkill(), "limit", req.GetLimit(), "offset", req.GetOffset())
	cands, err := s.candidatesRepo.ListCandidates(ctx, categoryID, req.GetSkill(), int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list candidates", "error", err)
		return nil, status.Error(codes.Internal, "failed to list candidates")
	}

	out := &resumespb.ListCandidatesResponse{
		Candidates: make([]*resumespb.Candidate, 0, len(cands)),
	}
	for _, c := range cands {
		out.Candidates = append(out.Candidates, utils.ToPBCandidate(c))
	}
	return out, nil
}

func (s *CandidatesService) ListCategories(ctx context.Context, _ *resumespb.ListCategoriesRequest) (*resumespb.ListCategoriesResponse, error) {
	cats, err := s.categoriesRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, status.Error(codes.Internal, "failed to list categories")
	}

	out := &resumespb.ListCategoriesResponse{
		Categories: make([]*resumespb.Category, 0, len(cats)),
	}
	for _, c := range cats {
		out.Categories = append(out.Categories, utils.ToPBCategory(c))
	}
	return out, nil
}
