package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/internal/export"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/hirestack/resume-intake/gen/proto/resumes/v1"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportCandidates(ctx context.Context, req *v1.ExportCandidatesRequest) (*v1.ExportCandidatesResponse, error) {
	var categoryID *uuid.UUID
	if cid := strings.TrimSpace(req.GetCategoryId()); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "category_id must be a UUID")
		}
		categoryID = &id
	}

	xlsx, err := s.svc.ExportCandidatesXLSX(ctx, categoryID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	filename := "candidates_export_" + time.Now().UTC().Format("20060102") + ".xlsx"
	return &v1.ExportCandidatesResponse{Xlsx: xlsx, Filename: filename}, nil
}
