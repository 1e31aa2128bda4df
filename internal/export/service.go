package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hirestack/resume-intake/gen/ent"
	"github.com/hirestack/resume-intake/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	ent            *ent.Client
	candidatesRepo repository.CandidateRepository
	filesRepo      repository.ResumeFileRepository
	logger         *slog.Logger
}

func NewService(entc *ent.Client, candidates repository.CandidateRepository, files repository.ResumeFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, candidatesRepo: candidates, filesRepo: files, logger: logger}
}

// ExportCandidatesXLSX returns an XLSX workbook (as bytes) with one row per
// candidate. Pass a categoryID to limit the export to one category; nil
// exports everything.
func (s *Service) ExportCandidatesXLSX(ctx context.Context, categoryID *uuid.UUID) ([]byte, error) {
	start := time.Now()

	cands, err := s.candidatesRepo.ListCandidates(ctx, categoryID, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Candidates"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Email",
		"Phone",
		"Category",
		"Experience (Years)",
		"Skills",
		"Education",
		"Resume Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range cands {
		filePath := ""
		if c.FileID != uuid.Nil {
			if fileRow, err := s.filesRepo.GetByID(ctx, c.FileID); err == nil && fileRow != nil {
				filePath = fileRow.SourcePath
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.Name)
		write(2, c.Email)
		write(3, c.Phone)
		write(4, c.CategoryName)
		write(5, c.ExperienceYears)
		write(6, strings.Join(c.Skills, ", "))
		write(7, truncate(c.Education, 140))
		write(8, filePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "B", 28) // email
	_ = f.SetColWidth(sheet, "C", "C", 18) // phone
	_ = f.SetColWidth(sheet, "D", "D", 22) // category
	_ = f.SetColWidth(sheet, "E", "E", 14) // experience
	_ = f.SetColWidth(sheet, "F", "F", 40) // skills
	_ = f.SetColWidth(sheet, "G", "G", 48) // education
	_ = f.SetColWidth(sheet, "H", "H", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("candidates export built",
		"rows", len(cands),
		"duration", time.Since(start),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
