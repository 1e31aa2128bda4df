package utils

import (
	"time"

	"github.com/hirestack/resume-intake/gen/ent"
	resumespb "github.com/hirestack/resume-intake/gen/proto/resumes/v1"
	"github.com/hirestack/resume-intake/internal/entity"
)

// ToCandidate converts an ent row to the transfer type. The category edge
// must be loaded when the caller wants CategoryName filled.
func ToCandidate(e *ent.Candidate) *entity.Candidate {
	c := &entity.Candidate{
		ID:              e.ID,
		FileID:          e.FileID,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		Skills:          e.Skills,
		ExperienceYears: e.ExperienceYears,
		Education:       e.Education,
		Degraded:        e.Degraded,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Edges.Category != nil {
		c.CategoryName = e.Edges.Category.Name
	}
	return c
}

func ToCategory(e *ent.Category) *entity.Category {
	return &entity.Category{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Keywords:    e.Keywords,
	}
}

func ToResumeFile(e *ent.ResumeFile) *entity.ResumeFile {
	return &entity.ResumeFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToPBCandidate(c *entity.Candidate) *resumespb.Candidate {
	return &resumespb.Candidate{
		Id:              c.ID.String(),
		FileId:          c.FileID.String(),
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Skills:          c.Skills,
		ExperienceYears: c.ExperienceYears,
		Education:       c.Education,
		Category:        c.CategoryName,
		Degraded:        c.Degraded,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCategory(c *entity.Category) *resumespb.Category {
	return &resumespb.Category{
		Id:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Keywords:    c.Keywords,
	}
}
