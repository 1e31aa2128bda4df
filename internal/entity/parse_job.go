package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseJob represents one pipeline run over a file for data transfer between layers.
type ParseJob struct {
	ID           uuid.UUID       `json:"id"`
	FileID       uuid.UUID       `json:"file_id"`
	CandidateID  *uuid.UUID      `json:"candidate_id,omitempty"`
	Format       string          `json:"format"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
	Status       *string         `json:"status,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Method       *string         `json:"method,omitempty"`
	RawText      *string         `json:"raw_text,omitempty"`
	RecordJSON   json.RawMessage `json:"record_json,omitempty"`
}
