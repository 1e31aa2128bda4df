package entity

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents an extracted candidate profile for data transfer between layers.
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	FileID          uuid.UUID `json:"file_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Skills          []string  `json:"skills"`
	ExperienceYears float64   `json:"experience_years"`
	Education       string    `json:"education,omitempty"`
	CategoryName    string    `json:"category_name"`
	Degraded        bool      `json:"degraded"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
