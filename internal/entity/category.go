package entity

import "github.com/google/uuid"

// Category represents a candidate category for data transfer between layers.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Keywords    string    `json:"keywords,omitempty"`
}
