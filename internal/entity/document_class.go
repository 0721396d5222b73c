package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentClass represents a classification target for data transfer between layers.
type DocumentClass struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
