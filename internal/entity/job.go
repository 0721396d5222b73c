package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Job represents a unit of work for data transfer between layers.
type Job struct {
	ID              uuid.UUID       `json:"id"`
	DocumentClassID *uuid.UUID      `json:"document_class_id,omitempty"`
	Filename        string          `json:"filename"`
	ContentType     string          `json:"content_type"`
	FileSize        int             `json:"file_size"`
	Status          string          `json:"status"`
	Result          json.RawMessage `json:"result,omitempty"`
	AuxText         *string         `json:"aux_text,omitempty"`
	Consent         string          `json:"consent"`
	CancelRequested bool            `json:"cancel_requested"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	FinishedAt      *time.Time      `json:"finished_at,omitempty"`
}
