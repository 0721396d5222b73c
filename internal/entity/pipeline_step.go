package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StopCondition is one predicate over a step's output. Conditions are
// evaluated in declared order; the first match halts the walk.
type StopCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value,omitempty"`
}

// PipelineStep represents a step definition for data transfer between layers.
type PipelineStep struct {
	ID              uuid.UUID       `json:"id"`
	DocumentClassID *uuid.UUID      `json:"document_class_id,omitempty"`
	Name            string          `json:"name"`
	Prompt          string          `json:"prompt"`
	Order           int             `json:"step_order"`
	Enabled         bool            `json:"enabled"`
	IsBranching     bool            `json:"is_branching"`
	BranchingField  string          `json:"branching_field,omitempty"`
	PostBranching   bool            `json:"post_branching"`
	BranchLabels    []string        `json:"branch_labels,omitempty"`
	StopConditions  []StopCondition `json:"stop_conditions,omitempty"`
	OutputSchema    json.RawMessage `json:"output_schema,omitempty"`
	ModelName       *string         `json:"model_name,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Universal reports whether the step applies regardless of classification.
func (s PipelineStep) Universal() bool {
	return s.DocumentClassID == nil
}
