package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// MetadataVersion tags the audit metadata schema so reporting queries can
// evolve without guessing at blob shapes.
const MetadataVersion = 1

// BranchMetadata records the routing decision a branching step produced.
type BranchMetadata struct {
	Kind    string     `json:"kind"`
	Field   string     `json:"field"`
	Label   string     `json:"label"`
	ClassID *uuid.UUID `json:"class_id,omitempty"`
}

// StopMetadata records which stop condition matched.
type StopMetadata struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value,omitempty"`
	Reason   string `json:"reason"`
}

// FailureMetadata records a failed capability invocation.
type FailureMetadata struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ExecutionMetadata is the structured metadata attached to a StepExecution.
type ExecutionMetadata struct {
	Version      int              `json:"version"`
	FallbackUsed bool             `json:"fallback_used,omitempty"`
	TokensUsed   int              `json:"tokens_used,omitempty"`
	Branch       *BranchMetadata  `json:"branch,omitempty"`
	Stop         *StopMetadata    `json:"stop,omitempty"`
	Failure      *FailureMetadata `json:"failure,omitempty"`
}

// Encode serializes the metadata for the audit row, stamping the current
// schema version.
func (m ExecutionMetadata) Encode() (json.RawMessage, error) {
	m.Version = MetadataVersion
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode execution metadata: %w", err)
	}
	return raw, nil
}

// DecodeMetadata parses an audit row blob back into its structured form.
func DecodeMetadata(raw json.RawMessage) (ExecutionMetadata, error) {
	var m ExecutionMetadata
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("decode execution metadata: %w", err)
	}
	return m, nil
}
