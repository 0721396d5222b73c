// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/job"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

// StepExecution is the model entity for the StepExecution schema.
type StepExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID uuid.UUID `json:"step_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// OutputSummary holds the value of the "output_summary" field.
	OutputSummary string `json:"output_summary,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata json.RawMessage `json:"metadata,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepExecutionQuery when eager-loading is set.
	Edges        StepExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepExecutionEdges holds the relations/edges for other nodes in the graph.
type StepExecutionEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Step holds the value of the step edge.
	Step *PipelineStep `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepExecutionEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepExecutionEdges) StepOrErr() (*PipelineStep, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: pipelinestep.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepexecution.FieldMetadata:
			values[i] = new([]byte)
		case stepexecution.FieldPosition:
			values[i] = new(sql.NullInt64)
		case stepexecution.FieldStepName, stepexecution.FieldOutputSummary:
			values[i] = new(sql.NullString)
		case stepexecution.FieldStartedAt, stepexecution.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case stepexecution.FieldID, stepexecution.FieldJobID, stepexecution.FieldStepID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepExecution fields.
func (_m *StepExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepexecution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stepexecution.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case stepexecution.FieldStepID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value != nil {
				_m.StepID = *value
			}
		case stepexecution.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case stepexecution.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case stepexecution.FieldOutputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_summary", values[i])
			} else if value.Valid {
				_m.OutputSummary = value.String
			}
		case stepexecution.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case stepexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case stepexecution.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepExecution.
// This includes values selected through modifiers, order, etc.
func (_m *StepExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the StepExecution entity.
func (_m *StepExecution) QueryJob() *JobQuery {
	return NewStepExecutionClient(_m.config).QueryJob(_m)
}

// QueryStep queries the "step" edge of the StepExecution entity.
func (_m *StepExecution) QueryStep() *PipelineStepQuery {
	return NewStepExecutionClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this StepExecution.
// Note that you need to call StepExecution.Unwrap() before calling this method if this StepExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepExecution) Update() *StepExecutionUpdateOne {
	return NewStepExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepExecution) Unwrap() *StepExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepExecution) String() string {
	var builder strings.Builder
	builder.WriteString("StepExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("output_summary=")
	builder.WriteString(_m.OutputSummary)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StepExecutions is a parsable slice of StepExecution.
type StepExecutions []*StepExecution
