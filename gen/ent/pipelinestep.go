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
	"github.com/medignis/docflow/gen/ent/documentclass"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
)

// PipelineStep is the model entity for the PipelineStep schema.
type PipelineStep struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentClassID holds the value of the "document_class_id" field.
	DocumentClassID *uuid.UUID `json:"document_class_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// IsBranching holds the value of the "is_branching" field.
	IsBranching bool `json:"is_branching,omitempty"`
	// BranchingField holds the value of the "branching_field" field.
	BranchingField string `json:"branching_field,omitempty"`
	// PostBranching holds the value of the "post_branching" field.
	PostBranching bool `json:"post_branching,omitempty"`
	// BranchLabels holds the value of the "branch_labels" field.
	BranchLabels []string `json:"branch_labels,omitempty"`
	// StopConditions holds the value of the "stop_conditions" field.
	StopConditions json.RawMessage `json:"stop_conditions,omitempty"`
	// OutputSchema holds the value of the "output_schema" field.
	OutputSchema json.RawMessage `json:"output_schema,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineStepQuery when eager-loading is set.
	Edges        PipelineStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineStepEdges holds the relations/edges for other nodes in the graph.
type PipelineStepEdges struct {
	// DocumentClass holds the value of the document_class edge.
	DocumentClass *DocumentClass `json:"document_class,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*StepExecution `json:"executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentClassOrErr returns the DocumentClass value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineStepEdges) DocumentClassOrErr() (*DocumentClass, error) {
	if e.DocumentClass != nil {
		return e.DocumentClass, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentclass.Label}
	}
	return nil, &NotLoadedError{edge: "document_class"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineStepEdges) ExecutionsOrErr() ([]*StepExecution, error) {
	if e.loadedTypes[1] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldDocumentClassID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case pipelinestep.FieldBranchLabels, pipelinestep.FieldStopConditions, pipelinestep.FieldOutputSchema:
			values[i] = new([]byte)
		case pipelinestep.FieldEnabled, pipelinestep.FieldIsBranching, pipelinestep.FieldPostBranching:
			values[i] = new(sql.NullBool)
		case pipelinestep.FieldStepOrder:
			values[i] = new(sql.NullInt64)
		case pipelinestep.FieldName, pipelinestep.FieldPrompt, pipelinestep.FieldBranchingField, pipelinestep.FieldModelName:
			values[i] = new(sql.NullString)
		case pipelinestep.FieldCreatedAt, pipelinestep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case pipelinestep.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineStep fields.
func (_m *PipelineStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pipelinestep.FieldDocumentClassID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field document_class_id", values[i])
			} else if value.Valid {
				_m.DocumentClassID = new(uuid.UUID)
				*_m.DocumentClassID = *value.S.(*uuid.UUID)
			}
		case pipelinestep.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pipelinestep.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case pipelinestep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case pipelinestep.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case pipelinestep.FieldIsBranching:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_branching", values[i])
			} else if value.Valid {
				_m.IsBranching = value.Bool
			}
		case pipelinestep.FieldBranchingField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branching_field", values[i])
			} else if value.Valid {
				_m.BranchingField = value.String
			}
		case pipelinestep.FieldPostBranching:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field post_branching", values[i])
			} else if value.Valid {
				_m.PostBranching = value.Bool
			}
		case pipelinestep.FieldBranchLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field branch_labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BranchLabels); err != nil {
					return fmt.Errorf("unmarshal field branch_labels: %w", err)
				}
			}
		case pipelinestep.FieldStopConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stop_conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StopConditions); err != nil {
					return fmt.Errorf("unmarshal field stop_conditions: %w", err)
				}
			}
		case pipelinestep.FieldOutputSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputSchema); err != nil {
					return fmt.Errorf("unmarshal field output_schema: %w", err)
				}
			}
		case pipelinestep.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case pipelinestep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinestep.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineStep.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocumentClass queries the "document_class" edge of the PipelineStep entity.
func (_m *PipelineStep) QueryDocumentClass() *DocumentClassQuery {
	return NewPipelineStepClient(_m.config).QueryDocumentClass(_m)
}

// QueryExecutions queries the "executions" edge of the PipelineStep entity.
func (_m *PipelineStep) QueryExecutions() *StepExecutionQuery {
	return NewPipelineStepClient(_m.config).QueryExecutions(_m)
}

// Update returns a builder for updating this PipelineStep.
// Note that you need to call PipelineStep.Unwrap() before calling this method if this PipelineStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineStep) Update() *PipelineStepUpdateOne {
	return NewPipelineStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineStep) Unwrap() *PipelineStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineStep) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.DocumentClassID; v != nil {
		builder.WriteString("document_class_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("is_branching=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBranching))
	builder.WriteString(", ")
	builder.WriteString("branching_field=")
	builder.WriteString(_m.BranchingField)
	builder.WriteString(", ")
	builder.WriteString("post_branching=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostBranching))
	builder.WriteString(", ")
	builder.WriteString("branch_labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchLabels))
	builder.WriteString(", ")
	builder.WriteString("stop_conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.StopConditions))
	builder.WriteString(", ")
	builder.WriteString("output_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputSchema))
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineSteps is a parsable slice of PipelineStep.
type PipelineSteps []*PipelineStep
