// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/documentclass"
)

// DocumentClass is the model entity for the DocumentClass schema.
type DocumentClass struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentClassQuery when eager-loading is set.
	Edges        DocumentClassEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentClassEdges holds the relations/edges for other nodes in the graph.
type DocumentClassEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*PipelineStep `json:"steps,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentClassEdges) StepsOrErr() ([]*PipelineStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentClassEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentClass) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentclass.FieldName, documentclass.FieldDescription:
			values[i] = new(sql.NullString)
		case documentclass.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case documentclass.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentClass fields.
func (_m *DocumentClass) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentclass.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentclass.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case documentclass.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case documentclass.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentClass.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentClass) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the DocumentClass entity.
func (_m *DocumentClass) QuerySteps() *PipelineStepQuery {
	return NewDocumentClassClient(_m.config).QuerySteps(_m)
}

// QueryJobs queries the "jobs" edge of the DocumentClass entity.
func (_m *DocumentClass) QueryJobs() *JobQuery {
	return NewDocumentClassClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this DocumentClass.
// Note that you need to call DocumentClass.Unwrap() before calling this method if this DocumentClass
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentClass) Update() *DocumentClassUpdateOne {
	return NewDocumentClassClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentClass entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentClass) Unwrap() *DocumentClass {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentClass is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentClass) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentClass(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentClasses is a parsable slice of DocumentClass.
type DocumentClasses []*DocumentClass
