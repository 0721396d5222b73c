// Code generated by ent, DO NOT EDIT.

package pipelinestep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pipelinestep type in the database.
	Label = "pipeline_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentClassID holds the string denoting the document_class_id field in the database.
	FieldDocumentClassID = "document_class_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldIsBranching holds the string denoting the is_branching field in the database.
	FieldIsBranching = "is_branching"
	// FieldBranchingField holds the string denoting the branching_field field in the database.
	FieldBranchingField = "branching_field"
	// FieldPostBranching holds the string denoting the post_branching field in the database.
	FieldPostBranching = "post_branching"
	// FieldBranchLabels holds the string denoting the branch_labels field in the database.
	FieldBranchLabels = "branch_labels"
	// FieldStopConditions holds the string denoting the stop_conditions field in the database.
	FieldStopConditions = "stop_conditions"
	// FieldOutputSchema holds the string denoting the output_schema field in the database.
	FieldOutputSchema = "output_schema"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumentClass holds the string denoting the document_class edge name in mutations.
	EdgeDocumentClass = "document_class"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// Table holds the table name of the pipelinestep in the database.
	Table = "pipeline_steps"
	// DocumentClassTable is the table that holds the document_class relation/edge.
	DocumentClassTable = "pipeline_steps"
	// DocumentClassInverseTable is the table name for the DocumentClass entity.
	// It exists in this package in order to avoid circular dependency with the "documentclass" package.
	DocumentClassInverseTable = "document_classes"
	// DocumentClassColumn is the table column denoting the document_class relation/edge.
	DocumentClassColumn = "document_class_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "step_executions"
	// ExecutionsInverseTable is the table name for the StepExecution entity.
	// It exists in this package in order to avoid circular dependency with the "stepexecution" package.
	ExecutionsInverseTable = "step_executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "step_id"
)

// Columns holds all SQL columns for pipelinestep fields.
var Columns = []string{
	FieldID,
	FieldDocumentClassID,
	FieldName,
	FieldPrompt,
	FieldStepOrder,
	FieldEnabled,
	FieldIsBranching,
	FieldBranchingField,
	FieldPostBranching,
	FieldBranchLabels,
	FieldStopConditions,
	FieldOutputSchema,
	FieldModelName,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultIsBranching holds the default value on creation for the "is_branching" field.
	DefaultIsBranching bool
	// DefaultPostBranching holds the default value on creation for the "post_branching" field.
	DefaultPostBranching bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PipelineStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentClassID orders the results by the document_class_id field.
func ByDocumentClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentClassID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByIsBranching orders the results by the is_branching field.
func ByIsBranching(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBranching, opts...).ToFunc()
}

// ByBranchingField orders the results by the branching_field field.
func ByBranchingField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchingField, opts...).ToFunc()
}

// ByPostBranching orders the results by the post_branching field.
func ByPostBranching(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostBranching, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentClassField orders the results by document_class field.
func ByDocumentClassField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentClassStep(), sql.OrderByField(field, opts...))
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentClassStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentClassInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentClassTable, DocumentClassColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
