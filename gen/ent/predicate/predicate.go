// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DocumentClass is the predicate function for documentclass builders.
type DocumentClass func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobLease is the predicate function for joblease builders.
type JobLease func(*sql.Selector)

// PipelineStep is the predicate function for pipelinestep builders.
type PipelineStep func(*sql.Selector)

// StepExecution is the predicate function for stepexecution builders.
type StepExecution func(*sql.Selector)
