// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentClassesColumns holds the columns for the "document_classes" table.
	DocumentClassesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentClassesTable holds the schema information for the "document_classes" table.
	DocumentClassesTable = &schema.Table{
		Name:       "document_classes",
		Columns:    DocumentClassesColumns,
		PrimaryKey: []*schema.Column{DocumentClassesColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "artifact", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "aux_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "consent", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_class_id", Type: field.TypeUUID, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_document_classes_jobs",
				Columns:    []*schema.Column{JobsColumns[14]},
				RefColumns: []*schema.Column{DocumentClassesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[11]},
			},
			{
				Name:    "job_document_class_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[14]},
			},
		},
	}
	// JobLeasesColumns holds the columns for the "job_leases" table.
	JobLeasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
		{Name: "holder", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// JobLeasesTable holds the schema information for the "job_leases" table.
	JobLeasesTable = &schema.Table{
		Name:       "job_leases",
		Columns:    JobLeasesColumns,
		PrimaryKey: []*schema.Column{JobLeasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "joblease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{JobLeasesColumns[4]},
			},
		},
	}
	// PipelineStepsColumns holds the columns for the "pipeline_steps" table.
	PipelineStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "is_branching", Type: field.TypeBool, Default: false},
		{Name: "branching_field", Type: field.TypeString, Nullable: true},
		{Name: "post_branching", Type: field.TypeBool, Default: false},
		{Name: "branch_labels", Type: field.TypeJSON, Nullable: true},
		{Name: "stop_conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "output_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_class_id", Type: field.TypeUUID, Nullable: true},
	}
	// PipelineStepsTable holds the schema information for the "pipeline_steps" table.
	PipelineStepsTable = &schema.Table{
		Name:       "pipeline_steps",
		Columns:    PipelineStepsColumns,
		PrimaryKey: []*schema.Column{PipelineStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_steps_document_classes_steps",
				Columns:    []*schema.Column{PipelineStepsColumns[14]},
				RefColumns: []*schema.Column{DocumentClassesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinestep_document_class_id_step_order",
				Unique:  true,
				Columns: []*schema.Column{PipelineStepsColumns[14], PipelineStepsColumns[3]},
			},
			{
				Name:    "pipelinestep_enabled_step_order",
				Unique:  false,
				Columns: []*schema.Column{PipelineStepsColumns[4], PipelineStepsColumns[3]},
			},
		},
	}
	// StepExecutionsColumns holds the columns for the "step_executions" table.
	StepExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "step_name", Type: field.TypeString},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "step_id", Type: field.TypeUUID},
	}
	// StepExecutionsTable holds the schema information for the "step_executions" table.
	StepExecutionsTable = &schema.Table{
		Name:       "step_executions",
		Columns:    StepExecutionsColumns,
		PrimaryKey: []*schema.Column{StepExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_executions_jobs_executions",
				Columns:    []*schema.Column{StepExecutionsColumns[7]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "step_executions_pipeline_steps_executions",
				Columns:    []*schema.Column{StepExecutionsColumns[8]},
				RefColumns: []*schema.Column{PipelineStepsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepexecution_job_id_position",
				Unique:  true,
				Columns: []*schema.Column{StepExecutionsColumns[7], StepExecutionsColumns[1]},
			},
			{
				Name:    "stepexecution_step_id",
				Unique:  false,
				Columns: []*schema.Column{StepExecutionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentClassesTable,
		JobsTable,
		JobLeasesTable,
		PipelineStepsTable,
		StepExecutionsTable,
	}
)

func init() {
	DocumentClassesTable.Annotation = &entsql.Annotation{
		Table: "document_classes",
	}
	JobsTable.ForeignKeys[0].RefTable = DocumentClassesTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobLeasesTable.Annotation = &entsql.Annotation{
		Table: "job_leases",
	}
	PipelineStepsTable.ForeignKeys[0].RefTable = DocumentClassesTable
	PipelineStepsTable.Annotation = &entsql.Annotation{
		Table: "pipeline_steps",
	}
	StepExecutionsTable.ForeignKeys[0].RefTable = JobsTable
	StepExecutionsTable.ForeignKeys[1].RefTable = PipelineStepsTable
	StepExecutionsTable.Annotation = &entsql.Annotation{
		Table: "step_executions",
	}
}
