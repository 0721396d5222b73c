package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type PipelineStep struct{ ent.Schema }

func (PipelineStep) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pipeline_steps"},
	}
}

func (PipelineStep) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK; NULL means the step is universal
		field.UUID("document_class_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").NotEmpty(),
		field.String("prompt").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("step_order"),
		field.Bool("enabled").Default(true),
		field.Bool("is_branching").Default(false),
		field.String("branching_field").Optional(),
		field.Bool("post_branching").Default(false),
		// closed enum of labels a non-class branch may emit
		field.JSON("branch_labels", []string{}).Optional(),
		field.JSON("stop_conditions", json.RawMessage{}).Optional(),
		field.JSON("output_schema", json.RawMessage{}).Optional(),
		field.String("model_name").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PipelineStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document_class", DocumentClass.Type).
			Ref("steps").
			Field("document_class_id").
			Unique(),
		edge.To("executions", StepExecution.Type),
	}
}

func (PipelineStep) Indexes() []ent.Index {
	return []ent.Index{
		// Postgres treats NULLs as distinct, so universal steps are only
		// guarded by the repository-level order check.
		index.Fields("document_class_id", "step_order").Unique(),
		index.Fields("enabled", "step_order"),
	}
}
