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

// StepExecution rows are append-only: the repository exposes no update or
// delete path, corrections get a new row referencing the original.
type StepExecution struct{ ent.Schema }

func (StepExecution) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "step_executions"},
	}
}

func (StepExecution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("job_id", uuid.UUID{}),
		field.UUID("step_id", uuid.UUID{}),
		field.Int("position").NonNegative(),
		field.String("step_name").NotEmpty(),
		field.String("output_summary").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Default(time.Now).Immutable(),
	}
}

func (StepExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("executions").
			Field("job_id").
			Unique().
			Required(),
		edge.From("step", PipelineStep.Type).
			Ref("executions").
			Field("step_id").
			Unique().
			Required(),
	}
}

func (StepExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "position").Unique(),
		index.Fields("step_id"),
	}
}
