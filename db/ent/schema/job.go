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
	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/db/ent/schema/utils"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_class_id", uuid.UUID{}).Optional().Nillable(),
		field.String("filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Bytes("artifact").
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").Default(string(constants.JobStatusUploaded)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("aux_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("consent").Default(string(constants.ConsentUnknown)).
			Validate(utils.EnumValidator(constants.Consents...)),
		field.Bool("cancel_requested").Default(false),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document_class", DocumentClass.Type).
			Ref("jobs").
			Field("document_class_id").
			Unique(),
		// ONE job -> MANY executions, removed with the job
		edge.To("executions", StepExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("document_class_id"),
	}
}
