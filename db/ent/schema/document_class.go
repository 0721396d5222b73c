package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type DocumentClass struct{ ent.Schema }

func (DocumentClass) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_classes"},
	}
}

func (DocumentClass) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.String("description").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (DocumentClass) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE class -> MANY scoped steps
		edge.To("steps", PipelineStep.Type),
		// ONE class -> MANY classified jobs
		edge.To("jobs", Job.Type),
	}
}
