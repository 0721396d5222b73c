package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// JobLease guarantees at most one active walk per job. The row is keyed by
// job_id; takeover is only legal once expires_at has passed.
type JobLease struct{ ent.Schema }

func (JobLease) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_leases"},
	}
}

func (JobLease) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Unique(),
		field.String("holder").NotEmpty(),
		field.Time("acquired_at").Default(time.Now),
		field.Time("expires_at"),
	}
}

func (JobLease) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
