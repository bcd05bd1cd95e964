package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/db/ent/schema/utils"

	"github.com/google/uuid"
)

// RenderJob is one attempt at rendering a quote. Rows are append-only and
// never deleted; a retry is a new row, not a reset of this one.
type RenderJob struct{ ent.Schema }

func (RenderJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "render_jobs"},
	}
}

func (RenderJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("tenant_id", uuid.UUID{}),
		field.UUID("quote_id", uuid.UUID{}),
		field.String("status").Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("prompt").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (RenderJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("quote", Quote.Type).
			Ref("render_jobs").
			Field("quote_id").
			Unique().
			Required(),
	}
}

func (RenderJob) Indexes() []ent.Index {
	return []ent.Index{
		// claim scan: queued/stale-running ordered oldest first
		index.Fields("status", "created_at"),
		// quota count: done jobs per tenant per day
		index.Fields("tenant_id", "status", "finished_at"),
		index.Fields("quote_id"),
	}
}
