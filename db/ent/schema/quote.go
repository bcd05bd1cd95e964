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
	"github.com/aiphotoquote-dotcom/aiphotoquote/constants"
	"github.com/aiphotoquote-dotcom/aiphotoquote/db/ent/schema/utils"

	"github.com/google/uuid"
)

// Quote holds the customer-facing request the renders are attached to.
// The render_* columns are a denormalized "latest known state" projection of
// the most recent RenderJob, independent of job history.
type Quote struct{ ent.Schema }

func (Quote) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quotes"},
	}
}

func (Quote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("tenant_id", uuid.UUID{}),
		// customer input, written by the out-of-scope intake flow
		field.JSON("images", json.RawMessage{}).Optional(),
		field.String("customer_name").Optional(),
		field.String("customer_email").Optional(),
		field.Bool("render_opt_in").Default(false),
		// render projection, written only by the worker
		field.String("render_status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.RenderStatuses...)),
		field.String("render_image_url").Optional().Nillable(),
		field.String("render_prompt").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("render_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("rendered_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Quote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("render_jobs", RenderJob.Type),
	}
}

func (Quote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
	}
}
