package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TenantRenderConfig is the per-tenant override layer of the render policy
// plus the grace-credit ledger. One row per tenant.
type TenantRenderConfig struct{ ent.Schema }

func (TenantRenderConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tenant_render_configs"},
	}
}

func (TenantRenderConfig) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("tenant_id", uuid.UUID{}).Unique(),
		field.String("plan_tier").Default("tier0"),
		field.Int("grace_credits_total").Default(0).NonNegative(),
		field.Int("grace_credits_used").Default(0).NonNegative(),
		// primary enablement flag; nil means "not decided at this layer"
		field.Bool("rendering_enabled").Optional().Nillable(),
		// pre-migration flag some tenants still carry
		field.Bool("legacy_ai_enabled").Optional().Nillable(),
		field.Int("rendering_max_per_day").Default(0),
		// partial style layer: model_id, style_preset, negative_guidance, prompt_preamble
		field.JSON("style_preferences", json.RawMessage{}).Optional(),
		field.String("industry_key").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TenantRenderConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id").Unique(),
	}
}
