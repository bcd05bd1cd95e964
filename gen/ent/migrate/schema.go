// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuotesColumns holds the columns for the "quotes" table.
	QuotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "images", Type: field.TypeJSON, Nullable: true},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_email", Type: field.TypeString, Nullable: true},
		{Name: "render_opt_in", Type: field.TypeBool, Default: false},
		{Name: "render_status", Type: field.TypeString, Nullable: true},
		{Name: "render_image_url", Type: field.TypeString, Nullable: true},
		{Name: "render_prompt", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "render_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "rendered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuotesTable holds the schema information for the "quotes" table.
	QuotesTable = &schema.Table{
		Name:       "quotes",
		Columns:    QuotesColumns,
		PrimaryKey: []*schema.Column{QuotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quote_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[1], QuotesColumns[11]},
			},
		},
	}
	// RenderJobsColumns holds the columns for the "render_jobs" table.
	RenderJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "quote_id", Type: field.TypeUUID},
	}
	// RenderJobsTable holds the schema information for the "render_jobs" table.
	RenderJobsTable = &schema.Table{
		Name:       "render_jobs",
		Columns:    RenderJobsColumns,
		PrimaryKey: []*schema.Column{RenderJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "render_jobs_quotes_render_jobs",
				Columns:    []*schema.Column{RenderJobsColumns[8]},
				RefColumns: []*schema.Column{QuotesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "renderjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RenderJobsColumns[2], RenderJobsColumns[4]},
			},
			{
				Name:    "renderjob_tenant_id_status_finished_at",
				Unique:  false,
				Columns: []*schema.Column{RenderJobsColumns[1], RenderJobsColumns[2], RenderJobsColumns[6]},
			},
			{
				Name:    "renderjob_quote_id",
				Unique:  false,
				Columns: []*schema.Column{RenderJobsColumns[8]},
			},
		},
	}
	// TenantCredentialsColumns holds the columns for the "tenant_credentials" table.
	TenantCredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID, Unique: true},
		{Name: "encrypted_api_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantCredentialsTable holds the schema information for the "tenant_credentials" table.
	TenantCredentialsTable = &schema.Table{
		Name:       "tenant_credentials",
		Columns:    TenantCredentialsColumns,
		PrimaryKey: []*schema.Column{TenantCredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenantcredential_tenant_id",
				Unique:  true,
				Columns: []*schema.Column{TenantCredentialsColumns[1]},
			},
		},
	}
	// TenantRenderConfigsColumns holds the columns for the "tenant_render_configs" table.
	TenantRenderConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID, Unique: true},
		{Name: "plan_tier", Type: field.TypeString, Default: "tier0"},
		{Name: "grace_credits_total", Type: field.TypeInt, Default: 0},
		{Name: "grace_credits_used", Type: field.TypeInt, Default: 0},
		{Name: "rendering_enabled", Type: field.TypeBool, Nullable: true},
		{Name: "legacy_ai_enabled", Type: field.TypeBool, Nullable: true},
		{Name: "rendering_max_per_day", Type: field.TypeInt, Default: 0},
		{Name: "style_preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "industry_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantRenderConfigsTable holds the schema information for the "tenant_render_configs" table.
	TenantRenderConfigsTable = &schema.Table{
		Name:       "tenant_render_configs",
		Columns:    TenantRenderConfigsColumns,
		PrimaryKey: []*schema.Column{TenantRenderConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenantrenderconfig_tenant_id",
				Unique:  true,
				Columns: []*schema.Column{TenantRenderConfigsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuotesTable,
		RenderJobsTable,
		TenantCredentialsTable,
		TenantRenderConfigsTable,
	}
)

func init() {
	QuotesTable.Annotation = &entsql.Annotation{
		Table: "quotes",
	}
	RenderJobsTable.ForeignKeys[0].RefTable = QuotesTable
	RenderJobsTable.Annotation = &entsql.Annotation{
		Table: "render_jobs",
	}
	TenantCredentialsTable.Annotation = &entsql.Annotation{
		Table: "tenant_credentials",
	}
	TenantRenderConfigsTable.Annotation = &entsql.Annotation{
		Table: "tenant_render_configs",
	}
}
