// Code generated by ent, DO NOT EDIT.

package tenantrenderconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tenantrenderconfig type in the database.
	Label = "tenant_render_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPlanTier holds the string denoting the plan_tier field in the database.
	FieldPlanTier = "plan_tier"
	// FieldGraceCreditsTotal holds the string denoting the grace_credits_total field in the database.
	FieldGraceCreditsTotal = "grace_credits_total"
	// FieldGraceCreditsUsed holds the string denoting the grace_credits_used field in the database.
	FieldGraceCreditsUsed = "grace_credits_used"
	// FieldRenderingEnabled holds the string denoting the rendering_enabled field in the database.
	FieldRenderingEnabled = "rendering_enabled"
	// FieldLegacyAiEnabled holds the string denoting the legacy_ai_enabled field in the database.
	FieldLegacyAiEnabled = "legacy_ai_enabled"
	// FieldRenderingMaxPerDay holds the string denoting the rendering_max_per_day field in the database.
	FieldRenderingMaxPerDay = "rendering_max_per_day"
	// FieldStylePreferences holds the string denoting the style_preferences field in the database.
	FieldStylePreferences = "style_preferences"
	// FieldIndustryKey holds the string denoting the industry_key field in the database.
	FieldIndustryKey = "industry_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tenantrenderconfig in the database.
	Table = "tenant_render_configs"
)

// Columns holds all SQL columns for tenantrenderconfig fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPlanTier,
	FieldGraceCreditsTotal,
	FieldGraceCreditsUsed,
	FieldRenderingEnabled,
	FieldLegacyAiEnabled,
	FieldRenderingMaxPerDay,
	FieldStylePreferences,
	FieldIndustryKey,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPlanTier holds the default value on creation for the "plan_tier" field.
	DefaultPlanTier string
	// DefaultGraceCreditsTotal holds the default value on creation for the "grace_credits_total" field.
	DefaultGraceCreditsTotal int
	// GraceCreditsTotalValidator is a validator for the "grace_credits_total" field. It is called by the builders before save.
	GraceCreditsTotalValidator func(int) error
	// DefaultGraceCreditsUsed holds the default value on creation for the "grace_credits_used" field.
	DefaultGraceCreditsUsed int
	// GraceCreditsUsedValidator is a validator for the "grace_credits_used" field. It is called by the builders before save.
	GraceCreditsUsedValidator func(int) error
	// DefaultRenderingMaxPerDay holds the default value on creation for the "rendering_max_per_day" field.
	DefaultRenderingMaxPerDay int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TenantRenderConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByPlanTier orders the results by the plan_tier field.
func ByPlanTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanTier, opts...).ToFunc()
}

// ByGraceCreditsTotal orders the results by the grace_credits_total field.
func ByGraceCreditsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraceCreditsTotal, opts...).ToFunc()
}

// ByGraceCreditsUsed orders the results by the grace_credits_used field.
func ByGraceCreditsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraceCreditsUsed, opts...).ToFunc()
}

// ByRenderingEnabled orders the results by the rendering_enabled field.
func ByRenderingEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderingEnabled, opts...).ToFunc()
}

// ByLegacyAiEnabled orders the results by the legacy_ai_enabled field.
func ByLegacyAiEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyAiEnabled, opts...).ToFunc()
}

// ByRenderingMaxPerDay orders the results by the rendering_max_per_day field.
func ByRenderingMaxPerDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderingMaxPerDay, opts...).ToFunc()
}

// ByIndustryKey orders the results by the industry_key field.
func ByIndustryKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustryKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
