// Code generated by ent, DO NOT EDIT.

package tenantrenderconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldTenantID, v))
}

// PlanTier applies equality check predicate on the "plan_tier" field. It's identical to PlanTierEQ.
func PlanTier(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldPlanTier, v))
}

// GraceCreditsTotal applies equality check predicate on the "grace_credits_total" field. It's identical to GraceCreditsTotalEQ.
func GraceCreditsTotal(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldGraceCreditsTotal, v))
}

// GraceCreditsUsed applies equality check predicate on the "grace_credits_used" field. It's identical to GraceCreditsUsedEQ.
func GraceCreditsUsed(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldGraceCreditsUsed, v))
}

// RenderingEnabled applies equality check predicate on the "rendering_enabled" field. It's identical to RenderingEnabledEQ.
func RenderingEnabled(v bool) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldRenderingEnabled, v))
}

// LegacyAiEnabled applies equality check predicate on the "legacy_ai_enabled" field. It's identical to LegacyAiEnabledEQ.
func LegacyAiEnabled(v bool) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldLegacyAiEnabled, v))
}

// RenderingMaxPerDay applies equality check predicate on the "rendering_max_per_day" field. It's identical to RenderingMaxPerDayEQ.
func RenderingMaxPerDay(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldRenderingMaxPerDay, v))
}

// IndustryKey applies equality check predicate on the "industry_key" field. It's identical to IndustryKeyEQ.
func IndustryKey(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldIndustryKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldTenantID, v))
}

// PlanTierEQ applies the EQ predicate on the "plan_tier" field.
func PlanTierEQ(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldPlanTier, v))
}

// PlanTierNEQ applies the NEQ predicate on the "plan_tier" field.
func PlanTierNEQ(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldPlanTier, v))
}

// PlanTierIn applies the In predicate on the "plan_tier" field.
func PlanTierIn(vs ...string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldPlanTier, vs...))
}

// PlanTierNotIn applies the NotIn predicate on the "plan_tier" field.
func PlanTierNotIn(vs ...string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldPlanTier, vs...))
}

// PlanTierGT applies the GT predicate on the "plan_tier" field.
func PlanTierGT(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldPlanTier, v))
}

// PlanTierGTE applies the GTE predicate on the "plan_tier" field.
func PlanTierGTE(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldPlanTier, v))
}

// PlanTierLT applies the LT predicate on the "plan_tier" field.
func PlanTierLT(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldPlanTier, v))
}

// PlanTierLTE applies the LTE predicate on the "plan_tier" field.
func PlanTierLTE(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldPlanTier, v))
}

// PlanTierContains applies the Contains predicate on the "plan_tier" field.
func PlanTierContains(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldContains(FieldPlanTier, v))
}

// PlanTierHasPrefix applies the HasPrefix predicate on the "plan_tier" field.
func PlanTierHasPrefix(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldHasPrefix(FieldPlanTier, v))
}

// PlanTierHasSuffix applies the HasSuffix predicate on the "plan_tier" field.
func PlanTierHasSuffix(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldHasSuffix(FieldPlanTier, v))
}

// PlanTierEqualFold applies the EqualFold predicate on the "plan_tier" field.
func PlanTierEqualFold(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEqualFold(FieldPlanTier, v))
}

// PlanTierContainsFold applies the ContainsFold predicate on the "plan_tier" field.
func PlanTierContainsFold(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldContainsFold(FieldPlanTier, v))
}

// GraceCreditsTotalEQ applies the EQ predicate on the "grace_credits_total" field.
func GraceCreditsTotalEQ(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldGraceCreditsTotal, v))
}

// GraceCreditsTotalNEQ applies the NEQ predicate on the "grace_credits_total" field.
func GraceCreditsTotalNEQ(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldGraceCreditsTotal, v))
}

// GraceCreditsTotalIn applies the In predicate on the "grace_credits_total" field.
func GraceCreditsTotalIn(vs ...int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldGraceCreditsTotal, vs...))
}

// GraceCreditsTotalNotIn applies the NotIn predicate on the "grace_credits_total" field.
func GraceCreditsTotalNotIn(vs ...int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldGraceCreditsTotal, vs...))
}

// GraceCreditsTotalGT applies the GT predicate on the "grace_credits_total" field.
func GraceCreditsTotalGT(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldGraceCreditsTotal, v))
}

// GraceCreditsTotalGTE applies the GTE predicate on the "grace_credits_total" field.
func GraceCreditsTotalGTE(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldGraceCreditsTotal, v))
}

// GraceCreditsTotalLT applies the LT predicate on the "grace_credits_total" field.
func GraceCreditsTotalLT(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldGraceCreditsTotal, v))
}

// GraceCreditsTotalLTE applies the LTE predicate on the "grace_credits_total" field.
func GraceCreditsTotalLTE(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldGraceCreditsTotal, v))
}

// GraceCreditsUsedEQ applies the EQ predicate on the "grace_credits_used" field.
func GraceCreditsUsedEQ(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldGraceCreditsUsed, v))
}

// GraceCreditsUsedNEQ applies the NEQ predicate on the "grace_credits_used" field.
func GraceCreditsUsedNEQ(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldGraceCreditsUsed, v))
}

// GraceCreditsUsedIn applies the In predicate on the "grace_credits_used" field.
func GraceCreditsUsedIn(vs ...int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldGraceCreditsUsed, vs...))
}

// GraceCreditsUsedNotIn applies the NotIn predicate on the "grace_credits_used" field.
func GraceCreditsUsedNotIn(vs ...int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldGraceCreditsUsed, vs...))
}

// GraceCreditsUsedGT applies the GT predicate on the "grace_credits_used" field.
func GraceCreditsUsedGT(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldGraceCreditsUsed, v))
}

// GraceCreditsUsedGTE applies the GTE predicate on the "grace_credits_used" field.
func GraceCreditsUsedGTE(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldGraceCreditsUsed, v))
}

// GraceCreditsUsedLT applies the LT predicate on the "grace_credits_used" field.
func GraceCreditsUsedLT(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldGraceCreditsUsed, v))
}

// GraceCreditsUsedLTE applies the LTE predicate on the "grace_credits_used" field.
func GraceCreditsUsedLTE(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldGraceCreditsUsed, v))
}

// RenderingEnabledEQ applies the EQ predicate on the "rendering_enabled" field.
func RenderingEnabledEQ(v bool) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldRenderingEnabled, v))
}

// RenderingEnabledNEQ applies the NEQ predicate on the "rendering_enabled" field.
func RenderingEnabledNEQ(v bool) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldRenderingEnabled, v))
}

// RenderingEnabledIsNil applies the IsNil predicate on the "rendering_enabled" field.
func RenderingEnabledIsNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIsNull(FieldRenderingEnabled))
}

// RenderingEnabledNotNil applies the NotNil predicate on the "rendering_enabled" field.
func RenderingEnabledNotNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotNull(FieldRenderingEnabled))
}

// LegacyAiEnabledEQ applies the EQ predicate on the "legacy_ai_enabled" field.
func LegacyAiEnabledEQ(v bool) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldLegacyAiEnabled, v))
}

// LegacyAiEnabledNEQ applies the NEQ predicate on the "legacy_ai_enabled" field.
func LegacyAiEnabledNEQ(v bool) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldLegacyAiEnabled, v))
}

// LegacyAiEnabledIsNil applies the IsNil predicate on the "legacy_ai_enabled" field.
func LegacyAiEnabledIsNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIsNull(FieldLegacyAiEnabled))
}

// LegacyAiEnabledNotNil applies the NotNil predicate on the "legacy_ai_enabled" field.
func LegacyAiEnabledNotNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotNull(FieldLegacyAiEnabled))
}

// RenderingMaxPerDayEQ applies the EQ predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayEQ(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldRenderingMaxPerDay, v))
}

// RenderingMaxPerDayNEQ applies the NEQ predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayNEQ(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldRenderingMaxPerDay, v))
}

// RenderingMaxPerDayIn applies the In predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayIn(vs ...int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldRenderingMaxPerDay, vs...))
}

// RenderingMaxPerDayNotIn applies the NotIn predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayNotIn(vs ...int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldRenderingMaxPerDay, vs...))
}

// RenderingMaxPerDayGT applies the GT predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayGT(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldRenderingMaxPerDay, v))
}

// RenderingMaxPerDayGTE applies the GTE predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayGTE(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldRenderingMaxPerDay, v))
}

// RenderingMaxPerDayLT applies the LT predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayLT(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldRenderingMaxPerDay, v))
}

// RenderingMaxPerDayLTE applies the LTE predicate on the "rendering_max_per_day" field.
func RenderingMaxPerDayLTE(v int) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldRenderingMaxPerDay, v))
}

// StylePreferencesIsNil applies the IsNil predicate on the "style_preferences" field.
func StylePreferencesIsNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIsNull(FieldStylePreferences))
}

// StylePreferencesNotNil applies the NotNil predicate on the "style_preferences" field.
func StylePreferencesNotNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotNull(FieldStylePreferences))
}

// IndustryKeyEQ applies the EQ predicate on the "industry_key" field.
func IndustryKeyEQ(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldIndustryKey, v))
}

// IndustryKeyNEQ applies the NEQ predicate on the "industry_key" field.
func IndustryKeyNEQ(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldIndustryKey, v))
}

// IndustryKeyIn applies the In predicate on the "industry_key" field.
func IndustryKeyIn(vs ...string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldIndustryKey, vs...))
}

// IndustryKeyNotIn applies the NotIn predicate on the "industry_key" field.
func IndustryKeyNotIn(vs ...string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldIndustryKey, vs...))
}

// IndustryKeyGT applies the GT predicate on the "industry_key" field.
func IndustryKeyGT(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldIndustryKey, v))
}

// IndustryKeyGTE applies the GTE predicate on the "industry_key" field.
func IndustryKeyGTE(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldIndustryKey, v))
}

// IndustryKeyLT applies the LT predicate on the "industry_key" field.
func IndustryKeyLT(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldIndustryKey, v))
}

// IndustryKeyLTE applies the LTE predicate on the "industry_key" field.
func IndustryKeyLTE(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldIndustryKey, v))
}

// IndustryKeyContains applies the Contains predicate on the "industry_key" field.
func IndustryKeyContains(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldContains(FieldIndustryKey, v))
}

// IndustryKeyHasPrefix applies the HasPrefix predicate on the "industry_key" field.
func IndustryKeyHasPrefix(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldHasPrefix(FieldIndustryKey, v))
}

// IndustryKeyHasSuffix applies the HasSuffix predicate on the "industry_key" field.
func IndustryKeyHasSuffix(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldHasSuffix(FieldIndustryKey, v))
}

// IndustryKeyIsNil applies the IsNil predicate on the "industry_key" field.
func IndustryKeyIsNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIsNull(FieldIndustryKey))
}

// IndustryKeyNotNil applies the NotNil predicate on the "industry_key" field.
func IndustryKeyNotNil() predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotNull(FieldIndustryKey))
}

// IndustryKeyEqualFold applies the EqualFold predicate on the "industry_key" field.
func IndustryKeyEqualFold(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEqualFold(FieldIndustryKey, v))
}

// IndustryKeyContainsFold applies the ContainsFold predicate on the "industry_key" field.
func IndustryKeyContainsFold(v string) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldContainsFold(FieldIndustryKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TenantRenderConfig) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TenantRenderConfig) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TenantRenderConfig) predicate.TenantRenderConfig {
	return predicate.TenantRenderConfig(sql.NotPredicates(p))
}
