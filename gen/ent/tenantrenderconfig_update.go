// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/predicate"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantrenderconfig"
	"github.com/google/uuid"
)

// TenantRenderConfigUpdate is the builder for updating TenantRenderConfig entities.
type TenantRenderConfigUpdate struct {
	config
	hooks    []Hook
	mutation *TenantRenderConfigMutation
}

// Where appends a list predicates to the TenantRenderConfigUpdate builder.
func (_u *TenantRenderConfigUpdate) Where(ps ...predicate.TenantRenderConfig) *TenantRenderConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *TenantRenderConfigUpdate) SetTenantID(v uuid.UUID) *TenantRenderConfigUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillableTenantID(v *uuid.UUID) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetPlanTier sets the "plan_tier" field.
func (_u *TenantRenderConfigUpdate) SetPlanTier(v string) *TenantRenderConfigUpdate {
	_u.mutation.SetPlanTier(v)
	return _u
}

// SetNillablePlanTier sets the "plan_tier" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillablePlanTier(v *string) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetPlanTier(*v)
	}
	return _u
}

// SetGraceCreditsTotal sets the "grace_credits_total" field.
func (_u *TenantRenderConfigUpdate) SetGraceCreditsTotal(v int) *TenantRenderConfigUpdate {
	_u.mutation.ResetGraceCreditsTotal()
	_u.mutation.SetGraceCreditsTotal(v)
	return _u
}

// SetNillableGraceCreditsTotal sets the "grace_credits_total" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillableGraceCreditsTotal(v *int) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetGraceCreditsTotal(*v)
	}
	return _u
}

// AddGraceCreditsTotal adds value to the "grace_credits_total" field.
func (_u *TenantRenderConfigUpdate) AddGraceCreditsTotal(v int) *TenantRenderConfigUpdate {
	_u.mutation.AddGraceCreditsTotal(v)
	return _u
}

// SetGraceCreditsUsed sets the "grace_credits_used" field.
func (_u *TenantRenderConfigUpdate) SetGraceCreditsUsed(v int) *TenantRenderConfigUpdate {
	_u.mutation.ResetGraceCreditsUsed()
	_u.mutation.SetGraceCreditsUsed(v)
	return _u
}

// SetNillableGraceCreditsUsed sets the "grace_credits_used" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillableGraceCreditsUsed(v *int) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetGraceCreditsUsed(*v)
	}
	return _u
}

// AddGraceCreditsUsed adds value to the "grace_credits_used" field.
func (_u *TenantRenderConfigUpdate) AddGraceCreditsUsed(v int) *TenantRenderConfigUpdate {
	_u.mutation.AddGraceCreditsUsed(v)
	return _u
}

// SetRenderingEnabled sets the "rendering_enabled" field.
func (_u *TenantRenderConfigUpdate) SetRenderingEnabled(v bool) *TenantRenderConfigUpdate {
	_u.mutation.SetRenderingEnabled(v)
	return _u
}

// SetNillableRenderingEnabled sets the "rendering_enabled" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillableRenderingEnabled(v *bool) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetRenderingEnabled(*v)
	}
	return _u
}

// ClearRenderingEnabled clears the value of the "rendering_enabled" field.
func (_u *TenantRenderConfigUpdate) ClearRenderingEnabled() *TenantRenderConfigUpdate {
	_u.mutation.ClearRenderingEnabled()
	return _u
}

// SetLegacyAiEnabled sets the "legacy_ai_enabled" field.
func (_u *TenantRenderConfigUpdate) SetLegacyAiEnabled(v bool) *TenantRenderConfigUpdate {
	_u.mutation.SetLegacyAiEnabled(v)
	return _u
}

// SetNillableLegacyAiEnabled sets the "legacy_ai_enabled" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillableLegacyAiEnabled(v *bool) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetLegacyAiEnabled(*v)
	}
	return _u
}

// ClearLegacyAiEnabled clears the value of the "legacy_ai_enabled" field.
func (_u *TenantRenderConfigUpdate) ClearLegacyAiEnabled() *TenantRenderConfigUpdate {
	_u.mutation.ClearLegacyAiEnabled()
	return _u
}

// SetRenderingMaxPerDay sets the "rendering_max_per_day" field.
func (_u *TenantRenderConfigUpdate) SetRenderingMaxPerDay(v int) *TenantRenderConfigUpdate {
	_u.mutation.ResetRenderingMaxPerDay()
	_u.mutation.SetRenderingMaxPerDay(v)
	return _u
}

// SetNillableRenderingMaxPerDay sets the "rendering_max_per_day" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillableRenderingMaxPerDay(v *int) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetRenderingMaxPerDay(*v)
	}
	return _u
}

// AddRenderingMaxPerDay adds value to the "rendering_max_per_day" field.
func (_u *TenantRenderConfigUpdate) AddRenderingMaxPerDay(v int) *TenantRenderConfigUpdate {
	_u.mutation.AddRenderingMaxPerDay(v)
	return _u
}

// SetStylePreferences sets the "style_preferences" field.
func (_u *TenantRenderConfigUpdate) SetStylePreferences(v json.RawMessage) *TenantRenderConfigUpdate {
	_u.mutation.SetStylePreferences(v)
	return _u
}

// AppendStylePreferences appends value to the "style_preferences" field.
func (_u *TenantRenderConfigUpdate) AppendStylePreferences(v json.RawMessage) *TenantRenderConfigUpdate {
	_u.mutation.AppendStylePreferences(v)
	return _u
}

// ClearStylePreferences clears the value of the "style_preferences" field.
func (_u *TenantRenderConfigUpdate) ClearStylePreferences() *TenantRenderConfigUpdate {
	_u.mutation.ClearStylePreferences()
	return _u
}

// SetIndustryKey sets the "industry_key" field.
func (_u *TenantRenderConfigUpdate) SetIndustryKey(v string) *TenantRenderConfigUpdate {
	_u.mutation.SetIndustryKey(v)
	return _u
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_u *TenantRenderConfigUpdate) SetNillableIndustryKey(v *string) *TenantRenderConfigUpdate {
	if v != nil {
		_u.SetIndustryKey(*v)
	}
	return _u
}

// ClearIndustryKey clears the value of the "industry_key" field.
func (_u *TenantRenderConfigUpdate) ClearIndustryKey() *TenantRenderConfigUpdate {
	_u.mutation.ClearIndustryKey()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantRenderConfigUpdate) SetUpdatedAt(v time.Time) *TenantRenderConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantRenderConfigMutation object of the builder.
func (_u *TenantRenderConfigUpdate) Mutation() *TenantRenderConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantRenderConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantRenderConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantRenderConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantRenderConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantRenderConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantrenderconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantRenderConfigUpdate) check() error {
	if v, ok := _u.mutation.GraceCreditsTotal(); ok {
		if err := tenantrenderconfig.GraceCreditsTotalValidator(v); err != nil {
			return &ValidationError{Name: "grace_credits_total", err: fmt.Errorf(`ent: validator failed for field "TenantRenderConfig.grace_credits_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GraceCreditsUsed(); ok {
		if err := tenantrenderconfig.GraceCreditsUsedValidator(v); err != nil {
			return &ValidationError{Name: "grace_credits_used", err: fmt.Errorf(`ent: validator failed for field "TenantRenderConfig.grace_credits_used": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantRenderConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantrenderconfig.Table, tenantrenderconfig.Columns, sqlgraph.NewFieldSpec(tenantrenderconfig.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(tenantrenderconfig.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PlanTier(); ok {
		_spec.SetField(tenantrenderconfig.FieldPlanTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraceCreditsTotal(); ok {
		_spec.SetField(tenantrenderconfig.FieldGraceCreditsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraceCreditsTotal(); ok {
		_spec.AddField(tenantrenderconfig.FieldGraceCreditsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GraceCreditsUsed(); ok {
		_spec.SetField(tenantrenderconfig.FieldGraceCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraceCreditsUsed(); ok {
		_spec.AddField(tenantrenderconfig.FieldGraceCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RenderingEnabled(); ok {
		_spec.SetField(tenantrenderconfig.FieldRenderingEnabled, field.TypeBool, value)
	}
	if _u.mutation.RenderingEnabledCleared() {
		_spec.ClearField(tenantrenderconfig.FieldRenderingEnabled, field.TypeBool)
	}
	if value, ok := _u.mutation.LegacyAiEnabled(); ok {
		_spec.SetField(tenantrenderconfig.FieldLegacyAiEnabled, field.TypeBool, value)
	}
	if _u.mutation.LegacyAiEnabledCleared() {
		_spec.ClearField(tenantrenderconfig.FieldLegacyAiEnabled, field.TypeBool)
	}
	if value, ok := _u.mutation.RenderingMaxPerDay(); ok {
		_spec.SetField(tenantrenderconfig.FieldRenderingMaxPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRenderingMaxPerDay(); ok {
		_spec.AddField(tenantrenderconfig.FieldRenderingMaxPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StylePreferences(); ok {
		_spec.SetField(tenantrenderconfig.FieldStylePreferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStylePreferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tenantrenderconfig.FieldStylePreferences, value)
		})
	}
	if _u.mutation.StylePreferencesCleared() {
		_spec.ClearField(tenantrenderconfig.FieldStylePreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndustryKey(); ok {
		_spec.SetField(tenantrenderconfig.FieldIndustryKey, field.TypeString, value)
	}
	if _u.mutation.IndustryKeyCleared() {
		_spec.ClearField(tenantrenderconfig.FieldIndustryKey, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantrenderconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantrenderconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantRenderConfigUpdateOne is the builder for updating a single TenantRenderConfig entity.
type TenantRenderConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantRenderConfigMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *TenantRenderConfigUpdateOne) SetTenantID(v uuid.UUID) *TenantRenderConfigUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillableTenantID(v *uuid.UUID) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetPlanTier sets the "plan_tier" field.
func (_u *TenantRenderConfigUpdateOne) SetPlanTier(v string) *TenantRenderConfigUpdateOne {
	_u.mutation.SetPlanTier(v)
	return _u
}

// SetNillablePlanTier sets the "plan_tier" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillablePlanTier(v *string) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetPlanTier(*v)
	}
	return _u
}

// SetGraceCreditsTotal sets the "grace_credits_total" field.
func (_u *TenantRenderConfigUpdateOne) SetGraceCreditsTotal(v int) *TenantRenderConfigUpdateOne {
	_u.mutation.ResetGraceCreditsTotal()
	_u.mutation.SetGraceCreditsTotal(v)
	return _u
}

// SetNillableGraceCreditsTotal sets the "grace_credits_total" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillableGraceCreditsTotal(v *int) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetGraceCreditsTotal(*v)
	}
	return _u
}

// AddGraceCreditsTotal adds value to the "grace_credits_total" field.
func (_u *TenantRenderConfigUpdateOne) AddGraceCreditsTotal(v int) *TenantRenderConfigUpdateOne {
	_u.mutation.AddGraceCreditsTotal(v)
	return _u
}

// SetGraceCreditsUsed sets the "grace_credits_used" field.
func (_u *TenantRenderConfigUpdateOne) SetGraceCreditsUsed(v int) *TenantRenderConfigUpdateOne {
	_u.mutation.ResetGraceCreditsUsed()
	_u.mutation.SetGraceCreditsUsed(v)
	return _u
}

// SetNillableGraceCreditsUsed sets the "grace_credits_used" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillableGraceCreditsUsed(v *int) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetGraceCreditsUsed(*v)
	}
	return _u
}

// AddGraceCreditsUsed adds value to the "grace_credits_used" field.
func (_u *TenantRenderConfigUpdateOne) AddGraceCreditsUsed(v int) *TenantRenderConfigUpdateOne {
	_u.mutation.AddGraceCreditsUsed(v)
	return _u
}

// SetRenderingEnabled sets the "rendering_enabled" field.
func (_u *TenantRenderConfigUpdateOne) SetRenderingEnabled(v bool) *TenantRenderConfigUpdateOne {
	_u.mutation.SetRenderingEnabled(v)
	return _u
}

// SetNillableRenderingEnabled sets the "rendering_enabled" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillableRenderingEnabled(v *bool) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetRenderingEnabled(*v)
	}
	return _u
}

// ClearRenderingEnabled clears the value of the "rendering_enabled" field.
func (_u *TenantRenderConfigUpdateOne) ClearRenderingEnabled() *TenantRenderConfigUpdateOne {
	_u.mutation.ClearRenderingEnabled()
	return _u
}

// SetLegacyAiEnabled sets the "legacy_ai_enabled" field.
func (_u *TenantRenderConfigUpdateOne) SetLegacyAiEnabled(v bool) *TenantRenderConfigUpdateOne {
	_u.mutation.SetLegacyAiEnabled(v)
	return _u
}

// SetNillableLegacyAiEnabled sets the "legacy_ai_enabled" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillableLegacyAiEnabled(v *bool) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetLegacyAiEnabled(*v)
	}
	return _u
}

// ClearLegacyAiEnabled clears the value of the "legacy_ai_enabled" field.
func (_u *TenantRenderConfigUpdateOne) ClearLegacyAiEnabled() *TenantRenderConfigUpdateOne {
	_u.mutation.ClearLegacyAiEnabled()
	return _u
}

// SetRenderingMaxPerDay sets the "rendering_max_per_day" field.
func (_u *TenantRenderConfigUpdateOne) SetRenderingMaxPerDay(v int) *TenantRenderConfigUpdateOne {
	_u.mutation.ResetRenderingMaxPerDay()
	_u.mutation.SetRenderingMaxPerDay(v)
	return _u
}

// SetNillableRenderingMaxPerDay sets the "rendering_max_per_day" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillableRenderingMaxPerDay(v *int) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetRenderingMaxPerDay(*v)
	}
	return _u
}

// AddRenderingMaxPerDay adds value to the "rendering_max_per_day" field.
func (_u *TenantRenderConfigUpdateOne) AddRenderingMaxPerDay(v int) *TenantRenderConfigUpdateOne {
	_u.mutation.AddRenderingMaxPerDay(v)
	return _u
}

// SetStylePreferences sets the "style_preferences" field.
func (_u *TenantRenderConfigUpdateOne) SetStylePreferences(v json.RawMessage) *TenantRenderConfigUpdateOne {
	_u.mutation.SetStylePreferences(v)
	return _u
}

// AppendStylePreferences appends value to the "style_preferences" field.
func (_u *TenantRenderConfigUpdateOne) AppendStylePreferences(v json.RawMessage) *TenantRenderConfigUpdateOne {
	_u.mutation.AppendStylePreferences(v)
	return _u
}

// ClearStylePreferences clears the value of the "style_preferences" field.
func (_u *TenantRenderConfigUpdateOne) ClearStylePreferences() *TenantRenderConfigUpdateOne {
	_u.mutation.ClearStylePreferences()
	return _u
}

// SetIndustryKey sets the "industry_key" field.
func (_u *TenantRenderConfigUpdateOne) SetIndustryKey(v string) *TenantRenderConfigUpdateOne {
	_u.mutation.SetIndustryKey(v)
	return _u
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_u *TenantRenderConfigUpdateOne) SetNillableIndustryKey(v *string) *TenantRenderConfigUpdateOne {
	if v != nil {
		_u.SetIndustryKey(*v)
	}
	return _u
}

// ClearIndustryKey clears the value of the "industry_key" field.
func (_u *TenantRenderConfigUpdateOne) ClearIndustryKey() *TenantRenderConfigUpdateOne {
	_u.mutation.ClearIndustryKey()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantRenderConfigUpdateOne) SetUpdatedAt(v time.Time) *TenantRenderConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantRenderConfigMutation object of the builder.
func (_u *TenantRenderConfigUpdateOne) Mutation() *TenantRenderConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantRenderConfigUpdate builder.
func (_u *TenantRenderConfigUpdateOne) Where(ps ...predicate.TenantRenderConfig) *TenantRenderConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantRenderConfigUpdateOne) Select(field string, fields ...string) *TenantRenderConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TenantRenderConfig entity.
func (_u *TenantRenderConfigUpdateOne) Save(ctx context.Context) (*TenantRenderConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantRenderConfigUpdateOne) SaveX(ctx context.Context) *TenantRenderConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantRenderConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantRenderConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantRenderConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantrenderconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantRenderConfigUpdateOne) check() error {
	if v, ok := _u.mutation.GraceCreditsTotal(); ok {
		if err := tenantrenderconfig.GraceCreditsTotalValidator(v); err != nil {
			return &ValidationError{Name: "grace_credits_total", err: fmt.Errorf(`ent: validator failed for field "TenantRenderConfig.grace_credits_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GraceCreditsUsed(); ok {
		if err := tenantrenderconfig.GraceCreditsUsedValidator(v); err != nil {
			return &ValidationError{Name: "grace_credits_used", err: fmt.Errorf(`ent: validator failed for field "TenantRenderConfig.grace_credits_used": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantRenderConfigUpdateOne) sqlSave(ctx context.Context) (_node *TenantRenderConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantrenderconfig.Table, tenantrenderconfig.Columns, sqlgraph.NewFieldSpec(tenantrenderconfig.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TenantRenderConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenantrenderconfig.FieldID)
		for _, f := range fields {
			if !tenantrenderconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenantrenderconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(tenantrenderconfig.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PlanTier(); ok {
		_spec.SetField(tenantrenderconfig.FieldPlanTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraceCreditsTotal(); ok {
		_spec.SetField(tenantrenderconfig.FieldGraceCreditsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraceCreditsTotal(); ok {
		_spec.AddField(tenantrenderconfig.FieldGraceCreditsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GraceCreditsUsed(); ok {
		_spec.SetField(tenantrenderconfig.FieldGraceCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraceCreditsUsed(); ok {
		_spec.AddField(tenantrenderconfig.FieldGraceCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RenderingEnabled(); ok {
		_spec.SetField(tenantrenderconfig.FieldRenderingEnabled, field.TypeBool, value)
	}
	if _u.mutation.RenderingEnabledCleared() {
		_spec.ClearField(tenantrenderconfig.FieldRenderingEnabled, field.TypeBool)
	}
	if value, ok := _u.mutation.LegacyAiEnabled(); ok {
		_spec.SetField(tenantrenderconfig.FieldLegacyAiEnabled, field.TypeBool, value)
	}
	if _u.mutation.LegacyAiEnabledCleared() {
		_spec.ClearField(tenantrenderconfig.FieldLegacyAiEnabled, field.TypeBool)
	}
	if value, ok := _u.mutation.RenderingMaxPerDay(); ok {
		_spec.SetField(tenantrenderconfig.FieldRenderingMaxPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRenderingMaxPerDay(); ok {
		_spec.AddField(tenantrenderconfig.FieldRenderingMaxPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StylePreferences(); ok {
		_spec.SetField(tenantrenderconfig.FieldStylePreferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStylePreferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tenantrenderconfig.FieldStylePreferences, value)
		})
	}
	if _u.mutation.StylePreferencesCleared() {
		_spec.ClearField(tenantrenderconfig.FieldStylePreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndustryKey(); ok {
		_spec.SetField(tenantrenderconfig.FieldIndustryKey, field.TypeString, value)
	}
	if _u.mutation.IndustryKeyCleared() {
		_spec.ClearField(tenantrenderconfig.FieldIndustryKey, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantrenderconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TenantRenderConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantrenderconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
