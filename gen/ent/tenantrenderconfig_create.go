// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantrenderconfig"
	"github.com/google/uuid"
)

// TenantRenderConfigCreate is the builder for creating a TenantRenderConfig entity.
type TenantRenderConfigCreate struct {
	config
	mutation *TenantRenderConfigMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TenantRenderConfigCreate) SetTenantID(v uuid.UUID) *TenantRenderConfigCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPlanTier sets the "plan_tier" field.
func (_c *TenantRenderConfigCreate) SetPlanTier(v string) *TenantRenderConfigCreate {
	_c.mutation.SetPlanTier(v)
	return _c
}

// SetNillablePlanTier sets the "plan_tier" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillablePlanTier(v *string) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetPlanTier(*v)
	}
	return _c
}

// SetGraceCreditsTotal sets the "grace_credits_total" field.
func (_c *TenantRenderConfigCreate) SetGraceCreditsTotal(v int) *TenantRenderConfigCreate {
	_c.mutation.SetGraceCreditsTotal(v)
	return _c
}

// SetNillableGraceCreditsTotal sets the "grace_credits_total" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableGraceCreditsTotal(v *int) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetGraceCreditsTotal(*v)
	}
	return _c
}

// SetGraceCreditsUsed sets the "grace_credits_used" field.
func (_c *TenantRenderConfigCreate) SetGraceCreditsUsed(v int) *TenantRenderConfigCreate {
	_c.mutation.SetGraceCreditsUsed(v)
	return _c
}

// SetNillableGraceCreditsUsed sets the "grace_credits_used" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableGraceCreditsUsed(v *int) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetGraceCreditsUsed(*v)
	}
	return _c
}

// SetRenderingEnabled sets the "rendering_enabled" field.
func (_c *TenantRenderConfigCreate) SetRenderingEnabled(v bool) *TenantRenderConfigCreate {
	_c.mutation.SetRenderingEnabled(v)
	return _c
}

// SetNillableRenderingEnabled sets the "rendering_enabled" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableRenderingEnabled(v *bool) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetRenderingEnabled(*v)
	}
	return _c
}

// SetLegacyAiEnabled sets the "legacy_ai_enabled" field.
func (_c *TenantRenderConfigCreate) SetLegacyAiEnabled(v bool) *TenantRenderConfigCreate {
	_c.mutation.SetLegacyAiEnabled(v)
	return _c
}

// SetNillableLegacyAiEnabled sets the "legacy_ai_enabled" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableLegacyAiEnabled(v *bool) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetLegacyAiEnabled(*v)
	}
	return _c
}

// SetRenderingMaxPerDay sets the "rendering_max_per_day" field.
func (_c *TenantRenderConfigCreate) SetRenderingMaxPerDay(v int) *TenantRenderConfigCreate {
	_c.mutation.SetRenderingMaxPerDay(v)
	return _c
}

// SetNillableRenderingMaxPerDay sets the "rendering_max_per_day" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableRenderingMaxPerDay(v *int) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetRenderingMaxPerDay(*v)
	}
	return _c
}

// SetStylePreferences sets the "style_preferences" field.
func (_c *TenantRenderConfigCreate) SetStylePreferences(v json.RawMessage) *TenantRenderConfigCreate {
	_c.mutation.SetStylePreferences(v)
	return _c
}

// SetIndustryKey sets the "industry_key" field.
func (_c *TenantRenderConfigCreate) SetIndustryKey(v string) *TenantRenderConfigCreate {
	_c.mutation.SetIndustryKey(v)
	return _c
}

// SetNillableIndustryKey sets the "industry_key" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableIndustryKey(v *string) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetIndustryKey(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TenantRenderConfigCreate) SetCreatedAt(v time.Time) *TenantRenderConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableCreatedAt(v *time.Time) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantRenderConfigCreate) SetUpdatedAt(v time.Time) *TenantRenderConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableUpdatedAt(v *time.Time) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantRenderConfigCreate) SetID(v uuid.UUID) *TenantRenderConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TenantRenderConfigCreate) SetNillableID(v *uuid.UUID) *TenantRenderConfigCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TenantRenderConfigMutation object of the builder.
func (_c *TenantRenderConfigCreate) Mutation() *TenantRenderConfigMutation {
	return _c.mutation
}

// Save creates the TenantRenderConfig in the database.
func (_c *TenantRenderConfigCreate) Save(ctx context.Context) (*TenantRenderConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantRenderConfigCreate) SaveX(ctx context.Context) *TenantRenderConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantRenderConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantRenderConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantRenderConfigCreate) defaults() {
	if _, ok := _c.mutation.PlanTier(); !ok {
		v := tenantrenderconfig.DefaultPlanTier
		_c.mutation.SetPlanTier(v)
	}
	if _, ok := _c.mutation.GraceCreditsTotal(); !ok {
		v := tenantrenderconfig.DefaultGraceCreditsTotal
		_c.mutation.SetGraceCreditsTotal(v)
	}
	if _, ok := _c.mutation.GraceCreditsUsed(); !ok {
		v := tenantrenderconfig.DefaultGraceCreditsUsed
		_c.mutation.SetGraceCreditsUsed(v)
	}
	if _, ok := _c.mutation.RenderingMaxPerDay(); !ok {
		v := tenantrenderconfig.DefaultRenderingMaxPerDay
		_c.mutation.SetRenderingMaxPerDay(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tenantrenderconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenantrenderconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tenantrenderconfig.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantRenderConfigCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TenantRenderConfig.tenant_id"`)}
	}
	if _, ok := _c.mutation.PlanTier(); !ok {
		return &ValidationError{Name: "plan_tier", err: errors.New(`ent: missing required field "TenantRenderConfig.plan_tier"`)}
	}
	if _, ok := _c.mutation.GraceCreditsTotal(); !ok {
		return &ValidationError{Name: "grace_credits_total", err: errors.New(`ent: missing required field "TenantRenderConfig.grace_credits_total"`)}
	}
	if v, ok := _c.mutation.GraceCreditsTotal(); ok {
		if err := tenantrenderconfig.GraceCreditsTotalValidator(v); err != nil {
			return &ValidationError{Name: "grace_credits_total", err: fmt.Errorf(`ent: validator failed for field "TenantRenderConfig.grace_credits_total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GraceCreditsUsed(); !ok {
		return &ValidationError{Name: "grace_credits_used", err: errors.New(`ent: missing required field "TenantRenderConfig.grace_credits_used"`)}
	}
	if v, ok := _c.mutation.GraceCreditsUsed(); ok {
		if err := tenantrenderconfig.GraceCreditsUsedValidator(v); err != nil {
			return &ValidationError{Name: "grace_credits_used", err: fmt.Errorf(`ent: validator failed for field "TenantRenderConfig.grace_credits_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RenderingMaxPerDay(); !ok {
		return &ValidationError{Name: "rendering_max_per_day", err: errors.New(`ent: missing required field "TenantRenderConfig.rendering_max_per_day"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TenantRenderConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TenantRenderConfig.updated_at"`)}
	}
	return nil
}

func (_c *TenantRenderConfigCreate) sqlSave(ctx context.Context) (*TenantRenderConfig, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TenantRenderConfigCreate) createSpec() (*TenantRenderConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &TenantRenderConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenantrenderconfig.Table, sqlgraph.NewFieldSpec(tenantrenderconfig.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(tenantrenderconfig.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.PlanTier(); ok {
		_spec.SetField(tenantrenderconfig.FieldPlanTier, field.TypeString, value)
		_node.PlanTier = value
	}
	if value, ok := _c.mutation.GraceCreditsTotal(); ok {
		_spec.SetField(tenantrenderconfig.FieldGraceCreditsTotal, field.TypeInt, value)
		_node.GraceCreditsTotal = value
	}
	if value, ok := _c.mutation.GraceCreditsUsed(); ok {
		_spec.SetField(tenantrenderconfig.FieldGraceCreditsUsed, field.TypeInt, value)
		_node.GraceCreditsUsed = value
	}
	if value, ok := _c.mutation.RenderingEnabled(); ok {
		_spec.SetField(tenantrenderconfig.FieldRenderingEnabled, field.TypeBool, value)
		_node.RenderingEnabled = &value
	}
	if value, ok := _c.mutation.LegacyAiEnabled(); ok {
		_spec.SetField(tenantrenderconfig.FieldLegacyAiEnabled, field.TypeBool, value)
		_node.LegacyAiEnabled = &value
	}
	if value, ok := _c.mutation.RenderingMaxPerDay(); ok {
		_spec.SetField(tenantrenderconfig.FieldRenderingMaxPerDay, field.TypeInt, value)
		_node.RenderingMaxPerDay = value
	}
	if value, ok := _c.mutation.StylePreferences(); ok {
		_spec.SetField(tenantrenderconfig.FieldStylePreferences, field.TypeJSON, value)
		_node.StylePreferences = value
	}
	if value, ok := _c.mutation.IndustryKey(); ok {
		_spec.SetField(tenantrenderconfig.FieldIndustryKey, field.TypeString, value)
		_node.IndustryKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tenantrenderconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantrenderconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TenantRenderConfigCreateBulk is the builder for creating many TenantRenderConfig entities in bulk.
type TenantRenderConfigCreateBulk struct {
	config
	err      error
	builders []*TenantRenderConfigCreate
}

// Save creates the TenantRenderConfig entities in the database.
func (_c *TenantRenderConfigCreateBulk) Save(ctx context.Context) ([]*TenantRenderConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TenantRenderConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantRenderConfigMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TenantRenderConfigCreateBulk) SaveX(ctx context.Context) []*TenantRenderConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantRenderConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantRenderConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
