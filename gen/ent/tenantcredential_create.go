// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantcredential"
	"github.com/google/uuid"
)

// TenantCredentialCreate is the builder for creating a TenantCredential entity.
type TenantCredentialCreate struct {
	config
	mutation *TenantCredentialMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TenantCredentialCreate) SetTenantID(v uuid.UUID) *TenantCredentialCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_c *TenantCredentialCreate) SetEncryptedAPIKey(v string) *TenantCredentialCreate {
	_c.mutation.SetEncryptedAPIKey(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TenantCredentialCreate) SetCreatedAt(v time.Time) *TenantCredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TenantCredentialCreate) SetNillableCreatedAt(v *time.Time) *TenantCredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantCredentialCreate) SetUpdatedAt(v time.Time) *TenantCredentialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantCredentialCreate) SetNillableUpdatedAt(v *time.Time) *TenantCredentialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantCredentialCreate) SetID(v uuid.UUID) *TenantCredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TenantCredentialCreate) SetNillableID(v *uuid.UUID) *TenantCredentialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TenantCredentialMutation object of the builder.
func (_c *TenantCredentialCreate) Mutation() *TenantCredentialMutation {
	return _c.mutation
}

// Save creates the TenantCredential in the database.
func (_c *TenantCredentialCreate) Save(ctx context.Context) (*TenantCredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantCredentialCreate) SaveX(ctx context.Context) *TenantCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantCredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantCredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantCredentialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tenantcredential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenantcredential.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tenantcredential.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantCredentialCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TenantCredential.tenant_id"`)}
	}
	if _, ok := _c.mutation.EncryptedAPIKey(); !ok {
		return &ValidationError{Name: "encrypted_api_key", err: errors.New(`ent: missing required field "TenantCredential.encrypted_api_key"`)}
	}
	if v, ok := _c.mutation.EncryptedAPIKey(); ok {
		if err := tenantcredential.EncryptedAPIKeyValidator(v); err != nil {
			return &ValidationError{Name: "encrypted_api_key", err: fmt.Errorf(`ent: validator failed for field "TenantCredential.encrypted_api_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TenantCredential.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TenantCredential.updated_at"`)}
	}
	return nil
}

func (_c *TenantCredentialCreate) sqlSave(ctx context.Context) (*TenantCredential, error) {
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

func (_c *TenantCredentialCreate) createSpec() (*TenantCredential, *sqlgraph.CreateSpec) {
	var (
		_node = &TenantCredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenantcredential.Table, sqlgraph.NewFieldSpec(tenantcredential.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(tenantcredential.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(tenantcredential.FieldEncryptedAPIKey, field.TypeString, value)
		_node.EncryptedAPIKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tenantcredential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantcredential.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TenantCredentialCreateBulk is the builder for creating many TenantCredential entities in bulk.
type TenantCredentialCreateBulk struct {
	config
	err      error
	builders []*TenantCredentialCreate
}

// Save creates the TenantCredential entities in the database.
func (_c *TenantCredentialCreateBulk) Save(ctx context.Context) ([]*TenantCredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TenantCredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantCredentialMutation)
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
func (_c *TenantCredentialCreateBulk) SaveX(ctx context.Context) []*TenantCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantCredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantCredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
