// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/predicate"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantcredential"
	"github.com/google/uuid"
)

// TenantCredentialUpdate is the builder for updating TenantCredential entities.
type TenantCredentialUpdate struct {
	config
	hooks    []Hook
	mutation *TenantCredentialMutation
}

// Where appends a list predicates to the TenantCredentialUpdate builder.
func (_u *TenantCredentialUpdate) Where(ps ...predicate.TenantCredential) *TenantCredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *TenantCredentialUpdate) SetTenantID(v uuid.UUID) *TenantCredentialUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *TenantCredentialUpdate) SetNillableTenantID(v *uuid.UUID) *TenantCredentialUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_u *TenantCredentialUpdate) SetEncryptedAPIKey(v string) *TenantCredentialUpdate {
	_u.mutation.SetEncryptedAPIKey(v)
	return _u
}

// SetNillableEncryptedAPIKey sets the "encrypted_api_key" field if the given value is not nil.
func (_u *TenantCredentialUpdate) SetNillableEncryptedAPIKey(v *string) *TenantCredentialUpdate {
	if v != nil {
		_u.SetEncryptedAPIKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantCredentialUpdate) SetUpdatedAt(v time.Time) *TenantCredentialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantCredentialMutation object of the builder.
func (_u *TenantCredentialUpdate) Mutation() *TenantCredentialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantCredentialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantCredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantCredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantCredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantCredentialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantCredentialUpdate) check() error {
	if v, ok := _u.mutation.EncryptedAPIKey(); ok {
		if err := tenantcredential.EncryptedAPIKeyValidator(v); err != nil {
			return &ValidationError{Name: "encrypted_api_key", err: fmt.Errorf(`ent: validator failed for field "TenantCredential.encrypted_api_key": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantCredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantcredential.Table, tenantcredential.Columns, sqlgraph.NewFieldSpec(tenantcredential.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(tenantcredential.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(tenantcredential.FieldEncryptedAPIKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantCredentialUpdateOne is the builder for updating a single TenantCredential entity.
type TenantCredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantCredentialMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *TenantCredentialUpdateOne) SetTenantID(v uuid.UUID) *TenantCredentialUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *TenantCredentialUpdateOne) SetNillableTenantID(v *uuid.UUID) *TenantCredentialUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_u *TenantCredentialUpdateOne) SetEncryptedAPIKey(v string) *TenantCredentialUpdateOne {
	_u.mutation.SetEncryptedAPIKey(v)
	return _u
}

// SetNillableEncryptedAPIKey sets the "encrypted_api_key" field if the given value is not nil.
func (_u *TenantCredentialUpdateOne) SetNillableEncryptedAPIKey(v *string) *TenantCredentialUpdateOne {
	if v != nil {
		_u.SetEncryptedAPIKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantCredentialUpdateOne) SetUpdatedAt(v time.Time) *TenantCredentialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantCredentialMutation object of the builder.
func (_u *TenantCredentialUpdateOne) Mutation() *TenantCredentialMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantCredentialUpdate builder.
func (_u *TenantCredentialUpdateOne) Where(ps ...predicate.TenantCredential) *TenantCredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantCredentialUpdateOne) Select(field string, fields ...string) *TenantCredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TenantCredential entity.
func (_u *TenantCredentialUpdateOne) Save(ctx context.Context) (*TenantCredential, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantCredentialUpdateOne) SaveX(ctx context.Context) *TenantCredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantCredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantCredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantCredentialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantCredentialUpdateOne) check() error {
	if v, ok := _u.mutation.EncryptedAPIKey(); ok {
		if err := tenantcredential.EncryptedAPIKeyValidator(v); err != nil {
			return &ValidationError{Name: "encrypted_api_key", err: fmt.Errorf(`ent: validator failed for field "TenantCredential.encrypted_api_key": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantCredentialUpdateOne) sqlSave(ctx context.Context) (_node *TenantCredential, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantcredential.Table, tenantcredential.Columns, sqlgraph.NewFieldSpec(tenantcredential.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TenantCredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenantcredential.FieldID)
		for _, f := range fields {
			if !tenantcredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenantcredential.FieldID {
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
		_spec.SetField(tenantcredential.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(tenantcredential.FieldEncryptedAPIKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TenantCredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
