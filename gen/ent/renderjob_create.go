// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/google/uuid"
)

// RenderJobCreate is the builder for creating a RenderJob entity.
type RenderJobCreate struct {
	config
	mutation *RenderJobMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *RenderJobCreate) SetTenantID(v uuid.UUID) *RenderJobCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetQuoteID sets the "quote_id" field.
func (_c *RenderJobCreate) SetQuoteID(v uuid.UUID) *RenderJobCreate {
	_c.mutation.SetQuoteID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RenderJobCreate) SetStatus(v string) *RenderJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableStatus(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *RenderJobCreate) SetPrompt(v string) *RenderJobCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RenderJobCreate) SetCreatedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableCreatedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RenderJobCreate) SetStartedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableStartedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RenderJobCreate) SetFinishedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableFinishedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RenderJobCreate) SetErrorMessage(v string) *RenderJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableErrorMessage(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RenderJobCreate) SetID(v uuid.UUID) *RenderJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableID(v *uuid.UUID) *RenderJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_c *RenderJobCreate) SetQuote(v *Quote) *RenderJobCreate {
	return _c.SetQuoteID(v.ID)
}

// Mutation returns the RenderJobMutation object of the builder.
func (_c *RenderJobCreate) Mutation() *RenderJobMutation {
	return _c.mutation
}

// Save creates the RenderJob in the database.
func (_c *RenderJobCreate) Save(ctx context.Context) (*RenderJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RenderJobCreate) SaveX(ctx context.Context) *RenderJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RenderJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RenderJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RenderJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := renderjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := renderjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := renderjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RenderJobCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RenderJob.tenant_id"`)}
	}
	if _, ok := _c.mutation.QuoteID(); !ok {
		return &ValidationError{Name: "quote_id", err: errors.New(`ent: missing required field "RenderJob.quote_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RenderJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "RenderJob.prompt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RenderJob.created_at"`)}
	}
	if len(_c.mutation.QuoteIDs()) == 0 {
		return &ValidationError{Name: "quote", err: errors.New(`ent: missing required edge "RenderJob.quote"`)}
	}
	return nil
}

func (_c *RenderJobCreate) sqlSave(ctx context.Context) (*RenderJob, error) {
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

func (_c *RenderJobCreate) createSpec() (*RenderJob, *sqlgraph.CreateSpec) {
	var (
		_node = &RenderJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(renderjob.Table, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(renderjob.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(renderjob.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(renderjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(renderjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(renderjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(renderjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.QuoteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   renderjob.QuoteTable,
			Columns: []string{renderjob.QuoteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuoteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RenderJobCreateBulk is the builder for creating many RenderJob entities in bulk.
type RenderJobCreateBulk struct {
	config
	err      error
	builders []*RenderJobCreate
}

// Save creates the RenderJob entities in the database.
func (_c *RenderJobCreateBulk) Save(ctx context.Context) ([]*RenderJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RenderJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RenderJobMutation)
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
func (_c *RenderJobCreateBulk) SaveX(ctx context.Context) []*RenderJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RenderJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RenderJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
