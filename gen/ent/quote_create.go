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
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/google/uuid"
)

// QuoteCreate is the builder for creating a Quote entity.
type QuoteCreate struct {
	config
	mutation *QuoteMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *QuoteCreate) SetTenantID(v uuid.UUID) *QuoteCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetImages sets the "images" field.
func (_c *QuoteCreate) SetImages(v json.RawMessage) *QuoteCreate {
	_c.mutation.SetImages(v)
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *QuoteCreate) SetCustomerName(v string) *QuoteCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableCustomerName(v *string) *QuoteCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetCustomerEmail sets the "customer_email" field.
func (_c *QuoteCreate) SetCustomerEmail(v string) *QuoteCreate {
	_c.mutation.SetCustomerEmail(v)
	return _c
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableCustomerEmail(v *string) *QuoteCreate {
	if v != nil {
		_c.SetCustomerEmail(*v)
	}
	return _c
}

// SetRenderOptIn sets the "render_opt_in" field.
func (_c *QuoteCreate) SetRenderOptIn(v bool) *QuoteCreate {
	_c.mutation.SetRenderOptIn(v)
	return _c
}

// SetNillableRenderOptIn sets the "render_opt_in" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableRenderOptIn(v *bool) *QuoteCreate {
	if v != nil {
		_c.SetRenderOptIn(*v)
	}
	return _c
}

// SetRenderStatus sets the "render_status" field.
func (_c *QuoteCreate) SetRenderStatus(v string) *QuoteCreate {
	_c.mutation.SetRenderStatus(v)
	return _c
}

// SetNillableRenderStatus sets the "render_status" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableRenderStatus(v *string) *QuoteCreate {
	if v != nil {
		_c.SetRenderStatus(*v)
	}
	return _c
}

// SetRenderImageURL sets the "render_image_url" field.
func (_c *QuoteCreate) SetRenderImageURL(v string) *QuoteCreate {
	_c.mutation.SetRenderImageURL(v)
	return _c
}

// SetNillableRenderImageURL sets the "render_image_url" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableRenderImageURL(v *string) *QuoteCreate {
	if v != nil {
		_c.SetRenderImageURL(*v)
	}
	return _c
}

// SetRenderPrompt sets the "render_prompt" field.
func (_c *QuoteCreate) SetRenderPrompt(v string) *QuoteCreate {
	_c.mutation.SetRenderPrompt(v)
	return _c
}

// SetNillableRenderPrompt sets the "render_prompt" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableRenderPrompt(v *string) *QuoteCreate {
	if v != nil {
		_c.SetRenderPrompt(*v)
	}
	return _c
}

// SetRenderError sets the "render_error" field.
func (_c *QuoteCreate) SetRenderError(v string) *QuoteCreate {
	_c.mutation.SetRenderError(v)
	return _c
}

// SetNillableRenderError sets the "render_error" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableRenderError(v *string) *QuoteCreate {
	if v != nil {
		_c.SetRenderError(*v)
	}
	return _c
}

// SetRenderedAt sets the "rendered_at" field.
func (_c *QuoteCreate) SetRenderedAt(v time.Time) *QuoteCreate {
	_c.mutation.SetRenderedAt(v)
	return _c
}

// SetNillableRenderedAt sets the "rendered_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableRenderedAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetRenderedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuoteCreate) SetCreatedAt(v time.Time) *QuoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableCreatedAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuoteCreate) SetUpdatedAt(v time.Time) *QuoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableUpdatedAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuoteCreate) SetID(v uuid.UUID) *QuoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableID(v *uuid.UUID) *QuoteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRenderJobIDs adds the "render_jobs" edge to the RenderJob entity by IDs.
func (_c *QuoteCreate) AddRenderJobIDs(ids ...uuid.UUID) *QuoteCreate {
	_c.mutation.AddRenderJobIDs(ids...)
	return _c
}

// AddRenderJobs adds the "render_jobs" edges to the RenderJob entity.
func (_c *QuoteCreate) AddRenderJobs(v ...*RenderJob) *QuoteCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRenderJobIDs(ids...)
}

// Mutation returns the QuoteMutation object of the builder.
func (_c *QuoteCreate) Mutation() *QuoteMutation {
	return _c.mutation
}

// Save creates the Quote in the database.
func (_c *QuoteCreate) Save(ctx context.Context) (*Quote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuoteCreate) SaveX(ctx context.Context) *Quote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuoteCreate) defaults() {
	if _, ok := _c.mutation.RenderOptIn(); !ok {
		v := quote.DefaultRenderOptIn
		_c.mutation.SetRenderOptIn(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quote.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuoteCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Quote.tenant_id"`)}
	}
	if _, ok := _c.mutation.RenderOptIn(); !ok {
		return &ValidationError{Name: "render_opt_in", err: errors.New(`ent: missing required field "Quote.render_opt_in"`)}
	}
	if v, ok := _c.mutation.RenderStatus(); ok {
		if err := quote.RenderStatusValidator(v); err != nil {
			return &ValidationError{Name: "render_status", err: fmt.Errorf(`ent: validator failed for field "Quote.render_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Quote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Quote.updated_at"`)}
	}
	return nil
}

func (_c *QuoteCreate) sqlSave(ctx context.Context) (*Quote, error) {
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

func (_c *QuoteCreate) createSpec() (*Quote, *sqlgraph.CreateSpec) {
	var (
		_node = &Quote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quote.Table, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(quote.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Images(); ok {
		_spec.SetField(quote.FieldImages, field.TypeJSON, value)
		_node.Images = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(quote.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.CustomerEmail(); ok {
		_spec.SetField(quote.FieldCustomerEmail, field.TypeString, value)
		_node.CustomerEmail = value
	}
	if value, ok := _c.mutation.RenderOptIn(); ok {
		_spec.SetField(quote.FieldRenderOptIn, field.TypeBool, value)
		_node.RenderOptIn = value
	}
	if value, ok := _c.mutation.RenderStatus(); ok {
		_spec.SetField(quote.FieldRenderStatus, field.TypeString, value)
		_node.RenderStatus = &value
	}
	if value, ok := _c.mutation.RenderImageURL(); ok {
		_spec.SetField(quote.FieldRenderImageURL, field.TypeString, value)
		_node.RenderImageURL = &value
	}
	if value, ok := _c.mutation.RenderPrompt(); ok {
		_spec.SetField(quote.FieldRenderPrompt, field.TypeString, value)
		_node.RenderPrompt = &value
	}
	if value, ok := _c.mutation.RenderError(); ok {
		_spec.SetField(quote.FieldRenderError, field.TypeString, value)
		_node.RenderError = &value
	}
	if value, ok := _c.mutation.RenderedAt(); ok {
		_spec.SetField(quote.FieldRenderedAt, field.TypeTime, value)
		_node.RenderedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RenderJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.RenderJobsTable,
			Columns: []string{quote.RenderJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuoteCreateBulk is the builder for creating many Quote entities in bulk.
type QuoteCreateBulk struct {
	config
	err      error
	builders []*QuoteCreate
}

// Save creates the Quote entities in the database.
func (_c *QuoteCreateBulk) Save(ctx context.Context) ([]*Quote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Quote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuoteMutation)
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
func (_c *QuoteCreateBulk) SaveX(ctx context.Context) []*Quote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
