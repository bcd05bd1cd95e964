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
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/google/uuid"
)

// RenderJobUpdate is the builder for updating RenderJob entities.
type RenderJobUpdate struct {
	config
	hooks    []Hook
	mutation *RenderJobMutation
}

// Where appends a list predicates to the RenderJobUpdate builder.
func (_u *RenderJobUpdate) Where(ps ...predicate.RenderJob) *RenderJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *RenderJobUpdate) SetTenantID(v uuid.UUID) *RenderJobUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableTenantID(v *uuid.UUID) *RenderJobUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetQuoteID sets the "quote_id" field.
func (_u *RenderJobUpdate) SetQuoteID(v uuid.UUID) *RenderJobUpdate {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableQuoteID(v *uuid.UUID) *RenderJobUpdate {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RenderJobUpdate) SetStatus(v string) *RenderJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableStatus(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *RenderJobUpdate) SetPrompt(v string) *RenderJobUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillablePrompt(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RenderJobUpdate) SetStartedAt(v time.Time) *RenderJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableStartedAt(v *time.Time) *RenderJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RenderJobUpdate) ClearStartedAt() *RenderJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RenderJobUpdate) SetFinishedAt(v time.Time) *RenderJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableFinishedAt(v *time.Time) *RenderJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RenderJobUpdate) ClearFinishedAt() *RenderJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RenderJobUpdate) SetErrorMessage(v string) *RenderJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableErrorMessage(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RenderJobUpdate) ClearErrorMessage() *RenderJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_u *RenderJobUpdate) SetQuote(v *Quote) *RenderJobUpdate {
	return _u.SetQuoteID(v.ID)
}

// Mutation returns the RenderJobMutation object of the builder.
func (_u *RenderJobUpdate) Mutation() *RenderJobMutation {
	return _u.mutation
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (_u *RenderJobUpdate) ClearQuote() *RenderJobUpdate {
	_u.mutation.ClearQuote()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RenderJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RenderJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RenderJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RenderJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RenderJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	if _u.mutation.QuoteCleared() && len(_u.mutation.QuoteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RenderJob.quote"`)
	}
	return nil
}

func (_u *RenderJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(renderjob.Table, renderjob.Columns, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(renderjob.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(renderjob.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(renderjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(renderjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(renderjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(renderjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(renderjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(renderjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.QuoteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuoteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{renderjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RenderJobUpdateOne is the builder for updating a single RenderJob entity.
type RenderJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RenderJobMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *RenderJobUpdateOne) SetTenantID(v uuid.UUID) *RenderJobUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableTenantID(v *uuid.UUID) *RenderJobUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetQuoteID sets the "quote_id" field.
func (_u *RenderJobUpdateOne) SetQuoteID(v uuid.UUID) *RenderJobUpdateOne {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableQuoteID(v *uuid.UUID) *RenderJobUpdateOne {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RenderJobUpdateOne) SetStatus(v string) *RenderJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableStatus(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *RenderJobUpdateOne) SetPrompt(v string) *RenderJobUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillablePrompt(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RenderJobUpdateOne) SetStartedAt(v time.Time) *RenderJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableStartedAt(v *time.Time) *RenderJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RenderJobUpdateOne) ClearStartedAt() *RenderJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RenderJobUpdateOne) SetFinishedAt(v time.Time) *RenderJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableFinishedAt(v *time.Time) *RenderJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RenderJobUpdateOne) ClearFinishedAt() *RenderJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RenderJobUpdateOne) SetErrorMessage(v string) *RenderJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableErrorMessage(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RenderJobUpdateOne) ClearErrorMessage() *RenderJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_u *RenderJobUpdateOne) SetQuote(v *Quote) *RenderJobUpdateOne {
	return _u.SetQuoteID(v.ID)
}

// Mutation returns the RenderJobMutation object of the builder.
func (_u *RenderJobUpdateOne) Mutation() *RenderJobMutation {
	return _u.mutation
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (_u *RenderJobUpdateOne) ClearQuote() *RenderJobUpdateOne {
	_u.mutation.ClearQuote()
	return _u
}

// Where appends a list predicates to the RenderJobUpdate builder.
func (_u *RenderJobUpdateOne) Where(ps ...predicate.RenderJob) *RenderJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RenderJobUpdateOne) Select(field string, fields ...string) *RenderJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RenderJob entity.
func (_u *RenderJobUpdateOne) Save(ctx context.Context) (*RenderJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RenderJobUpdateOne) SaveX(ctx context.Context) *RenderJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RenderJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RenderJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RenderJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	if _u.mutation.QuoteCleared() && len(_u.mutation.QuoteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RenderJob.quote"`)
	}
	return nil
}

func (_u *RenderJobUpdateOne) sqlSave(ctx context.Context) (_node *RenderJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(renderjob.Table, renderjob.Columns, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RenderJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, renderjob.FieldID)
		for _, f := range fields {
			if !renderjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != renderjob.FieldID {
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
		_spec.SetField(renderjob.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(renderjob.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(renderjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(renderjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(renderjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(renderjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(renderjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(renderjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.QuoteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuoteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RenderJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{renderjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
