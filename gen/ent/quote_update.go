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
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/google/uuid"
)

// QuoteUpdate is the builder for updating Quote entities.
type QuoteUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteMutation
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdate) Where(ps ...predicate.Quote) *QuoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *QuoteUpdate) SetTenantID(v uuid.UUID) *QuoteUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableTenantID(v *uuid.UUID) *QuoteUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetImages sets the "images" field.
func (_u *QuoteUpdate) SetImages(v json.RawMessage) *QuoteUpdate {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *QuoteUpdate) AppendImages(v json.RawMessage) *QuoteUpdate {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *QuoteUpdate) ClearImages() *QuoteUpdate {
	_u.mutation.ClearImages()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *QuoteUpdate) SetCustomerName(v string) *QuoteUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableCustomerName(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *QuoteUpdate) ClearCustomerName() *QuoteUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *QuoteUpdate) SetCustomerEmail(v string) *QuoteUpdate {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableCustomerEmail(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *QuoteUpdate) ClearCustomerEmail() *QuoteUpdate {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetRenderOptIn sets the "render_opt_in" field.
func (_u *QuoteUpdate) SetRenderOptIn(v bool) *QuoteUpdate {
	_u.mutation.SetRenderOptIn(v)
	return _u
}

// SetNillableRenderOptIn sets the "render_opt_in" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableRenderOptIn(v *bool) *QuoteUpdate {
	if v != nil {
		_u.SetRenderOptIn(*v)
	}
	return _u
}

// SetRenderStatus sets the "render_status" field.
func (_u *QuoteUpdate) SetRenderStatus(v string) *QuoteUpdate {
	_u.mutation.SetRenderStatus(v)
	return _u
}

// SetNillableRenderStatus sets the "render_status" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableRenderStatus(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetRenderStatus(*v)
	}
	return _u
}

// ClearRenderStatus clears the value of the "render_status" field.
func (_u *QuoteUpdate) ClearRenderStatus() *QuoteUpdate {
	_u.mutation.ClearRenderStatus()
	return _u
}

// SetRenderImageURL sets the "render_image_url" field.
func (_u *QuoteUpdate) SetRenderImageURL(v string) *QuoteUpdate {
	_u.mutation.SetRenderImageURL(v)
	return _u
}

// SetNillableRenderImageURL sets the "render_image_url" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableRenderImageURL(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetRenderImageURL(*v)
	}
	return _u
}

// ClearRenderImageURL clears the value of the "render_image_url" field.
func (_u *QuoteUpdate) ClearRenderImageURL() *QuoteUpdate {
	_u.mutation.ClearRenderImageURL()
	return _u
}

// SetRenderPrompt sets the "render_prompt" field.
func (_u *QuoteUpdate) SetRenderPrompt(v string) *QuoteUpdate {
	_u.mutation.SetRenderPrompt(v)
	return _u
}

// SetNillableRenderPrompt sets the "render_prompt" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableRenderPrompt(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetRenderPrompt(*v)
	}
	return _u
}

// ClearRenderPrompt clears the value of the "render_prompt" field.
func (_u *QuoteUpdate) ClearRenderPrompt() *QuoteUpdate {
	_u.mutation.ClearRenderPrompt()
	return _u
}

// SetRenderError sets the "render_error" field.
func (_u *QuoteUpdate) SetRenderError(v string) *QuoteUpdate {
	_u.mutation.SetRenderError(v)
	return _u
}

// SetNillableRenderError sets the "render_error" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableRenderError(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetRenderError(*v)
	}
	return _u
}

// ClearRenderError clears the value of the "render_error" field.
func (_u *QuoteUpdate) ClearRenderError() *QuoteUpdate {
	_u.mutation.ClearRenderError()
	return _u
}

// SetRenderedAt sets the "rendered_at" field.
func (_u *QuoteUpdate) SetRenderedAt(v time.Time) *QuoteUpdate {
	_u.mutation.SetRenderedAt(v)
	return _u
}

// SetNillableRenderedAt sets the "rendered_at" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableRenderedAt(v *time.Time) *QuoteUpdate {
	if v != nil {
		_u.SetRenderedAt(*v)
	}
	return _u
}

// ClearRenderedAt clears the value of the "rendered_at" field.
func (_u *QuoteUpdate) ClearRenderedAt() *QuoteUpdate {
	_u.mutation.ClearRenderedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuoteUpdate) SetUpdatedAt(v time.Time) *QuoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRenderJobIDs adds the "render_jobs" edge to the RenderJob entity by IDs.
func (_u *QuoteUpdate) AddRenderJobIDs(ids ...uuid.UUID) *QuoteUpdate {
	_u.mutation.AddRenderJobIDs(ids...)
	return _u
}

// AddRenderJobs adds the "render_jobs" edges to the RenderJob entity.
func (_u *QuoteUpdate) AddRenderJobs(v ...*RenderJob) *QuoteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRenderJobIDs(ids...)
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdate) Mutation() *QuoteMutation {
	return _u.mutation
}

// ClearRenderJobs clears all "render_jobs" edges to the RenderJob entity.
func (_u *QuoteUpdate) ClearRenderJobs() *QuoteUpdate {
	_u.mutation.ClearRenderJobs()
	return _u
}

// RemoveRenderJobIDs removes the "render_jobs" edge to RenderJob entities by IDs.
func (_u *QuoteUpdate) RemoveRenderJobIDs(ids ...uuid.UUID) *QuoteUpdate {
	_u.mutation.RemoveRenderJobIDs(ids...)
	return _u
}

// RemoveRenderJobs removes "render_jobs" edges to RenderJob entities.
func (_u *QuoteUpdate) RemoveRenderJobs(v ...*RenderJob) *QuoteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRenderJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdate) check() error {
	if v, ok := _u.mutation.RenderStatus(); ok {
		if err := quote.RenderStatusValidator(v); err != nil {
			return &ValidationError{Name: "render_status", err: fmt.Errorf(`ent: validator failed for field "Quote.render_status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(quote.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(quote.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quote.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(quote.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(quote.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(quote.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(quote.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(quote.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.RenderOptIn(); ok {
		_spec.SetField(quote.FieldRenderOptIn, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RenderStatus(); ok {
		_spec.SetField(quote.FieldRenderStatus, field.TypeString, value)
	}
	if _u.mutation.RenderStatusCleared() {
		_spec.ClearField(quote.FieldRenderStatus, field.TypeString)
	}
	if value, ok := _u.mutation.RenderImageURL(); ok {
		_spec.SetField(quote.FieldRenderImageURL, field.TypeString, value)
	}
	if _u.mutation.RenderImageURLCleared() {
		_spec.ClearField(quote.FieldRenderImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.RenderPrompt(); ok {
		_spec.SetField(quote.FieldRenderPrompt, field.TypeString, value)
	}
	if _u.mutation.RenderPromptCleared() {
		_spec.ClearField(quote.FieldRenderPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.RenderError(); ok {
		_spec.SetField(quote.FieldRenderError, field.TypeString, value)
	}
	if _u.mutation.RenderErrorCleared() {
		_spec.ClearField(quote.FieldRenderError, field.TypeString)
	}
	if value, ok := _u.mutation.RenderedAt(); ok {
		_spec.SetField(quote.FieldRenderedAt, field.TypeTime, value)
	}
	if _u.mutation.RenderedAtCleared() {
		_spec.ClearField(quote.FieldRenderedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quote.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RenderJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRenderJobsIDs(); len(nodes) > 0 && !_u.mutation.RenderJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RenderJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteUpdateOne is the builder for updating a single Quote entity.
type QuoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *QuoteUpdateOne) SetTenantID(v uuid.UUID) *QuoteUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableTenantID(v *uuid.UUID) *QuoteUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetImages sets the "images" field.
func (_u *QuoteUpdateOne) SetImages(v json.RawMessage) *QuoteUpdateOne {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *QuoteUpdateOne) AppendImages(v json.RawMessage) *QuoteUpdateOne {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *QuoteUpdateOne) ClearImages() *QuoteUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *QuoteUpdateOne) SetCustomerName(v string) *QuoteUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableCustomerName(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *QuoteUpdateOne) ClearCustomerName() *QuoteUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *QuoteUpdateOne) SetCustomerEmail(v string) *QuoteUpdateOne {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableCustomerEmail(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *QuoteUpdateOne) ClearCustomerEmail() *QuoteUpdateOne {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetRenderOptIn sets the "render_opt_in" field.
func (_u *QuoteUpdateOne) SetRenderOptIn(v bool) *QuoteUpdateOne {
	_u.mutation.SetRenderOptIn(v)
	return _u
}

// SetNillableRenderOptIn sets the "render_opt_in" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableRenderOptIn(v *bool) *QuoteUpdateOne {
	if v != nil {
		_u.SetRenderOptIn(*v)
	}
	return _u
}

// SetRenderStatus sets the "render_status" field.
func (_u *QuoteUpdateOne) SetRenderStatus(v string) *QuoteUpdateOne {
	_u.mutation.SetRenderStatus(v)
	return _u
}

// SetNillableRenderStatus sets the "render_status" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableRenderStatus(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetRenderStatus(*v)
	}
	return _u
}

// ClearRenderStatus clears the value of the "render_status" field.
func (_u *QuoteUpdateOne) ClearRenderStatus() *QuoteUpdateOne {
	_u.mutation.ClearRenderStatus()
	return _u
}

// SetRenderImageURL sets the "render_image_url" field.
func (_u *QuoteUpdateOne) SetRenderImageURL(v string) *QuoteUpdateOne {
	_u.mutation.SetRenderImageURL(v)
	return _u
}

// SetNillableRenderImageURL sets the "render_image_url" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableRenderImageURL(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetRenderImageURL(*v)
	}
	return _u
}

// ClearRenderImageURL clears the value of the "render_image_url" field.
func (_u *QuoteUpdateOne) ClearRenderImageURL() *QuoteUpdateOne {
	_u.mutation.ClearRenderImageURL()
	return _u
}

// SetRenderPrompt sets the "render_prompt" field.
func (_u *QuoteUpdateOne) SetRenderPrompt(v string) *QuoteUpdateOne {
	_u.mutation.SetRenderPrompt(v)
	return _u
}

// SetNillableRenderPrompt sets the "render_prompt" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableRenderPrompt(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetRenderPrompt(*v)
	}
	return _u
}

// ClearRenderPrompt clears the value of the "render_prompt" field.
func (_u *QuoteUpdateOne) ClearRenderPrompt() *QuoteUpdateOne {
	_u.mutation.ClearRenderPrompt()
	return _u
}

// SetRenderError sets the "render_error" field.
func (_u *QuoteUpdateOne) SetRenderError(v string) *QuoteUpdateOne {
	_u.mutation.SetRenderError(v)
	return _u
}

// SetNillableRenderError sets the "render_error" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableRenderError(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetRenderError(*v)
	}
	return _u
}

// ClearRenderError clears the value of the "render_error" field.
func (_u *QuoteUpdateOne) ClearRenderError() *QuoteUpdateOne {
	_u.mutation.ClearRenderError()
	return _u
}

// SetRenderedAt sets the "rendered_at" field.
func (_u *QuoteUpdateOne) SetRenderedAt(v time.Time) *QuoteUpdateOne {
	_u.mutation.SetRenderedAt(v)
	return _u
}

// SetNillableRenderedAt sets the "rendered_at" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableRenderedAt(v *time.Time) *QuoteUpdateOne {
	if v != nil {
		_u.SetRenderedAt(*v)
	}
	return _u
}

// ClearRenderedAt clears the value of the "rendered_at" field.
func (_u *QuoteUpdateOne) ClearRenderedAt() *QuoteUpdateOne {
	_u.mutation.ClearRenderedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuoteUpdateOne) SetUpdatedAt(v time.Time) *QuoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRenderJobIDs adds the "render_jobs" edge to the RenderJob entity by IDs.
func (_u *QuoteUpdateOne) AddRenderJobIDs(ids ...uuid.UUID) *QuoteUpdateOne {
	_u.mutation.AddRenderJobIDs(ids...)
	return _u
}

// AddRenderJobs adds the "render_jobs" edges to the RenderJob entity.
func (_u *QuoteUpdateOne) AddRenderJobs(v ...*RenderJob) *QuoteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRenderJobIDs(ids...)
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdateOne) Mutation() *QuoteMutation {
	return _u.mutation
}

// ClearRenderJobs clears all "render_jobs" edges to the RenderJob entity.
func (_u *QuoteUpdateOne) ClearRenderJobs() *QuoteUpdateOne {
	_u.mutation.ClearRenderJobs()
	return _u
}

// RemoveRenderJobIDs removes the "render_jobs" edge to RenderJob entities by IDs.
func (_u *QuoteUpdateOne) RemoveRenderJobIDs(ids ...uuid.UUID) *QuoteUpdateOne {
	_u.mutation.RemoveRenderJobIDs(ids...)
	return _u
}

// RemoveRenderJobs removes "render_jobs" edges to RenderJob entities.
func (_u *QuoteUpdateOne) RemoveRenderJobs(v ...*RenderJob) *QuoteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRenderJobIDs(ids...)
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdateOne) Where(ps ...predicate.Quote) *QuoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteUpdateOne) Select(field string, fields ...string) *QuoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quote entity.
func (_u *QuoteUpdateOne) Save(ctx context.Context) (*Quote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdateOne) SaveX(ctx context.Context) *Quote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdateOne) check() error {
	if v, ok := _u.mutation.RenderStatus(); ok {
		if err := quote.RenderStatusValidator(v); err != nil {
			return &ValidationError{Name: "render_status", err: fmt.Errorf(`ent: validator failed for field "Quote.render_status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteUpdateOne) sqlSave(ctx context.Context) (_node *Quote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quote.FieldID)
		for _, f := range fields {
			if !quote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quote.FieldID {
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
		_spec.SetField(quote.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(quote.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quote.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(quote.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(quote.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(quote.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(quote.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(quote.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.RenderOptIn(); ok {
		_spec.SetField(quote.FieldRenderOptIn, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RenderStatus(); ok {
		_spec.SetField(quote.FieldRenderStatus, field.TypeString, value)
	}
	if _u.mutation.RenderStatusCleared() {
		_spec.ClearField(quote.FieldRenderStatus, field.TypeString)
	}
	if value, ok := _u.mutation.RenderImageURL(); ok {
		_spec.SetField(quote.FieldRenderImageURL, field.TypeString, value)
	}
	if _u.mutation.RenderImageURLCleared() {
		_spec.ClearField(quote.FieldRenderImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.RenderPrompt(); ok {
		_spec.SetField(quote.FieldRenderPrompt, field.TypeString, value)
	}
	if _u.mutation.RenderPromptCleared() {
		_spec.ClearField(quote.FieldRenderPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.RenderError(); ok {
		_spec.SetField(quote.FieldRenderError, field.TypeString, value)
	}
	if _u.mutation.RenderErrorCleared() {
		_spec.ClearField(quote.FieldRenderError, field.TypeString)
	}
	if value, ok := _u.mutation.RenderedAt(); ok {
		_spec.SetField(quote.FieldRenderedAt, field.TypeTime, value)
	}
	if _u.mutation.RenderedAtCleared() {
		_spec.ClearField(quote.FieldRenderedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quote.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RenderJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRenderJobsIDs(); len(nodes) > 0 && !_u.mutation.RenderJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RenderJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Quote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
