// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/predicate"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantcredential"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantrenderconfig"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQuote              = "Quote"
	TypeRenderJob          = "RenderJob"
	TypeTenantCredential   = "TenantCredential"
	TypeTenantRenderConfig = "TenantRenderConfig"
)

// QuoteMutation represents an operation that mutates the Quote nodes in the graph.
type QuoteMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	tenant_id          *uuid.UUID
	images             *json.RawMessage
	appendimages       json.RawMessage
	customer_name      *string
	customer_email     *string
	render_opt_in      *bool
	render_status      *string
	render_image_url   *string
	render_prompt      *string
	render_error       *string
	rendered_at        *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	render_jobs        map[uuid.UUID]struct{}
	removedrender_jobs map[uuid.UUID]struct{}
	clearedrender_jobs bool
	done               bool
	oldValue           func(context.Context) (*Quote, error)
	predicates         []predicate.Quote
}

var _ ent.Mutation = (*QuoteMutation)(nil)

// quoteOption allows management of the mutation configuration using functional options.
type quoteOption func(*QuoteMutation)

// newQuoteMutation creates new mutation for the Quote entity.
func newQuoteMutation(c config, op Op, opts ...quoteOption) *QuoteMutation {
	m := &QuoteMutation{
		config:        c,
		op:            op,
		typ:           TypeQuote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuoteID sets the ID field of the mutation.
func withQuoteID(id uuid.UUID) quoteOption {
	return func(m *QuoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Quote
		)
		m.oldValue = func(ctx context.Context) (*Quote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Quote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuote sets the old Quote of the mutation.
func withQuote(node *Quote) quoteOption {
	return func(m *QuoteMutation) {
		m.oldValue = func(context.Context) (*Quote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Quote entities.
func (m *QuoteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuoteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuoteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Quote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *QuoteMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *QuoteMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *QuoteMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetImages sets the "images" field.
func (m *QuoteMutation) SetImages(jm json.RawMessage) {
	m.images = &jm
	m.appendimages = nil
}

// Images returns the value of the "images" field in the mutation.
func (m *QuoteMutation) Images() (r json.RawMessage, exists bool) {
	v := m.images
	if v == nil {
		return
	}
	return *v, true
}

// OldImages returns the old "images" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldImages(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImages: %w", err)
	}
	return oldValue.Images, nil
}

// AppendImages adds jm to the "images" field.
func (m *QuoteMutation) AppendImages(jm json.RawMessage) {
	m.appendimages = append(m.appendimages, jm...)
}

// AppendedImages returns the list of values that were appended to the "images" field in this mutation.
func (m *QuoteMutation) AppendedImages() (json.RawMessage, bool) {
	if len(m.appendimages) == 0 {
		return nil, false
	}
	return m.appendimages, true
}

// ClearImages clears the value of the "images" field.
func (m *QuoteMutation) ClearImages() {
	m.images = nil
	m.appendimages = nil
	m.clearedFields[quote.FieldImages] = struct{}{}
}

// ImagesCleared returns if the "images" field was cleared in this mutation.
func (m *QuoteMutation) ImagesCleared() bool {
	_, ok := m.clearedFields[quote.FieldImages]
	return ok
}

// ResetImages resets all changes to the "images" field.
func (m *QuoteMutation) ResetImages() {
	m.images = nil
	m.appendimages = nil
	delete(m.clearedFields, quote.FieldImages)
}

// SetCustomerName sets the "customer_name" field.
func (m *QuoteMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *QuoteMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ClearCustomerName clears the value of the "customer_name" field.
func (m *QuoteMutation) ClearCustomerName() {
	m.customer_name = nil
	m.clearedFields[quote.FieldCustomerName] = struct{}{}
}

// CustomerNameCleared returns if the "customer_name" field was cleared in this mutation.
func (m *QuoteMutation) CustomerNameCleared() bool {
	_, ok := m.clearedFields[quote.FieldCustomerName]
	return ok
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *QuoteMutation) ResetCustomerName() {
	m.customer_name = nil
	delete(m.clearedFields, quote.FieldCustomerName)
}

// SetCustomerEmail sets the "customer_email" field.
func (m *QuoteMutation) SetCustomerEmail(s string) {
	m.customer_email = &s
}

// CustomerEmail returns the value of the "customer_email" field in the mutation.
func (m *QuoteMutation) CustomerEmail() (r string, exists bool) {
	v := m.customer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerEmail returns the old "customer_email" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldCustomerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerEmail: %w", err)
	}
	return oldValue.CustomerEmail, nil
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (m *QuoteMutation) ClearCustomerEmail() {
	m.customer_email = nil
	m.clearedFields[quote.FieldCustomerEmail] = struct{}{}
}

// CustomerEmailCleared returns if the "customer_email" field was cleared in this mutation.
func (m *QuoteMutation) CustomerEmailCleared() bool {
	_, ok := m.clearedFields[quote.FieldCustomerEmail]
	return ok
}

// ResetCustomerEmail resets all changes to the "customer_email" field.
func (m *QuoteMutation) ResetCustomerEmail() {
	m.customer_email = nil
	delete(m.clearedFields, quote.FieldCustomerEmail)
}

// SetRenderOptIn sets the "render_opt_in" field.
func (m *QuoteMutation) SetRenderOptIn(b bool) {
	m.render_opt_in = &b
}

// RenderOptIn returns the value of the "render_opt_in" field in the mutation.
func (m *QuoteMutation) RenderOptIn() (r bool, exists bool) {
	v := m.render_opt_in
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderOptIn returns the old "render_opt_in" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldRenderOptIn(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderOptIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderOptIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderOptIn: %w", err)
	}
	return oldValue.RenderOptIn, nil
}

// ResetRenderOptIn resets all changes to the "render_opt_in" field.
func (m *QuoteMutation) ResetRenderOptIn() {
	m.render_opt_in = nil
}

// SetRenderStatus sets the "render_status" field.
func (m *QuoteMutation) SetRenderStatus(s string) {
	m.render_status = &s
}

// RenderStatus returns the value of the "render_status" field in the mutation.
func (m *QuoteMutation) RenderStatus() (r string, exists bool) {
	v := m.render_status
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderStatus returns the old "render_status" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldRenderStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderStatus: %w", err)
	}
	return oldValue.RenderStatus, nil
}

// ClearRenderStatus clears the value of the "render_status" field.
func (m *QuoteMutation) ClearRenderStatus() {
	m.render_status = nil
	m.clearedFields[quote.FieldRenderStatus] = struct{}{}
}

// RenderStatusCleared returns if the "render_status" field was cleared in this mutation.
func (m *QuoteMutation) RenderStatusCleared() bool {
	_, ok := m.clearedFields[quote.FieldRenderStatus]
	return ok
}

// ResetRenderStatus resets all changes to the "render_status" field.
func (m *QuoteMutation) ResetRenderStatus() {
	m.render_status = nil
	delete(m.clearedFields, quote.FieldRenderStatus)
}

// SetRenderImageURL sets the "render_image_url" field.
func (m *QuoteMutation) SetRenderImageURL(s string) {
	m.render_image_url = &s
}

// RenderImageURL returns the value of the "render_image_url" field in the mutation.
func (m *QuoteMutation) RenderImageURL() (r string, exists bool) {
	v := m.render_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderImageURL returns the old "render_image_url" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldRenderImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderImageURL: %w", err)
	}
	return oldValue.RenderImageURL, nil
}

// ClearRenderImageURL clears the value of the "render_image_url" field.
func (m *QuoteMutation) ClearRenderImageURL() {
	m.render_image_url = nil
	m.clearedFields[quote.FieldRenderImageURL] = struct{}{}
}

// RenderImageURLCleared returns if the "render_image_url" field was cleared in this mutation.
func (m *QuoteMutation) RenderImageURLCleared() bool {
	_, ok := m.clearedFields[quote.FieldRenderImageURL]
	return ok
}

// ResetRenderImageURL resets all changes to the "render_image_url" field.
func (m *QuoteMutation) ResetRenderImageURL() {
	m.render_image_url = nil
	delete(m.clearedFields, quote.FieldRenderImageURL)
}

// SetRenderPrompt sets the "render_prompt" field.
func (m *QuoteMutation) SetRenderPrompt(s string) {
	m.render_prompt = &s
}

// RenderPrompt returns the value of the "render_prompt" field in the mutation.
func (m *QuoteMutation) RenderPrompt() (r string, exists bool) {
	v := m.render_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderPrompt returns the old "render_prompt" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldRenderPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderPrompt: %w", err)
	}
	return oldValue.RenderPrompt, nil
}

// ClearRenderPrompt clears the value of the "render_prompt" field.
func (m *QuoteMutation) ClearRenderPrompt() {
	m.render_prompt = nil
	m.clearedFields[quote.FieldRenderPrompt] = struct{}{}
}

// RenderPromptCleared returns if the "render_prompt" field was cleared in this mutation.
func (m *QuoteMutation) RenderPromptCleared() bool {
	_, ok := m.clearedFields[quote.FieldRenderPrompt]
	return ok
}

// ResetRenderPrompt resets all changes to the "render_prompt" field.
func (m *QuoteMutation) ResetRenderPrompt() {
	m.render_prompt = nil
	delete(m.clearedFields, quote.FieldRenderPrompt)
}

// SetRenderError sets the "render_error" field.
func (m *QuoteMutation) SetRenderError(s string) {
	m.render_error = &s
}

// RenderError returns the value of the "render_error" field in the mutation.
func (m *QuoteMutation) RenderError() (r string, exists bool) {
	v := m.render_error
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderError returns the old "render_error" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldRenderError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderError: %w", err)
	}
	return oldValue.RenderError, nil
}

// ClearRenderError clears the value of the "render_error" field.
func (m *QuoteMutation) ClearRenderError() {
	m.render_error = nil
	m.clearedFields[quote.FieldRenderError] = struct{}{}
}

// RenderErrorCleared returns if the "render_error" field was cleared in this mutation.
func (m *QuoteMutation) RenderErrorCleared() bool {
	_, ok := m.clearedFields[quote.FieldRenderError]
	return ok
}

// ResetRenderError resets all changes to the "render_error" field.
func (m *QuoteMutation) ResetRenderError() {
	m.render_error = nil
	delete(m.clearedFields, quote.FieldRenderError)
}

// SetRenderedAt sets the "rendered_at" field.
func (m *QuoteMutation) SetRenderedAt(t time.Time) {
	m.rendered_at = &t
}

// RenderedAt returns the value of the "rendered_at" field in the mutation.
func (m *QuoteMutation) RenderedAt() (r time.Time, exists bool) {
	v := m.rendered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderedAt returns the old "rendered_at" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldRenderedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderedAt: %w", err)
	}
	return oldValue.RenderedAt, nil
}

// ClearRenderedAt clears the value of the "rendered_at" field.
func (m *QuoteMutation) ClearRenderedAt() {
	m.rendered_at = nil
	m.clearedFields[quote.FieldRenderedAt] = struct{}{}
}

// RenderedAtCleared returns if the "rendered_at" field was cleared in this mutation.
func (m *QuoteMutation) RenderedAtCleared() bool {
	_, ok := m.clearedFields[quote.FieldRenderedAt]
	return ok
}

// ResetRenderedAt resets all changes to the "rendered_at" field.
func (m *QuoteMutation) ResetRenderedAt() {
	m.rendered_at = nil
	delete(m.clearedFields, quote.FieldRenderedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRenderJobIDs adds the "render_jobs" edge to the RenderJob entity by ids.
func (m *QuoteMutation) AddRenderJobIDs(ids ...uuid.UUID) {
	if m.render_jobs == nil {
		m.render_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.render_jobs[ids[i]] = struct{}{}
	}
}

// ClearRenderJobs clears the "render_jobs" edge to the RenderJob entity.
func (m *QuoteMutation) ClearRenderJobs() {
	m.clearedrender_jobs = true
}

// RenderJobsCleared reports if the "render_jobs" edge to the RenderJob entity was cleared.
func (m *QuoteMutation) RenderJobsCleared() bool {
	return m.clearedrender_jobs
}

// RemoveRenderJobIDs removes the "render_jobs" edge to the RenderJob entity by IDs.
func (m *QuoteMutation) RemoveRenderJobIDs(ids ...uuid.UUID) {
	if m.removedrender_jobs == nil {
		m.removedrender_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.render_jobs, ids[i])
		m.removedrender_jobs[ids[i]] = struct{}{}
	}
}

// RemovedRenderJobs returns the removed IDs of the "render_jobs" edge to the RenderJob entity.
func (m *QuoteMutation) RemovedRenderJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedrender_jobs {
		ids = append(ids, id)
	}
	return
}

// RenderJobsIDs returns the "render_jobs" edge IDs in the mutation.
func (m *QuoteMutation) RenderJobsIDs() (ids []uuid.UUID) {
	for id := range m.render_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetRenderJobs resets all changes to the "render_jobs" edge.
func (m *QuoteMutation) ResetRenderJobs() {
	m.render_jobs = nil
	m.clearedrender_jobs = false
	m.removedrender_jobs = nil
}

// Where appends a list predicates to the QuoteMutation builder.
func (m *QuoteMutation) Where(ps ...predicate.Quote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Quote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Quote).
func (m *QuoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuoteMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, quote.FieldTenantID)
	}
	if m.images != nil {
		fields = append(fields, quote.FieldImages)
	}
	if m.customer_name != nil {
		fields = append(fields, quote.FieldCustomerName)
	}
	if m.customer_email != nil {
		fields = append(fields, quote.FieldCustomerEmail)
	}
	if m.render_opt_in != nil {
		fields = append(fields, quote.FieldRenderOptIn)
	}
	if m.render_status != nil {
		fields = append(fields, quote.FieldRenderStatus)
	}
	if m.render_image_url != nil {
		fields = append(fields, quote.FieldRenderImageURL)
	}
	if m.render_prompt != nil {
		fields = append(fields, quote.FieldRenderPrompt)
	}
	if m.render_error != nil {
		fields = append(fields, quote.FieldRenderError)
	}
	if m.rendered_at != nil {
		fields = append(fields, quote.FieldRenderedAt)
	}
	if m.created_at != nil {
		fields = append(fields, quote.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, quote.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quote.FieldTenantID:
		return m.TenantID()
	case quote.FieldImages:
		return m.Images()
	case quote.FieldCustomerName:
		return m.CustomerName()
	case quote.FieldCustomerEmail:
		return m.CustomerEmail()
	case quote.FieldRenderOptIn:
		return m.RenderOptIn()
	case quote.FieldRenderStatus:
		return m.RenderStatus()
	case quote.FieldRenderImageURL:
		return m.RenderImageURL()
	case quote.FieldRenderPrompt:
		return m.RenderPrompt()
	case quote.FieldRenderError:
		return m.RenderError()
	case quote.FieldRenderedAt:
		return m.RenderedAt()
	case quote.FieldCreatedAt:
		return m.CreatedAt()
	case quote.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quote.FieldTenantID:
		return m.OldTenantID(ctx)
	case quote.FieldImages:
		return m.OldImages(ctx)
	case quote.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case quote.FieldCustomerEmail:
		return m.OldCustomerEmail(ctx)
	case quote.FieldRenderOptIn:
		return m.OldRenderOptIn(ctx)
	case quote.FieldRenderStatus:
		return m.OldRenderStatus(ctx)
	case quote.FieldRenderImageURL:
		return m.OldRenderImageURL(ctx)
	case quote.FieldRenderPrompt:
		return m.OldRenderPrompt(ctx)
	case quote.FieldRenderError:
		return m.OldRenderError(ctx)
	case quote.FieldRenderedAt:
		return m.OldRenderedAt(ctx)
	case quote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case quote.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Quote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quote.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case quote.FieldImages:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImages(v)
		return nil
	case quote.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case quote.FieldCustomerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerEmail(v)
		return nil
	case quote.FieldRenderOptIn:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderOptIn(v)
		return nil
	case quote.FieldRenderStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderStatus(v)
		return nil
	case quote.FieldRenderImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderImageURL(v)
		return nil
	case quote.FieldRenderPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderPrompt(v)
		return nil
	case quote.FieldRenderError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderError(v)
		return nil
	case quote.FieldRenderedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderedAt(v)
		return nil
	case quote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case quote.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Quote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Quote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quote.FieldImages) {
		fields = append(fields, quote.FieldImages)
	}
	if m.FieldCleared(quote.FieldCustomerName) {
		fields = append(fields, quote.FieldCustomerName)
	}
	if m.FieldCleared(quote.FieldCustomerEmail) {
		fields = append(fields, quote.FieldCustomerEmail)
	}
	if m.FieldCleared(quote.FieldRenderStatus) {
		fields = append(fields, quote.FieldRenderStatus)
	}
	if m.FieldCleared(quote.FieldRenderImageURL) {
		fields = append(fields, quote.FieldRenderImageURL)
	}
	if m.FieldCleared(quote.FieldRenderPrompt) {
		fields = append(fields, quote.FieldRenderPrompt)
	}
	if m.FieldCleared(quote.FieldRenderError) {
		fields = append(fields, quote.FieldRenderError)
	}
	if m.FieldCleared(quote.FieldRenderedAt) {
		fields = append(fields, quote.FieldRenderedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuoteMutation) ClearField(name string) error {
	switch name {
	case quote.FieldImages:
		m.ClearImages()
		return nil
	case quote.FieldCustomerName:
		m.ClearCustomerName()
		return nil
	case quote.FieldCustomerEmail:
		m.ClearCustomerEmail()
		return nil
	case quote.FieldRenderStatus:
		m.ClearRenderStatus()
		return nil
	case quote.FieldRenderImageURL:
		m.ClearRenderImageURL()
		return nil
	case quote.FieldRenderPrompt:
		m.ClearRenderPrompt()
		return nil
	case quote.FieldRenderError:
		m.ClearRenderError()
		return nil
	case quote.FieldRenderedAt:
		m.ClearRenderedAt()
		return nil
	}
	return fmt.Errorf("unknown Quote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuoteMutation) ResetField(name string) error {
	switch name {
	case quote.FieldTenantID:
		m.ResetTenantID()
		return nil
	case quote.FieldImages:
		m.ResetImages()
		return nil
	case quote.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case quote.FieldCustomerEmail:
		m.ResetCustomerEmail()
		return nil
	case quote.FieldRenderOptIn:
		m.ResetRenderOptIn()
		return nil
	case quote.FieldRenderStatus:
		m.ResetRenderStatus()
		return nil
	case quote.FieldRenderImageURL:
		m.ResetRenderImageURL()
		return nil
	case quote.FieldRenderPrompt:
		m.ResetRenderPrompt()
		return nil
	case quote.FieldRenderError:
		m.ResetRenderError()
		return nil
	case quote.FieldRenderedAt:
		m.ResetRenderedAt()
		return nil
	case quote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case quote.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Quote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.render_jobs != nil {
		edges = append(edges, quote.EdgeRenderJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quote.EdgeRenderJobs:
		ids := make([]ent.Value, 0, len(m.render_jobs))
		for id := range m.render_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrender_jobs != nil {
		edges = append(edges, quote.EdgeRenderJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuoteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case quote.EdgeRenderJobs:
		ids := make([]ent.Value, 0, len(m.removedrender_jobs))
		for id := range m.removedrender_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrender_jobs {
		edges = append(edges, quote.EdgeRenderJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuoteMutation) EdgeCleared(name string) bool {
	switch name {
	case quote.EdgeRenderJobs:
		return m.clearedrender_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuoteMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Quote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuoteMutation) ResetEdge(name string) error {
	switch name {
	case quote.EdgeRenderJobs:
		m.ResetRenderJobs()
		return nil
	}
	return fmt.Errorf("unknown Quote edge %s", name)
}

// RenderJobMutation represents an operation that mutates the RenderJob nodes in the graph.
type RenderJobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	tenant_id     *uuid.UUID
	status        *string
	prompt        *string
	created_at    *time.Time
	started_at    *time.Time
	finished_at   *time.Time
	error_message *string
	clearedFields map[string]struct{}
	quote         *uuid.UUID
	clearedquote  bool
	done          bool
	oldValue      func(context.Context) (*RenderJob, error)
	predicates    []predicate.RenderJob
}

var _ ent.Mutation = (*RenderJobMutation)(nil)

// renderjobOption allows management of the mutation configuration using functional options.
type renderjobOption func(*RenderJobMutation)

// newRenderJobMutation creates new mutation for the RenderJob entity.
func newRenderJobMutation(c config, op Op, opts ...renderjobOption) *RenderJobMutation {
	m := &RenderJobMutation{
		config:        c,
		op:            op,
		typ:           TypeRenderJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRenderJobID sets the ID field of the mutation.
func withRenderJobID(id uuid.UUID) renderjobOption {
	return func(m *RenderJobMutation) {
		var (
			err   error
			once  sync.Once
			value *RenderJob
		)
		m.oldValue = func(ctx context.Context) (*RenderJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RenderJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRenderJob sets the old RenderJob of the mutation.
func withRenderJob(node *RenderJob) renderjobOption {
	return func(m *RenderJobMutation) {
		m.oldValue = func(context.Context) (*RenderJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RenderJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RenderJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RenderJob entities.
func (m *RenderJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RenderJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RenderJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RenderJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RenderJobMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RenderJobMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RenderJobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetQuoteID sets the "quote_id" field.
func (m *RenderJobMutation) SetQuoteID(u uuid.UUID) {
	m.quote = &u
}

// QuoteID returns the value of the "quote_id" field in the mutation.
func (m *RenderJobMutation) QuoteID() (r uuid.UUID, exists bool) {
	v := m.quote
	if v == nil {
		return
	}
	return *v, true
}

// OldQuoteID returns the old "quote_id" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldQuoteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuoteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuoteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuoteID: %w", err)
	}
	return oldValue.QuoteID, nil
}

// ResetQuoteID resets all changes to the "quote_id" field.
func (m *RenderJobMutation) ResetQuoteID() {
	m.quote = nil
}

// SetStatus sets the "status" field.
func (m *RenderJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RenderJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RenderJobMutation) ResetStatus() {
	m.status = nil
}

// SetPrompt sets the "prompt" field.
func (m *RenderJobMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *RenderJobMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *RenderJobMutation) ResetPrompt() {
	m.prompt = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RenderJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RenderJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RenderJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RenderJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RenderJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RenderJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[renderjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RenderJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RenderJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, renderjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *RenderJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RenderJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *RenderJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[renderjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RenderJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RenderJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, renderjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *RenderJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RenderJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RenderJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[renderjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RenderJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RenderJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, renderjob.FieldErrorMessage)
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (m *RenderJobMutation) ClearQuote() {
	m.clearedquote = true
	m.clearedFields[renderjob.FieldQuoteID] = struct{}{}
}

// QuoteCleared reports if the "quote" edge to the Quote entity was cleared.
func (m *RenderJobMutation) QuoteCleared() bool {
	return m.clearedquote
}

// QuoteIDs returns the "quote" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuoteID instead. It exists only for internal usage by the builders.
func (m *RenderJobMutation) QuoteIDs() (ids []uuid.UUID) {
	if id := m.quote; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuote resets all changes to the "quote" edge.
func (m *RenderJobMutation) ResetQuote() {
	m.quote = nil
	m.clearedquote = false
}

// Where appends a list predicates to the RenderJobMutation builder.
func (m *RenderJobMutation) Where(ps ...predicate.RenderJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RenderJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RenderJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RenderJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RenderJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RenderJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RenderJob).
func (m *RenderJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RenderJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, renderjob.FieldTenantID)
	}
	if m.quote != nil {
		fields = append(fields, renderjob.FieldQuoteID)
	}
	if m.status != nil {
		fields = append(fields, renderjob.FieldStatus)
	}
	if m.prompt != nil {
		fields = append(fields, renderjob.FieldPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, renderjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, renderjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, renderjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, renderjob.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RenderJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case renderjob.FieldTenantID:
		return m.TenantID()
	case renderjob.FieldQuoteID:
		return m.QuoteID()
	case renderjob.FieldStatus:
		return m.Status()
	case renderjob.FieldPrompt:
		return m.Prompt()
	case renderjob.FieldCreatedAt:
		return m.CreatedAt()
	case renderjob.FieldStartedAt:
		return m.StartedAt()
	case renderjob.FieldFinishedAt:
		return m.FinishedAt()
	case renderjob.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RenderJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case renderjob.FieldTenantID:
		return m.OldTenantID(ctx)
	case renderjob.FieldQuoteID:
		return m.OldQuoteID(ctx)
	case renderjob.FieldStatus:
		return m.OldStatus(ctx)
	case renderjob.FieldPrompt:
		return m.OldPrompt(ctx)
	case renderjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case renderjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case renderjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case renderjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown RenderJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RenderJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case renderjob.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case renderjob.FieldQuoteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuoteID(v)
		return nil
	case renderjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case renderjob.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case renderjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case renderjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case renderjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case renderjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown RenderJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RenderJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RenderJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RenderJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RenderJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RenderJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(renderjob.FieldStartedAt) {
		fields = append(fields, renderjob.FieldStartedAt)
	}
	if m.FieldCleared(renderjob.FieldFinishedAt) {
		fields = append(fields, renderjob.FieldFinishedAt)
	}
	if m.FieldCleared(renderjob.FieldErrorMessage) {
		fields = append(fields, renderjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RenderJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RenderJobMutation) ClearField(name string) error {
	switch name {
	case renderjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case renderjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case renderjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown RenderJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RenderJobMutation) ResetField(name string) error {
	switch name {
	case renderjob.FieldTenantID:
		m.ResetTenantID()
		return nil
	case renderjob.FieldQuoteID:
		m.ResetQuoteID()
		return nil
	case renderjob.FieldStatus:
		m.ResetStatus()
		return nil
	case renderjob.FieldPrompt:
		m.ResetPrompt()
		return nil
	case renderjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case renderjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case renderjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case renderjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown RenderJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RenderJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.quote != nil {
		edges = append(edges, renderjob.EdgeQuote)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RenderJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case renderjob.EdgeQuote:
		if id := m.quote; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RenderJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RenderJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RenderJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquote {
		edges = append(edges, renderjob.EdgeQuote)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RenderJobMutation) EdgeCleared(name string) bool {
	switch name {
	case renderjob.EdgeQuote:
		return m.clearedquote
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RenderJobMutation) ClearEdge(name string) error {
	switch name {
	case renderjob.EdgeQuote:
		m.ClearQuote()
		return nil
	}
	return fmt.Errorf("unknown RenderJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RenderJobMutation) ResetEdge(name string) error {
	switch name {
	case renderjob.EdgeQuote:
		m.ResetQuote()
		return nil
	}
	return fmt.Errorf("unknown RenderJob edge %s", name)
}

// TenantCredentialMutation represents an operation that mutates the TenantCredential nodes in the graph.
type TenantCredentialMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	tenant_id         *uuid.UUID
	encrypted_api_key *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*TenantCredential, error)
	predicates        []predicate.TenantCredential
}

var _ ent.Mutation = (*TenantCredentialMutation)(nil)

// tenantcredentialOption allows management of the mutation configuration using functional options.
type tenantcredentialOption func(*TenantCredentialMutation)

// newTenantCredentialMutation creates new mutation for the TenantCredential entity.
func newTenantCredentialMutation(c config, op Op, opts ...tenantcredentialOption) *TenantCredentialMutation {
	m := &TenantCredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantCredentialID sets the ID field of the mutation.
func withTenantCredentialID(id uuid.UUID) tenantcredentialOption {
	return func(m *TenantCredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantCredential
		)
		m.oldValue = func(ctx context.Context) (*TenantCredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantCredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantCredential sets the old TenantCredential of the mutation.
func withTenantCredential(node *TenantCredential) tenantcredentialOption {
	return func(m *TenantCredentialMutation) {
		m.oldValue = func(context.Context) (*TenantCredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantCredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantCredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantCredential entities.
func (m *TenantCredentialMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantCredentialMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantCredentialMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantCredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TenantCredentialMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TenantCredentialMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TenantCredential entity.
// If the TenantCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantCredentialMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TenantCredentialMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (m *TenantCredentialMutation) SetEncryptedAPIKey(s string) {
	m.encrypted_api_key = &s
}

// EncryptedAPIKey returns the value of the "encrypted_api_key" field in the mutation.
func (m *TenantCredentialMutation) EncryptedAPIKey() (r string, exists bool) {
	v := m.encrypted_api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedAPIKey returns the old "encrypted_api_key" field's value of the TenantCredential entity.
// If the TenantCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantCredentialMutation) OldEncryptedAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedAPIKey: %w", err)
	}
	return oldValue.EncryptedAPIKey, nil
}

// ResetEncryptedAPIKey resets all changes to the "encrypted_api_key" field.
func (m *TenantCredentialMutation) ResetEncryptedAPIKey() {
	m.encrypted_api_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantCredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantCredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TenantCredential entity.
// If the TenantCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantCredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantCredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantCredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantCredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantCredential entity.
// If the TenantCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantCredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantCredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantCredentialMutation builder.
func (m *TenantCredentialMutation) Where(ps ...predicate.TenantCredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantCredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantCredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantCredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantCredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantCredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantCredential).
func (m *TenantCredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantCredentialMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, tenantcredential.FieldTenantID)
	}
	if m.encrypted_api_key != nil {
		fields = append(fields, tenantcredential.FieldEncryptedAPIKey)
	}
	if m.created_at != nil {
		fields = append(fields, tenantcredential.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantcredential.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantCredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantcredential.FieldTenantID:
		return m.TenantID()
	case tenantcredential.FieldEncryptedAPIKey:
		return m.EncryptedAPIKey()
	case tenantcredential.FieldCreatedAt:
		return m.CreatedAt()
	case tenantcredential.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantCredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantcredential.FieldTenantID:
		return m.OldTenantID(ctx)
	case tenantcredential.FieldEncryptedAPIKey:
		return m.OldEncryptedAPIKey(ctx)
	case tenantcredential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenantcredential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantCredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantCredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantcredential.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case tenantcredential.FieldEncryptedAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedAPIKey(v)
		return nil
	case tenantcredential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenantcredential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantCredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantCredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantCredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantCredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TenantCredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantCredentialMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantCredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantCredentialMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TenantCredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantCredentialMutation) ResetField(name string) error {
	switch name {
	case tenantcredential.FieldTenantID:
		m.ResetTenantID()
		return nil
	case tenantcredential.FieldEncryptedAPIKey:
		m.ResetEncryptedAPIKey()
		return nil
	case tenantcredential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenantcredential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantCredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantCredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantCredentialMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantCredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantCredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantCredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantCredentialMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantCredentialMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TenantCredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantCredentialMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TenantCredential edge %s", name)
}

// TenantRenderConfigMutation represents an operation that mutates the TenantRenderConfig nodes in the graph.
type TenantRenderConfigMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	tenant_id                *uuid.UUID
	plan_tier                *string
	grace_credits_total      *int
	addgrace_credits_total   *int
	grace_credits_used       *int
	addgrace_credits_used    *int
	rendering_enabled        *bool
	legacy_ai_enabled        *bool
	rendering_max_per_day    *int
	addrendering_max_per_day *int
	style_preferences        *json.RawMessage
	appendstyle_preferences  json.RawMessage
	industry_key             *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*TenantRenderConfig, error)
	predicates               []predicate.TenantRenderConfig
}

var _ ent.Mutation = (*TenantRenderConfigMutation)(nil)

// tenantrenderconfigOption allows management of the mutation configuration using functional options.
type tenantrenderconfigOption func(*TenantRenderConfigMutation)

// newTenantRenderConfigMutation creates new mutation for the TenantRenderConfig entity.
func newTenantRenderConfigMutation(c config, op Op, opts ...tenantrenderconfigOption) *TenantRenderConfigMutation {
	m := &TenantRenderConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantRenderConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantRenderConfigID sets the ID field of the mutation.
func withTenantRenderConfigID(id uuid.UUID) tenantrenderconfigOption {
	return func(m *TenantRenderConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantRenderConfig
		)
		m.oldValue = func(ctx context.Context) (*TenantRenderConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantRenderConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantRenderConfig sets the old TenantRenderConfig of the mutation.
func withTenantRenderConfig(node *TenantRenderConfig) tenantrenderconfigOption {
	return func(m *TenantRenderConfigMutation) {
		m.oldValue = func(context.Context) (*TenantRenderConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantRenderConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantRenderConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantRenderConfig entities.
func (m *TenantRenderConfigMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantRenderConfigMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantRenderConfigMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantRenderConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TenantRenderConfigMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TenantRenderConfigMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TenantRenderConfigMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPlanTier sets the "plan_tier" field.
func (m *TenantRenderConfigMutation) SetPlanTier(s string) {
	m.plan_tier = &s
}

// PlanTier returns the value of the "plan_tier" field in the mutation.
func (m *TenantRenderConfigMutation) PlanTier() (r string, exists bool) {
	v := m.plan_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanTier returns the old "plan_tier" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldPlanTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanTier: %w", err)
	}
	return oldValue.PlanTier, nil
}

// ResetPlanTier resets all changes to the "plan_tier" field.
func (m *TenantRenderConfigMutation) ResetPlanTier() {
	m.plan_tier = nil
}

// SetGraceCreditsTotal sets the "grace_credits_total" field.
func (m *TenantRenderConfigMutation) SetGraceCreditsTotal(i int) {
	m.grace_credits_total = &i
	m.addgrace_credits_total = nil
}

// GraceCreditsTotal returns the value of the "grace_credits_total" field in the mutation.
func (m *TenantRenderConfigMutation) GraceCreditsTotal() (r int, exists bool) {
	v := m.grace_credits_total
	if v == nil {
		return
	}
	return *v, true
}

// OldGraceCreditsTotal returns the old "grace_credits_total" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldGraceCreditsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraceCreditsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraceCreditsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraceCreditsTotal: %w", err)
	}
	return oldValue.GraceCreditsTotal, nil
}

// AddGraceCreditsTotal adds i to the "grace_credits_total" field.
func (m *TenantRenderConfigMutation) AddGraceCreditsTotal(i int) {
	if m.addgrace_credits_total != nil {
		*m.addgrace_credits_total += i
	} else {
		m.addgrace_credits_total = &i
	}
}

// AddedGraceCreditsTotal returns the value that was added to the "grace_credits_total" field in this mutation.
func (m *TenantRenderConfigMutation) AddedGraceCreditsTotal() (r int, exists bool) {
	v := m.addgrace_credits_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetGraceCreditsTotal resets all changes to the "grace_credits_total" field.
func (m *TenantRenderConfigMutation) ResetGraceCreditsTotal() {
	m.grace_credits_total = nil
	m.addgrace_credits_total = nil
}

// SetGraceCreditsUsed sets the "grace_credits_used" field.
func (m *TenantRenderConfigMutation) SetGraceCreditsUsed(i int) {
	m.grace_credits_used = &i
	m.addgrace_credits_used = nil
}

// GraceCreditsUsed returns the value of the "grace_credits_used" field in the mutation.
func (m *TenantRenderConfigMutation) GraceCreditsUsed() (r int, exists bool) {
	v := m.grace_credits_used
	if v == nil {
		return
	}
	return *v, true
}

// OldGraceCreditsUsed returns the old "grace_credits_used" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldGraceCreditsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraceCreditsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraceCreditsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraceCreditsUsed: %w", err)
	}
	return oldValue.GraceCreditsUsed, nil
}

// AddGraceCreditsUsed adds i to the "grace_credits_used" field.
func (m *TenantRenderConfigMutation) AddGraceCreditsUsed(i int) {
	if m.addgrace_credits_used != nil {
		*m.addgrace_credits_used += i
	} else {
		m.addgrace_credits_used = &i
	}
}

// AddedGraceCreditsUsed returns the value that was added to the "grace_credits_used" field in this mutation.
func (m *TenantRenderConfigMutation) AddedGraceCreditsUsed() (r int, exists bool) {
	v := m.addgrace_credits_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetGraceCreditsUsed resets all changes to the "grace_credits_used" field.
func (m *TenantRenderConfigMutation) ResetGraceCreditsUsed() {
	m.grace_credits_used = nil
	m.addgrace_credits_used = nil
}

// SetRenderingEnabled sets the "rendering_enabled" field.
func (m *TenantRenderConfigMutation) SetRenderingEnabled(b bool) {
	m.rendering_enabled = &b
}

// RenderingEnabled returns the value of the "rendering_enabled" field in the mutation.
func (m *TenantRenderConfigMutation) RenderingEnabled() (r bool, exists bool) {
	v := m.rendering_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderingEnabled returns the old "rendering_enabled" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldRenderingEnabled(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderingEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderingEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderingEnabled: %w", err)
	}
	return oldValue.RenderingEnabled, nil
}

// ClearRenderingEnabled clears the value of the "rendering_enabled" field.
func (m *TenantRenderConfigMutation) ClearRenderingEnabled() {
	m.rendering_enabled = nil
	m.clearedFields[tenantrenderconfig.FieldRenderingEnabled] = struct{}{}
}

// RenderingEnabledCleared returns if the "rendering_enabled" field was cleared in this mutation.
func (m *TenantRenderConfigMutation) RenderingEnabledCleared() bool {
	_, ok := m.clearedFields[tenantrenderconfig.FieldRenderingEnabled]
	return ok
}

// ResetRenderingEnabled resets all changes to the "rendering_enabled" field.
func (m *TenantRenderConfigMutation) ResetRenderingEnabled() {
	m.rendering_enabled = nil
	delete(m.clearedFields, tenantrenderconfig.FieldRenderingEnabled)
}

// SetLegacyAiEnabled sets the "legacy_ai_enabled" field.
func (m *TenantRenderConfigMutation) SetLegacyAiEnabled(b bool) {
	m.legacy_ai_enabled = &b
}

// LegacyAiEnabled returns the value of the "legacy_ai_enabled" field in the mutation.
func (m *TenantRenderConfigMutation) LegacyAiEnabled() (r bool, exists bool) {
	v := m.legacy_ai_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyAiEnabled returns the old "legacy_ai_enabled" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldLegacyAiEnabled(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyAiEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyAiEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyAiEnabled: %w", err)
	}
	return oldValue.LegacyAiEnabled, nil
}

// ClearLegacyAiEnabled clears the value of the "legacy_ai_enabled" field.
func (m *TenantRenderConfigMutation) ClearLegacyAiEnabled() {
	m.legacy_ai_enabled = nil
	m.clearedFields[tenantrenderconfig.FieldLegacyAiEnabled] = struct{}{}
}

// LegacyAiEnabledCleared returns if the "legacy_ai_enabled" field was cleared in this mutation.
func (m *TenantRenderConfigMutation) LegacyAiEnabledCleared() bool {
	_, ok := m.clearedFields[tenantrenderconfig.FieldLegacyAiEnabled]
	return ok
}

// ResetLegacyAiEnabled resets all changes to the "legacy_ai_enabled" field.
func (m *TenantRenderConfigMutation) ResetLegacyAiEnabled() {
	m.legacy_ai_enabled = nil
	delete(m.clearedFields, tenantrenderconfig.FieldLegacyAiEnabled)
}

// SetRenderingMaxPerDay sets the "rendering_max_per_day" field.
func (m *TenantRenderConfigMutation) SetRenderingMaxPerDay(i int) {
	m.rendering_max_per_day = &i
	m.addrendering_max_per_day = nil
}

// RenderingMaxPerDay returns the value of the "rendering_max_per_day" field in the mutation.
func (m *TenantRenderConfigMutation) RenderingMaxPerDay() (r int, exists bool) {
	v := m.rendering_max_per_day
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderingMaxPerDay returns the old "rendering_max_per_day" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldRenderingMaxPerDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderingMaxPerDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderingMaxPerDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderingMaxPerDay: %w", err)
	}
	return oldValue.RenderingMaxPerDay, nil
}

// AddRenderingMaxPerDay adds i to the "rendering_max_per_day" field.
func (m *TenantRenderConfigMutation) AddRenderingMaxPerDay(i int) {
	if m.addrendering_max_per_day != nil {
		*m.addrendering_max_per_day += i
	} else {
		m.addrendering_max_per_day = &i
	}
}

// AddedRenderingMaxPerDay returns the value that was added to the "rendering_max_per_day" field in this mutation.
func (m *TenantRenderConfigMutation) AddedRenderingMaxPerDay() (r int, exists bool) {
	v := m.addrendering_max_per_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetRenderingMaxPerDay resets all changes to the "rendering_max_per_day" field.
func (m *TenantRenderConfigMutation) ResetRenderingMaxPerDay() {
	m.rendering_max_per_day = nil
	m.addrendering_max_per_day = nil
}

// SetStylePreferences sets the "style_preferences" field.
func (m *TenantRenderConfigMutation) SetStylePreferences(jm json.RawMessage) {
	m.style_preferences = &jm
	m.appendstyle_preferences = nil
}

// StylePreferences returns the value of the "style_preferences" field in the mutation.
func (m *TenantRenderConfigMutation) StylePreferences() (r json.RawMessage, exists bool) {
	v := m.style_preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldStylePreferences returns the old "style_preferences" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldStylePreferences(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStylePreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStylePreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStylePreferences: %w", err)
	}
	return oldValue.StylePreferences, nil
}

// AppendStylePreferences adds jm to the "style_preferences" field.
func (m *TenantRenderConfigMutation) AppendStylePreferences(jm json.RawMessage) {
	m.appendstyle_preferences = append(m.appendstyle_preferences, jm...)
}

// AppendedStylePreferences returns the list of values that were appended to the "style_preferences" field in this mutation.
func (m *TenantRenderConfigMutation) AppendedStylePreferences() (json.RawMessage, bool) {
	if len(m.appendstyle_preferences) == 0 {
		return nil, false
	}
	return m.appendstyle_preferences, true
}

// ClearStylePreferences clears the value of the "style_preferences" field.
func (m *TenantRenderConfigMutation) ClearStylePreferences() {
	m.style_preferences = nil
	m.appendstyle_preferences = nil
	m.clearedFields[tenantrenderconfig.FieldStylePreferences] = struct{}{}
}

// StylePreferencesCleared returns if the "style_preferences" field was cleared in this mutation.
func (m *TenantRenderConfigMutation) StylePreferencesCleared() bool {
	_, ok := m.clearedFields[tenantrenderconfig.FieldStylePreferences]
	return ok
}

// ResetStylePreferences resets all changes to the "style_preferences" field.
func (m *TenantRenderConfigMutation) ResetStylePreferences() {
	m.style_preferences = nil
	m.appendstyle_preferences = nil
	delete(m.clearedFields, tenantrenderconfig.FieldStylePreferences)
}

// SetIndustryKey sets the "industry_key" field.
func (m *TenantRenderConfigMutation) SetIndustryKey(s string) {
	m.industry_key = &s
}

// IndustryKey returns the value of the "industry_key" field in the mutation.
func (m *TenantRenderConfigMutation) IndustryKey() (r string, exists bool) {
	v := m.industry_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustryKey returns the old "industry_key" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldIndustryKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustryKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustryKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustryKey: %w", err)
	}
	return oldValue.IndustryKey, nil
}

// ClearIndustryKey clears the value of the "industry_key" field.
func (m *TenantRenderConfigMutation) ClearIndustryKey() {
	m.industry_key = nil
	m.clearedFields[tenantrenderconfig.FieldIndustryKey] = struct{}{}
}

// IndustryKeyCleared returns if the "industry_key" field was cleared in this mutation.
func (m *TenantRenderConfigMutation) IndustryKeyCleared() bool {
	_, ok := m.clearedFields[tenantrenderconfig.FieldIndustryKey]
	return ok
}

// ResetIndustryKey resets all changes to the "industry_key" field.
func (m *TenantRenderConfigMutation) ResetIndustryKey() {
	m.industry_key = nil
	delete(m.clearedFields, tenantrenderconfig.FieldIndustryKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantRenderConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantRenderConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantRenderConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantRenderConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantRenderConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantRenderConfig entity.
// If the TenantRenderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantRenderConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantRenderConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantRenderConfigMutation builder.
func (m *TenantRenderConfigMutation) Where(ps ...predicate.TenantRenderConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantRenderConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantRenderConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantRenderConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantRenderConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantRenderConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantRenderConfig).
func (m *TenantRenderConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantRenderConfigMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, tenantrenderconfig.FieldTenantID)
	}
	if m.plan_tier != nil {
		fields = append(fields, tenantrenderconfig.FieldPlanTier)
	}
	if m.grace_credits_total != nil {
		fields = append(fields, tenantrenderconfig.FieldGraceCreditsTotal)
	}
	if m.grace_credits_used != nil {
		fields = append(fields, tenantrenderconfig.FieldGraceCreditsUsed)
	}
	if m.rendering_enabled != nil {
		fields = append(fields, tenantrenderconfig.FieldRenderingEnabled)
	}
	if m.legacy_ai_enabled != nil {
		fields = append(fields, tenantrenderconfig.FieldLegacyAiEnabled)
	}
	if m.rendering_max_per_day != nil {
		fields = append(fields, tenantrenderconfig.FieldRenderingMaxPerDay)
	}
	if m.style_preferences != nil {
		fields = append(fields, tenantrenderconfig.FieldStylePreferences)
	}
	if m.industry_key != nil {
		fields = append(fields, tenantrenderconfig.FieldIndustryKey)
	}
	if m.created_at != nil {
		fields = append(fields, tenantrenderconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantrenderconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantRenderConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantrenderconfig.FieldTenantID:
		return m.TenantID()
	case tenantrenderconfig.FieldPlanTier:
		return m.PlanTier()
	case tenantrenderconfig.FieldGraceCreditsTotal:
		return m.GraceCreditsTotal()
	case tenantrenderconfig.FieldGraceCreditsUsed:
		return m.GraceCreditsUsed()
	case tenantrenderconfig.FieldRenderingEnabled:
		return m.RenderingEnabled()
	case tenantrenderconfig.FieldLegacyAiEnabled:
		return m.LegacyAiEnabled()
	case tenantrenderconfig.FieldRenderingMaxPerDay:
		return m.RenderingMaxPerDay()
	case tenantrenderconfig.FieldStylePreferences:
		return m.StylePreferences()
	case tenantrenderconfig.FieldIndustryKey:
		return m.IndustryKey()
	case tenantrenderconfig.FieldCreatedAt:
		return m.CreatedAt()
	case tenantrenderconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantRenderConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantrenderconfig.FieldTenantID:
		return m.OldTenantID(ctx)
	case tenantrenderconfig.FieldPlanTier:
		return m.OldPlanTier(ctx)
	case tenantrenderconfig.FieldGraceCreditsTotal:
		return m.OldGraceCreditsTotal(ctx)
	case tenantrenderconfig.FieldGraceCreditsUsed:
		return m.OldGraceCreditsUsed(ctx)
	case tenantrenderconfig.FieldRenderingEnabled:
		return m.OldRenderingEnabled(ctx)
	case tenantrenderconfig.FieldLegacyAiEnabled:
		return m.OldLegacyAiEnabled(ctx)
	case tenantrenderconfig.FieldRenderingMaxPerDay:
		return m.OldRenderingMaxPerDay(ctx)
	case tenantrenderconfig.FieldStylePreferences:
		return m.OldStylePreferences(ctx)
	case tenantrenderconfig.FieldIndustryKey:
		return m.OldIndustryKey(ctx)
	case tenantrenderconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenantrenderconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantRenderConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantRenderConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantrenderconfig.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case tenantrenderconfig.FieldPlanTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanTier(v)
		return nil
	case tenantrenderconfig.FieldGraceCreditsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraceCreditsTotal(v)
		return nil
	case tenantrenderconfig.FieldGraceCreditsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraceCreditsUsed(v)
		return nil
	case tenantrenderconfig.FieldRenderingEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderingEnabled(v)
		return nil
	case tenantrenderconfig.FieldLegacyAiEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyAiEnabled(v)
		return nil
	case tenantrenderconfig.FieldRenderingMaxPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderingMaxPerDay(v)
		return nil
	case tenantrenderconfig.FieldStylePreferences:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStylePreferences(v)
		return nil
	case tenantrenderconfig.FieldIndustryKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustryKey(v)
		return nil
	case tenantrenderconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenantrenderconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantRenderConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantRenderConfigMutation) AddedFields() []string {
	var fields []string
	if m.addgrace_credits_total != nil {
		fields = append(fields, tenantrenderconfig.FieldGraceCreditsTotal)
	}
	if m.addgrace_credits_used != nil {
		fields = append(fields, tenantrenderconfig.FieldGraceCreditsUsed)
	}
	if m.addrendering_max_per_day != nil {
		fields = append(fields, tenantrenderconfig.FieldRenderingMaxPerDay)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantRenderConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenantrenderconfig.FieldGraceCreditsTotal:
		return m.AddedGraceCreditsTotal()
	case tenantrenderconfig.FieldGraceCreditsUsed:
		return m.AddedGraceCreditsUsed()
	case tenantrenderconfig.FieldRenderingMaxPerDay:
		return m.AddedRenderingMaxPerDay()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantRenderConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenantrenderconfig.FieldGraceCreditsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGraceCreditsTotal(v)
		return nil
	case tenantrenderconfig.FieldGraceCreditsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGraceCreditsUsed(v)
		return nil
	case tenantrenderconfig.FieldRenderingMaxPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRenderingMaxPerDay(v)
		return nil
	}
	return fmt.Errorf("unknown TenantRenderConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantRenderConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenantrenderconfig.FieldRenderingEnabled) {
		fields = append(fields, tenantrenderconfig.FieldRenderingEnabled)
	}
	if m.FieldCleared(tenantrenderconfig.FieldLegacyAiEnabled) {
		fields = append(fields, tenantrenderconfig.FieldLegacyAiEnabled)
	}
	if m.FieldCleared(tenantrenderconfig.FieldStylePreferences) {
		fields = append(fields, tenantrenderconfig.FieldStylePreferences)
	}
	if m.FieldCleared(tenantrenderconfig.FieldIndustryKey) {
		fields = append(fields, tenantrenderconfig.FieldIndustryKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantRenderConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantRenderConfigMutation) ClearField(name string) error {
	switch name {
	case tenantrenderconfig.FieldRenderingEnabled:
		m.ClearRenderingEnabled()
		return nil
	case tenantrenderconfig.FieldLegacyAiEnabled:
		m.ClearLegacyAiEnabled()
		return nil
	case tenantrenderconfig.FieldStylePreferences:
		m.ClearStylePreferences()
		return nil
	case tenantrenderconfig.FieldIndustryKey:
		m.ClearIndustryKey()
		return nil
	}
	return fmt.Errorf("unknown TenantRenderConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantRenderConfigMutation) ResetField(name string) error {
	switch name {
	case tenantrenderconfig.FieldTenantID:
		m.ResetTenantID()
		return nil
	case tenantrenderconfig.FieldPlanTier:
		m.ResetPlanTier()
		return nil
	case tenantrenderconfig.FieldGraceCreditsTotal:
		m.ResetGraceCreditsTotal()
		return nil
	case tenantrenderconfig.FieldGraceCreditsUsed:
		m.ResetGraceCreditsUsed()
		return nil
	case tenantrenderconfig.FieldRenderingEnabled:
		m.ResetRenderingEnabled()
		return nil
	case tenantrenderconfig.FieldLegacyAiEnabled:
		m.ResetLegacyAiEnabled()
		return nil
	case tenantrenderconfig.FieldRenderingMaxPerDay:
		m.ResetRenderingMaxPerDay()
		return nil
	case tenantrenderconfig.FieldStylePreferences:
		m.ResetStylePreferences()
		return nil
	case tenantrenderconfig.FieldIndustryKey:
		m.ResetIndustryKey()
		return nil
	case tenantrenderconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenantrenderconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantRenderConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantRenderConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantRenderConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantRenderConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantRenderConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantRenderConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantRenderConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantRenderConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TenantRenderConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantRenderConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TenantRenderConfig edge %s", name)
}
