// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/google/uuid"
)

// RenderJob is the model entity for the RenderJob schema.
type RenderJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// QuoteID holds the value of the "quote_id" field.
	QuoteID uuid.UUID `json:"quote_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RenderJobQuery when eager-loading is set.
	Edges        RenderJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RenderJobEdges holds the relations/edges for other nodes in the graph.
type RenderJobEdges struct {
	// Quote holds the value of the quote edge.
	Quote *Quote `json:"quote,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuoteOrErr returns the Quote value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RenderJobEdges) QuoteOrErr() (*Quote, error) {
	if e.Quote != nil {
		return e.Quote, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quote.Label}
	}
	return nil, &NotLoadedError{edge: "quote"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RenderJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case renderjob.FieldStatus, renderjob.FieldPrompt, renderjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case renderjob.FieldCreatedAt, renderjob.FieldStartedAt, renderjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case renderjob.FieldID, renderjob.FieldTenantID, renderjob.FieldQuoteID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RenderJob fields.
func (_m *RenderJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case renderjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case renderjob.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case renderjob.FieldQuoteID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field quote_id", values[i])
			} else if value != nil {
				_m.QuoteID = *value
			}
		case renderjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case renderjob.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case renderjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case renderjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case renderjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case renderjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RenderJob.
// This includes values selected through modifiers, order, etc.
func (_m *RenderJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuote queries the "quote" edge of the RenderJob entity.
func (_m *RenderJob) QueryQuote() *QuoteQuery {
	return NewRenderJobClient(_m.config).QueryQuote(_m)
}

// Update returns a builder for updating this RenderJob.
// Note that you need to call RenderJob.Unwrap() before calling this method if this RenderJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RenderJob) Update() *RenderJobUpdateOne {
	return NewRenderJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RenderJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RenderJob) Unwrap() *RenderJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RenderJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RenderJob) String() string {
	var builder strings.Builder
	builder.WriteString("RenderJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("quote_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuoteID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// RenderJobs is a parsable slice of RenderJob.
type RenderJobs []*RenderJob
