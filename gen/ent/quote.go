// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/google/uuid"
)

// Quote is the model entity for the Quote schema.
type Quote struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// Images holds the value of the "images" field.
	Images json.RawMessage `json:"images,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// CustomerEmail holds the value of the "customer_email" field.
	CustomerEmail string `json:"customer_email,omitempty"`
	// RenderOptIn holds the value of the "render_opt_in" field.
	RenderOptIn bool `json:"render_opt_in,omitempty"`
	// RenderStatus holds the value of the "render_status" field.
	RenderStatus *string `json:"render_status,omitempty"`
	// RenderImageURL holds the value of the "render_image_url" field.
	RenderImageURL *string `json:"render_image_url,omitempty"`
	// RenderPrompt holds the value of the "render_prompt" field.
	RenderPrompt *string `json:"render_prompt,omitempty"`
	// RenderError holds the value of the "render_error" field.
	RenderError *string `json:"render_error,omitempty"`
	// RenderedAt holds the value of the "rendered_at" field.
	RenderedAt *time.Time `json:"rendered_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuoteQuery when eager-loading is set.
	Edges        QuoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuoteEdges holds the relations/edges for other nodes in the graph.
type QuoteEdges struct {
	// RenderJobs holds the value of the render_jobs edge.
	RenderJobs []*RenderJob `json:"render_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RenderJobsOrErr returns the RenderJobs value or an error if the edge
// was not loaded in eager-loading.
func (e QuoteEdges) RenderJobsOrErr() ([]*RenderJob, error) {
	if e.loadedTypes[0] {
		return e.RenderJobs, nil
	}
	return nil, &NotLoadedError{edge: "render_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quote.FieldImages:
			values[i] = new([]byte)
		case quote.FieldRenderOptIn:
			values[i] = new(sql.NullBool)
		case quote.FieldCustomerName, quote.FieldCustomerEmail, quote.FieldRenderStatus, quote.FieldRenderImageURL, quote.FieldRenderPrompt, quote.FieldRenderError:
			values[i] = new(sql.NullString)
		case quote.FieldRenderedAt, quote.FieldCreatedAt, quote.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case quote.FieldID, quote.FieldTenantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quote fields.
func (_m *Quote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quote.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quote.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case quote.FieldImages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field images", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Images); err != nil {
					return fmt.Errorf("unmarshal field images: %w", err)
				}
			}
		case quote.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case quote.FieldCustomerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_email", values[i])
			} else if value.Valid {
				_m.CustomerEmail = value.String
			}
		case quote.FieldRenderOptIn:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field render_opt_in", values[i])
			} else if value.Valid {
				_m.RenderOptIn = value.Bool
			}
		case quote.FieldRenderStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field render_status", values[i])
			} else if value.Valid {
				_m.RenderStatus = new(string)
				*_m.RenderStatus = value.String
			}
		case quote.FieldRenderImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field render_image_url", values[i])
			} else if value.Valid {
				_m.RenderImageURL = new(string)
				*_m.RenderImageURL = value.String
			}
		case quote.FieldRenderPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field render_prompt", values[i])
			} else if value.Valid {
				_m.RenderPrompt = new(string)
				*_m.RenderPrompt = value.String
			}
		case quote.FieldRenderError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field render_error", values[i])
			} else if value.Valid {
				_m.RenderError = new(string)
				*_m.RenderError = value.String
			}
		case quote.FieldRenderedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rendered_at", values[i])
			} else if value.Valid {
				_m.RenderedAt = new(time.Time)
				*_m.RenderedAt = value.Time
			}
		case quote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case quote.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Quote.
// This includes values selected through modifiers, order, etc.
func (_m *Quote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRenderJobs queries the "render_jobs" edge of the Quote entity.
func (_m *Quote) QueryRenderJobs() *RenderJobQuery {
	return NewQuoteClient(_m.config).QueryRenderJobs(_m)
}

// Update returns a builder for updating this Quote.
// Note that you need to call Quote.Unwrap() before calling this method if this Quote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Quote) Update() *QuoteUpdateOne {
	return NewQuoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Quote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Quote) Unwrap() *Quote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Quote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Quote) String() string {
	var builder strings.Builder
	builder.WriteString("Quote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("images=")
	builder.WriteString(fmt.Sprintf("%v", _m.Images))
	builder.WriteString(", ")
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	builder.WriteString("customer_email=")
	builder.WriteString(_m.CustomerEmail)
	builder.WriteString(", ")
	builder.WriteString("render_opt_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.RenderOptIn))
	builder.WriteString(", ")
	if v := _m.RenderStatus; v != nil {
		builder.WriteString("render_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RenderImageURL; v != nil {
		builder.WriteString("render_image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RenderPrompt; v != nil {
		builder.WriteString("render_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RenderError; v != nil {
		builder.WriteString("render_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RenderedAt; v != nil {
		builder.WriteString("rendered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Quotes is a parsable slice of Quote.
type Quotes []*Quote
