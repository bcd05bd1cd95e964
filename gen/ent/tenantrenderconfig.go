// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantrenderconfig"
	"github.com/google/uuid"
)

// TenantRenderConfig is the model entity for the TenantRenderConfig schema.
type TenantRenderConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// PlanTier holds the value of the "plan_tier" field.
	PlanTier string `json:"plan_tier,omitempty"`
	// GraceCreditsTotal holds the value of the "grace_credits_total" field.
	GraceCreditsTotal int `json:"grace_credits_total,omitempty"`
	// GraceCreditsUsed holds the value of the "grace_credits_used" field.
	GraceCreditsUsed int `json:"grace_credits_used,omitempty"`
	// RenderingEnabled holds the value of the "rendering_enabled" field.
	RenderingEnabled *bool `json:"rendering_enabled,omitempty"`
	// LegacyAiEnabled holds the value of the "legacy_ai_enabled" field.
	LegacyAiEnabled *bool `json:"legacy_ai_enabled,omitempty"`
	// RenderingMaxPerDay holds the value of the "rendering_max_per_day" field.
	RenderingMaxPerDay int `json:"rendering_max_per_day,omitempty"`
	// StylePreferences holds the value of the "style_preferences" field.
	StylePreferences json.RawMessage `json:"style_preferences,omitempty"`
	// IndustryKey holds the value of the "industry_key" field.
	IndustryKey string `json:"industry_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TenantRenderConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenantrenderconfig.FieldStylePreferences:
			values[i] = new([]byte)
		case tenantrenderconfig.FieldRenderingEnabled, tenantrenderconfig.FieldLegacyAiEnabled:
			values[i] = new(sql.NullBool)
		case tenantrenderconfig.FieldGraceCreditsTotal, tenantrenderconfig.FieldGraceCreditsUsed, tenantrenderconfig.FieldRenderingMaxPerDay:
			values[i] = new(sql.NullInt64)
		case tenantrenderconfig.FieldPlanTier, tenantrenderconfig.FieldIndustryKey:
			values[i] = new(sql.NullString)
		case tenantrenderconfig.FieldCreatedAt, tenantrenderconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tenantrenderconfig.FieldID, tenantrenderconfig.FieldTenantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TenantRenderConfig fields.
func (_m *TenantRenderConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenantrenderconfig.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tenantrenderconfig.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case tenantrenderconfig.FieldPlanTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_tier", values[i])
			} else if value.Valid {
				_m.PlanTier = value.String
			}
		case tenantrenderconfig.FieldGraceCreditsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grace_credits_total", values[i])
			} else if value.Valid {
				_m.GraceCreditsTotal = int(value.Int64)
			}
		case tenantrenderconfig.FieldGraceCreditsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grace_credits_used", values[i])
			} else if value.Valid {
				_m.GraceCreditsUsed = int(value.Int64)
			}
		case tenantrenderconfig.FieldRenderingEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field rendering_enabled", values[i])
			} else if value.Valid {
				_m.RenderingEnabled = new(bool)
				*_m.RenderingEnabled = value.Bool
			}
		case tenantrenderconfig.FieldLegacyAiEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_ai_enabled", values[i])
			} else if value.Valid {
				_m.LegacyAiEnabled = new(bool)
				*_m.LegacyAiEnabled = value.Bool
			}
		case tenantrenderconfig.FieldRenderingMaxPerDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rendering_max_per_day", values[i])
			} else if value.Valid {
				_m.RenderingMaxPerDay = int(value.Int64)
			}
		case tenantrenderconfig.FieldStylePreferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field style_preferences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StylePreferences); err != nil {
					return fmt.Errorf("unmarshal field style_preferences: %w", err)
				}
			}
		case tenantrenderconfig.FieldIndustryKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry_key", values[i])
			} else if value.Valid {
				_m.IndustryKey = value.String
			}
		case tenantrenderconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenantrenderconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TenantRenderConfig.
// This includes values selected through modifiers, order, etc.
func (_m *TenantRenderConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TenantRenderConfig.
// Note that you need to call TenantRenderConfig.Unwrap() before calling this method if this TenantRenderConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TenantRenderConfig) Update() *TenantRenderConfigUpdateOne {
	return NewTenantRenderConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TenantRenderConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TenantRenderConfig) Unwrap() *TenantRenderConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TenantRenderConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TenantRenderConfig) String() string {
	var builder strings.Builder
	builder.WriteString("TenantRenderConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("plan_tier=")
	builder.WriteString(_m.PlanTier)
	builder.WriteString(", ")
	builder.WriteString("grace_credits_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraceCreditsTotal))
	builder.WriteString(", ")
	builder.WriteString("grace_credits_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraceCreditsUsed))
	builder.WriteString(", ")
	if v := _m.RenderingEnabled; v != nil {
		builder.WriteString("rendering_enabled=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LegacyAiEnabled; v != nil {
		builder.WriteString("legacy_ai_enabled=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("rendering_max_per_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.RenderingMaxPerDay))
	builder.WriteString(", ")
	builder.WriteString("style_preferences=")
	builder.WriteString(fmt.Sprintf("%v", _m.StylePreferences))
	builder.WriteString(", ")
	builder.WriteString("industry_key=")
	builder.WriteString(_m.IndustryKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TenantRenderConfigs is a parsable slice of TenantRenderConfig.
type TenantRenderConfigs []*TenantRenderConfig
