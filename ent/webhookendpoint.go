// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mateovidal/crmbridge/ent/webhookendpoint"
)

// WebhookEndpoint is the model entity for the WebhookEndpoint schema.
type WebhookEndpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subscriber endpoint URL
	URL string `json:"url,omitempty"`
	// Event names this endpoint subscribes to
	Events []string `json:"events,omitempty"`
	// Server-generated secret for HMAC signature verification
	Secret string `json:"-"`
	// Admin-provided description
	Description string `json:"description,omitempty"`
	// Whether deliveries are attempted
	IsActive bool `json:"is_active,omitempty"`
	// Identity of the admin who registered the endpoint
	CreatedBy string `json:"created_by,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebhookEndpointQuery when eager-loading is set.
	Edges        WebhookEndpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WebhookEndpointEdges holds the relations/edges for other nodes in the graph.
type WebhookEndpointEdges struct {
	// Delivery attempts to this endpoint
	Deliveries []*WebhookDelivery `json:"deliveries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DeliveriesOrErr returns the Deliveries value or an error if the edge
// was not loaded in eager-loading.
func (e WebhookEndpointEdges) DeliveriesOrErr() ([]*WebhookDelivery, error) {
	if e.loadedTypes[0] {
		return e.Deliveries, nil
	}
	return nil, &NotLoadedError{edge: "deliveries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookEndpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookendpoint.FieldEvents:
			values[i] = new([]byte)
		case webhookendpoint.FieldIsActive:
			values[i] = new(sql.NullBool)
		case webhookendpoint.FieldID:
			values[i] = new(sql.NullInt64)
		case webhookendpoint.FieldURL, webhookendpoint.FieldSecret, webhookendpoint.FieldDescription, webhookendpoint.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case webhookendpoint.FieldCreatedAt, webhookendpoint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookEndpoint fields.
func (_m *WebhookEndpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookendpoint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case webhookendpoint.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case webhookendpoint.FieldEvents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field events", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Events); err != nil {
					return fmt.Errorf("unmarshal field events: %w", err)
				}
			}
		case webhookendpoint.FieldSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret", values[i])
			} else if value.Valid {
				_m.Secret = value.String
			}
		case webhookendpoint.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case webhookendpoint.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case webhookendpoint.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case webhookendpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case webhookendpoint.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookEndpoint.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookEndpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeliveries queries the "deliveries" edge of the WebhookEndpoint entity.
func (_m *WebhookEndpoint) QueryDeliveries() *WebhookDeliveryQuery {
	return NewWebhookEndpointClient(_m.config).QueryDeliveries(_m)
}

// Update returns a builder for updating this WebhookEndpoint.
// Note that you need to call WebhookEndpoint.Unwrap() before calling this method if this WebhookEndpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookEndpoint) Update() *WebhookEndpointUpdateOne {
	return NewWebhookEndpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookEndpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookEndpoint) Unwrap() *WebhookEndpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookEndpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookEndpoint) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookEndpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("events=")
	builder.WriteString(fmt.Sprintf("%v", _m.Events))
	builder.WriteString(", ")
	builder.WriteString("secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookEndpoints is a parsable slice of WebhookEndpoint.
type WebhookEndpoints []*WebhookEndpoint
