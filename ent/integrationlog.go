// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationlog"
)

// IntegrationLog is the model entity for the IntegrationLog schema.
type IntegrationLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning integration
	IntegrationID int `json:"integration_id,omitempty"`
	// Dotted event name (zoho.sync, suitecrm.webhook, ...)
	Event string `json:"event,omitempty"`
	// Outcome of the logged operation
	Status integrationlog.Status `json:"status,omitempty"`
	// Operation input / inbound payload
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Operation output / upstream response summary
	Response map[string]interface{} `json:"response,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntegrationLogQuery when eager-loading is set.
	Edges        IntegrationLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntegrationLogEdges holds the relations/edges for other nodes in the graph.
type IntegrationLogEdges struct {
	// Integration holds the value of the integration edge.
	Integration *Integration `json:"integration,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntegrationOrErr returns the Integration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntegrationLogEdges) IntegrationOrErr() (*Integration, error) {
	if e.Integration != nil {
		return e.Integration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: integration.Label}
	}
	return nil, &NotLoadedError{edge: "integration"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntegrationLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case integrationlog.FieldPayload, integrationlog.FieldResponse:
			values[i] = new([]byte)
		case integrationlog.FieldID, integrationlog.FieldIntegrationID:
			values[i] = new(sql.NullInt64)
		case integrationlog.FieldEvent, integrationlog.FieldStatus:
			values[i] = new(sql.NullString)
		case integrationlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntegrationLog fields.
func (_m *IntegrationLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case integrationlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case integrationlog.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = int(value.Int64)
			}
		case integrationlog.FieldEvent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event", values[i])
			} else if value.Valid {
				_m.Event = value.String
			}
		case integrationlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = integrationlog.Status(value.String)
			}
		case integrationlog.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case integrationlog.FieldResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Response); err != nil {
					return fmt.Errorf("unmarshal field response: %w", err)
				}
			}
		case integrationlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IntegrationLog.
// This includes values selected through modifiers, order, etc.
func (_m *IntegrationLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntegration queries the "integration" edge of the IntegrationLog entity.
func (_m *IntegrationLog) QueryIntegration() *IntegrationQuery {
	return NewIntegrationLogClient(_m.config).QueryIntegration(_m)
}

// Update returns a builder for updating this IntegrationLog.
// Note that you need to call IntegrationLog.Unwrap() before calling this method if this IntegrationLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntegrationLog) Update() *IntegrationLogUpdateOne {
	return NewIntegrationLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntegrationLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntegrationLog) Unwrap() *IntegrationLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntegrationLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntegrationLog) String() string {
	var builder strings.Builder
	builder.WriteString("IntegrationLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("integration_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntegrationID))
	builder.WriteString(", ")
	builder.WriteString("event=")
	builder.WriteString(_m.Event)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(fmt.Sprintf("%v", _m.Response))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IntegrationLogs is a parsable slice of IntegrationLog.
type IntegrationLogs []*IntegrationLog
