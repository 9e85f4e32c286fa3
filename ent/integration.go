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
	"github.com/mateovidal/crmbridge/pkg/models"
)

// Integration is the model entity for the Integration schema.
type Integration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display name of the integration
	Name string `json:"name,omitempty"`
	// External provider key (one row per provider)
	Provider integration.Provider `json:"provider,omitempty"`
	// Admin-provided description
	Description string `json:"description,omitempty"`
	// Whether the integration is enabled
	IsActive bool `json:"is_active,omitempty"`
	// Provider configuration (base URL, last-sync stamps, flags)
	Config models.IntegrationConfig `json:"config,omitempty"`
	// Internal event names this integration reacts to
	Triggers []string `json:"triggers,omitempty"`
	// Automatically run pull syncs on a schedule
	AutoSync bool `json:"auto_sync,omitempty"`
	// Auto-sync interval in minutes
	SyncIntervalMins int `json:"sync_interval_mins,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntegrationQuery when eager-loading is set.
	Edges        IntegrationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntegrationEdges holds the relations/edges for other nodes in the graph.
type IntegrationEdges struct {
	// Credentials stored for this integration
	Secrets []*IntegrationSecret `json:"secrets,omitempty"`
	// Execution audit trail
	Logs []*IntegrationLog `json:"logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SecretsOrErr returns the Secrets value or an error if the edge
// was not loaded in eager-loading.
func (e IntegrationEdges) SecretsOrErr() ([]*IntegrationSecret, error) {
	if e.loadedTypes[0] {
		return e.Secrets, nil
	}
	return nil, &NotLoadedError{edge: "secrets"}
}

// LogsOrErr returns the Logs value or an error if the edge
// was not loaded in eager-loading.
func (e IntegrationEdges) LogsOrErr() ([]*IntegrationLog, error) {
	if e.loadedTypes[1] {
		return e.Logs, nil
	}
	return nil, &NotLoadedError{edge: "logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Integration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case integration.FieldConfig, integration.FieldTriggers:
			values[i] = new([]byte)
		case integration.FieldIsActive, integration.FieldAutoSync:
			values[i] = new(sql.NullBool)
		case integration.FieldID, integration.FieldSyncIntervalMins:
			values[i] = new(sql.NullInt64)
		case integration.FieldName, integration.FieldProvider, integration.FieldDescription:
			values[i] = new(sql.NullString)
		case integration.FieldCreatedAt, integration.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Integration fields.
func (_m *Integration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case integration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case integration.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case integration.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = integration.Provider(value.String)
			}
		case integration.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case integration.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case integration.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case integration.FieldTriggers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field triggers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Triggers); err != nil {
					return fmt.Errorf("unmarshal field triggers: %w", err)
				}
			}
		case integration.FieldAutoSync:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_sync", values[i])
			} else if value.Valid {
				_m.AutoSync = value.Bool
			}
		case integration.FieldSyncIntervalMins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sync_interval_mins", values[i])
			} else if value.Valid {
				_m.SyncIntervalMins = int(value.Int64)
			}
		case integration.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case integration.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Integration.
// This includes values selected through modifiers, order, etc.
func (_m *Integration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySecrets queries the "secrets" edge of the Integration entity.
func (_m *Integration) QuerySecrets() *IntegrationSecretQuery {
	return NewIntegrationClient(_m.config).QuerySecrets(_m)
}

// QueryLogs queries the "logs" edge of the Integration entity.
func (_m *Integration) QueryLogs() *IntegrationLogQuery {
	return NewIntegrationClient(_m.config).QueryLogs(_m)
}

// Update returns a builder for updating this Integration.
// Note that you need to call Integration.Unwrap() before calling this method if this Integration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Integration) Update() *IntegrationUpdateOne {
	return NewIntegrationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Integration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Integration) Unwrap() *Integration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Integration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Integration) String() string {
	var builder strings.Builder
	builder.WriteString("Integration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("triggers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Triggers))
	builder.WriteString(", ")
	builder.WriteString("auto_sync=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoSync))
	builder.WriteString(", ")
	builder.WriteString("sync_interval_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncIntervalMins))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Integrations is a parsable slice of Integration.
type Integrations []*Integration
