// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
)

// IntegrationSecret is the model entity for the IntegrationSecret schema.
type IntegrationSecret struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning integration
	IntegrationID int `json:"integration_id,omitempty"`
	// Credential name (access_token, api_key, ...)
	Key string `json:"key,omitempty"`
	// AES-GCM encrypted credential value, base64 encoded
	Ciphertext string `json:"-"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntegrationSecretQuery when eager-loading is set.
	Edges        IntegrationSecretEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntegrationSecretEdges holds the relations/edges for other nodes in the graph.
type IntegrationSecretEdges struct {
	// Integration holds the value of the integration edge.
	Integration *Integration `json:"integration,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntegrationOrErr returns the Integration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntegrationSecretEdges) IntegrationOrErr() (*Integration, error) {
	if e.Integration != nil {
		return e.Integration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: integration.Label}
	}
	return nil, &NotLoadedError{edge: "integration"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntegrationSecret) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case integrationsecret.FieldID, integrationsecret.FieldIntegrationID:
			values[i] = new(sql.NullInt64)
		case integrationsecret.FieldKey, integrationsecret.FieldCiphertext:
			values[i] = new(sql.NullString)
		case integrationsecret.FieldCreatedAt, integrationsecret.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntegrationSecret fields.
func (_m *IntegrationSecret) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case integrationsecret.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case integrationsecret.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = int(value.Int64)
			}
		case integrationsecret.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case integrationsecret.FieldCiphertext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ciphertext", values[i])
			} else if value.Valid {
				_m.Ciphertext = value.String
			}
		case integrationsecret.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case integrationsecret.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the IntegrationSecret.
// This includes values selected through modifiers, order, etc.
func (_m *IntegrationSecret) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntegration queries the "integration" edge of the IntegrationSecret entity.
func (_m *IntegrationSecret) QueryIntegration() *IntegrationQuery {
	return NewIntegrationSecretClient(_m.config).QueryIntegration(_m)
}

// Update returns a builder for updating this IntegrationSecret.
// Note that you need to call IntegrationSecret.Unwrap() before calling this method if this IntegrationSecret
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntegrationSecret) Update() *IntegrationSecretUpdateOne {
	return NewIntegrationSecretClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntegrationSecret entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntegrationSecret) Unwrap() *IntegrationSecret {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntegrationSecret is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntegrationSecret) String() string {
	var builder strings.Builder
	builder.WriteString("IntegrationSecret(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("integration_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntegrationID))
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("ciphertext=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IntegrationSecrets is a parsable slice of IntegrationSecret.
type IntegrationSecrets []*IntegrationSecret
