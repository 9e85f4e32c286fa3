// Code generated by ent, DO NOT EDIT.

package integration

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the integration type in the database.
	Label = "integration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldTriggers holds the string denoting the triggers field in the database.
	FieldTriggers = "triggers"
	// FieldAutoSync holds the string denoting the auto_sync field in the database.
	FieldAutoSync = "auto_sync"
	// FieldSyncIntervalMins holds the string denoting the sync_interval_mins field in the database.
	FieldSyncIntervalMins = "sync_interval_mins"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSecrets holds the string denoting the secrets edge name in mutations.
	EdgeSecrets = "secrets"
	// EdgeLogs holds the string denoting the logs edge name in mutations.
	EdgeLogs = "logs"
	// Table holds the table name of the integration in the database.
	Table = "integrations"
	// SecretsTable is the table that holds the secrets relation/edge.
	SecretsTable = "integration_secrets"
	// SecretsInverseTable is the table name for the IntegrationSecret entity.
	// It exists in this package in order to avoid circular dependency with the "integrationsecret" package.
	SecretsInverseTable = "integration_secrets"
	// SecretsColumn is the table column denoting the secrets relation/edge.
	SecretsColumn = "integration_id"
	// LogsTable is the table that holds the logs relation/edge.
	LogsTable = "integration_logs"
	// LogsInverseTable is the table name for the IntegrationLog entity.
	// It exists in this package in order to avoid circular dependency with the "integrationlog" package.
	LogsInverseTable = "integration_logs"
	// LogsColumn is the table column denoting the logs relation/edge.
	LogsColumn = "integration_id"
)

// Columns holds all SQL columns for integration fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldProvider,
	FieldDescription,
	FieldIsActive,
	FieldConfig,
	FieldTriggers,
	FieldAutoSync,
	FieldSyncIntervalMins,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultAutoSync holds the default value on creation for the "auto_sync" field.
	DefaultAutoSync bool
	// DefaultSyncIntervalMins holds the default value on creation for the "sync_interval_mins" field.
	DefaultSyncIntervalMins int
	// SyncIntervalMinsValidator is a validator for the "sync_interval_mins" field. It is called by the builders before save.
	SyncIntervalMinsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Provider defines the type for the "provider" enum field.
type Provider string

// Provider values.
const (
	ProviderZoho     Provider = "zoho"
	ProviderSuitecrm Provider = "suitecrm"
	ProviderEspocrm  Provider = "espocrm"
	ProviderOrocrm   Provider = "orocrm"
	ProviderWhatsapp Provider = "whatsapp"
	ProviderStripe   Provider = "stripe"
)

func (pr Provider) String() string {
	return string(pr)
}

// ProviderValidator is a validator for the "provider" field enum values. It is called by the builders before save.
func ProviderValidator(pr Provider) error {
	switch pr {
	case ProviderZoho, ProviderSuitecrm, ProviderEspocrm, ProviderOrocrm, ProviderWhatsapp, ProviderStripe:
		return nil
	default:
		return fmt.Errorf("integration: invalid enum value for provider field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Integration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByAutoSync orders the results by the auto_sync field.
func ByAutoSync(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoSync, opts...).ToFunc()
}

// BySyncIntervalMins orders the results by the sync_interval_mins field.
func BySyncIntervalMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncIntervalMins, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySecretsCount orders the results by secrets count.
func BySecretsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSecretsStep(), opts...)
	}
}

// BySecrets orders the results by secrets terms.
func BySecrets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSecretsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLogsCount orders the results by logs count.
func ByLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogsStep(), opts...)
	}
}

// ByLogs orders the results by logs terms.
func ByLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSecretsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SecretsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SecretsTable, SecretsColumn),
	)
}
func newLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
	)
}
