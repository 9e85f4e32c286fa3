// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[5]},
			},
		},
	}
	// DealsColumns holds the columns for the "deals" table.
	DealsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"prospecting", "proposal", "negotiation", "won", "lost"}, Default: "prospecting"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_deals", Type: field.TypeInt, Nullable: true},
	}
	// DealsTable holds the schema information for the "deals" table.
	DealsTable = &schema.Table{
		Name:       "deals",
		Columns:    DealsColumns,
		PrimaryKey: []*schema.Column{DealsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deals_customers_deals",
				Columns:    []*schema.Column{DealsColumns[7]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deal_stage",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[4]},
			},
			{
				Name:    "deal_created_at",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[5]},
			},
		},
	}
	// IntegrationsColumns holds the columns for the "integrations" table.
	IntegrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"zoho", "suitecrm", "espocrm", "orocrm", "whatsapp", "stripe"}},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "triggers", Type: field.TypeJSON, Nullable: true},
		{Name: "auto_sync", Type: field.TypeBool, Default: false},
		{Name: "sync_interval_mins", Type: field.TypeInt, Default: 15},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IntegrationsTable holds the schema information for the "integrations" table.
	IntegrationsTable = &schema.Table{
		Name:       "integrations",
		Columns:    IntegrationsColumns,
		PrimaryKey: []*schema.Column{IntegrationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "integration_provider",
				Unique:  true,
				Columns: []*schema.Column{IntegrationsColumns[2]},
			},
			{
				Name:    "integration_is_active",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[4]},
			},
			{
				Name:    "integration_auto_sync",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[7]},
			},
		},
	}
	// IntegrationLogsColumns holds the columns for the "integration_logs" table.
	IntegrationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failed"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "integration_id", Type: field.TypeInt},
	}
	// IntegrationLogsTable holds the schema information for the "integration_logs" table.
	IntegrationLogsTable = &schema.Table{
		Name:       "integration_logs",
		Columns:    IntegrationLogsColumns,
		PrimaryKey: []*schema.Column{IntegrationLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "integration_logs_integrations_logs",
				Columns:    []*schema.Column{IntegrationLogsColumns[6]},
				RefColumns: []*schema.Column{IntegrationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "integrationlog_integration_id",
				Unique:  false,
				Columns: []*schema.Column{IntegrationLogsColumns[6]},
			},
			{
				Name:    "integrationlog_event",
				Unique:  false,
				Columns: []*schema.Column{IntegrationLogsColumns[1]},
			},
			{
				Name:    "integrationlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{IntegrationLogsColumns[5]},
			},
		},
	}
	// IntegrationSecretsColumns holds the columns for the "integration_secrets" table.
	IntegrationSecretsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString},
		{Name: "ciphertext", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "integration_id", Type: field.TypeInt},
	}
	// IntegrationSecretsTable holds the schema information for the "integration_secrets" table.
	IntegrationSecretsTable = &schema.Table{
		Name:       "integration_secrets",
		Columns:    IntegrationSecretsColumns,
		PrimaryKey: []*schema.Column{IntegrationSecretsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "integration_secrets_integrations_secrets",
				Columns:    []*schema.Column{IntegrationSecretsColumns[5]},
				RefColumns: []*schema.Column{IntegrationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "integrationsecret_integration_id_key",
				Unique:  true,
				Columns: []*schema.Column{IntegrationSecretsColumns[5], IntegrationSecretsColumns[1]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "manual"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "lost"}, Default: "new"},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[6]},
			},
			{
				Name:    "lead_source",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[5]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[8]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stripe_payment_intent_id", Type: field.TypeString, Unique: true},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_payments", Type: field.TypeInt, Nullable: true},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payments_customers_payments",
				Columns:    []*schema.Column{PaymentsColumns[7]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_subscriptions", Type: field.TypeInt, Nullable: true},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_customers_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[6]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString},
		{Name: "event_name", Type: field.TypeString},
		{Name: "request_payload", Type: field.TypeJSON},
		{Name: "response_status", Type: field.TypeInt, Default: 0},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "delivered", Type: field.TypeBool, Default: false},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "endpoint_id", Type: field.TypeInt},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_deliveries_webhook_endpoints_deliveries",
				Columns:    []*schema.Column{WebhookDeliveriesColumns[11]},
				RefColumns: []*schema.Column{WebhookEndpointsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_endpoint_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[11]},
			},
			{
				Name:    "webhookdelivery_event_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[1]},
			},
			{
				Name:    "webhookdelivery_delivered",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[7]},
			},
			{
				Name:    "webhookdelivery_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[8]},
			},
		},
	}
	// WebhookEndpointsColumns holds the columns for the "webhook_endpoints" table.
	WebhookEndpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "url", Type: field.TypeString},
		{Name: "events", Type: field.TypeJSON},
		{Name: "secret", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhookEndpointsTable holds the schema information for the "webhook_endpoints" table.
	WebhookEndpointsTable = &schema.Table{
		Name:       "webhook_endpoints",
		Columns:    WebhookEndpointsColumns,
		PrimaryKey: []*schema.Column{WebhookEndpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookendpoint_is_active",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[5]},
			},
			{
				Name:    "webhookendpoint_created_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		DealsTable,
		IntegrationsTable,
		IntegrationLogsTable,
		IntegrationSecretsTable,
		LeadsTable,
		PaymentsTable,
		SubscriptionsTable,
		WebhookDeliveriesTable,
		WebhookEndpointsTable,
	}
)

func init() {
	DealsTable.ForeignKeys[0].RefTable = CustomersTable
	IntegrationLogsTable.ForeignKeys[0].RefTable = IntegrationsTable
	IntegrationSecretsTable.ForeignKeys[0].RefTable = IntegrationsTable
	PaymentsTable.ForeignKeys[0].RefTable = CustomersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = CustomersTable
	WebhookDeliveriesTable.ForeignKeys[0].RefTable = WebhookEndpointsTable
}
