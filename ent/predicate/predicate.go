// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Deal is the predicate function for deal builders.
type Deal func(*sql.Selector)

// Integration is the predicate function for integration builders.
type Integration func(*sql.Selector)

// IntegrationLog is the predicate function for integrationlog builders.
type IntegrationLog func(*sql.Selector)

// IntegrationSecret is the predicate function for integrationsecret builders.
type IntegrationSecret func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)

// WebhookEndpoint is the predicate function for webhookendpoint builders.
type WebhookEndpoint func(*sql.Selector)
