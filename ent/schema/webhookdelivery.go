package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery holds the schema definition for the WebhookDelivery entity.
// One row per endpoint per dispatched event; updated in place on redelivery.
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.Int("endpoint_id").
			Comment("Target endpoint"),
		field.String("event_id").
			NotEmpty().
			Comment("Correlation UUID shared by all deliveries of one dispatch"),
		field.String("event_name").
			NotEmpty().
			Comment("Internal event name"),
		field.JSON("request_payload", map[string]interface{}{}).
			Comment("Signed payload envelope sent to the endpoint"),
		field.Int("response_status").
			Default(0).
			Comment("HTTP status of the last attempt (500 synthesized on transport error)"),
		field.String("response_body").
			Optional().
			MaxLen(1000).
			Comment("Response body of the last attempt, truncated to 1000 chars"),
		field.Int("attempt").
			Default(1).
			Comment("Number of delivery attempts so far"),
		field.Bool("delivered").
			Default(false).
			Comment("Whether any attempt got a 2xx response"),
		field.Time("next_retry_at").
			Optional().
			Nillable().
			Comment("When the redelivery sweep should retry; nil when delivered or exhausted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last attempt timestamp"),
	}
}

// Edges of the WebhookDelivery.
func (WebhookDelivery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("endpoint", WebhookEndpoint.Type).
			Ref("deliveries").
			Unique().
			Required().
			Field("endpoint_id"),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("endpoint_id"),
		index.Fields("event_id"),
		index.Fields("delivered"),
		index.Fields("next_retry_at"),
	}
}
