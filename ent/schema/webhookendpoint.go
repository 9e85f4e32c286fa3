package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEndpoint holds the schema definition for the WebhookEndpoint entity.
// A subscriber URL registered to receive internal event notifications.
type WebhookEndpoint struct {
	ent.Schema
}

// Fields of the WebhookEndpoint.
func (WebhookEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("url").
			NotEmpty().
			Comment("Subscriber endpoint URL"),
		field.JSON("events", []string{}).
			Comment("Event names this endpoint subscribes to"),
		field.String("secret").
			NotEmpty().
			Sensitive().
			Comment("Server-generated secret for HMAC signature verification"),
		field.String("description").
			Optional().
			Comment("Admin-provided description"),
		field.Bool("is_active").
			Default(true).
			Comment("Whether deliveries are attempted"),
		field.String("created_by").
			Optional().
			Comment("Identity of the admin who registered the endpoint"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the WebhookEndpoint.
func (WebhookEndpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deliveries", WebhookDelivery.Type).
			Comment("Delivery attempts to this endpoint"),
	}
}

// Indexes of the WebhookEndpoint.
func (WebhookEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("created_at"),
	}
}
