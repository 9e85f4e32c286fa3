package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IntegrationLog holds the schema definition for the IntegrationLog entity.
// Append-only audit trail of sync runs and inbound/outbound webhook traffic.
type IntegrationLog struct {
	ent.Schema
}

// Fields of the IntegrationLog.
func (IntegrationLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("integration_id").
			Comment("Owning integration"),
		field.String("event").
			NotEmpty().
			Comment("Dotted event name (zoho.sync, suitecrm.webhook, ...)"),
		field.Enum("status").
			Values("success", "failed").
			Comment("Outcome of the logged operation"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Operation input / inbound payload"),
		field.JSON("response", map[string]interface{}{}).
			Optional().
			Comment("Operation output / upstream response summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the IntegrationLog.
func (IntegrationLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("integration", Integration.Type).
			Ref("logs").
			Unique().
			Required().
			Field("integration_id"),
	}
}

// Indexes of the IntegrationLog.
func (IntegrationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("integration_id"),
		index.Fields("event"),
		index.Fields("created_at"),
	}
}
