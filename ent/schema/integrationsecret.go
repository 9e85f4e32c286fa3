package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IntegrationSecret holds the schema definition for the IntegrationSecret entity.
// One credential value per (integration, key), encrypted at rest.
type IntegrationSecret struct {
	ent.Schema
}

// Fields of the IntegrationSecret.
func (IntegrationSecret) Fields() []ent.Field {
	return []ent.Field{
		field.Int("integration_id").
			Comment("Owning integration"),
		field.String("key").
			NotEmpty().
			Comment("Credential name (access_token, api_key, ...)"),
		field.String("ciphertext").
			NotEmpty().
			Sensitive().
			Comment("AES-GCM encrypted credential value, base64 encoded"),
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

// Edges of the IntegrationSecret.
func (IntegrationSecret) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("integration", Integration.Type).
			Ref("secrets").
			Unique().
			Required().
			Field("integration_id"),
	}
}

// Indexes of the IntegrationSecret.
func (IntegrationSecret) Indexes() []ent.Index {
	return []ent.Index{
		// Unique: one value per integration per key (upsert semantics)
		index.Fields("integration_id", "key").Unique(),
	}
}
