package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Lead contact name"),
		field.String("email").
			Optional().
			Comment("Contact email"),
		field.String("phone").
			Optional().
			Comment("Contact phone number"),
		field.String("company").
			Optional().
			Comment("Company name"),
		field.String("source").
			Default("manual").
			Comment("Where the lead came from (manual, zoho, espocrm, ...)"),
		field.Enum("status").
			Values("new", "contacted", "qualified", "lost").
			Default("new").
			Comment("Lead lifecycle status"),
		field.JSON("custom_fields", map[string]interface{}{}).
			Optional().
			Comment("Tenant-defined extra fields"),
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

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("source"),
		index.Fields("created_at"),
	}
}
