package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// Integration holds the schema definition for the Integration entity.
// One row per connected external provider (CRM, messaging, payments).
type Integration struct {
	ent.Schema
}

// Fields of the Integration.
func (Integration) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name of the integration"),
		field.Enum("provider").
			Values("zoho", "suitecrm", "espocrm", "orocrm", "whatsapp", "stripe").
			Comment("External provider key (one row per provider)"),
		field.String("description").
			Optional().
			Comment("Admin-provided description"),
		field.Bool("is_active").
			Default(true).
			Comment("Whether the integration is enabled"),
		field.JSON("config", models.IntegrationConfig{}).
			Optional().
			Comment("Provider configuration (base URL, last-sync stamps, flags)"),
		field.JSON("triggers", []string{}).
			Optional().
			Comment("Internal event names this integration reacts to"),
		field.Bool("auto_sync").
			Default(false).
			Comment("Automatically run pull syncs on a schedule"),
		field.Int("sync_interval_mins").
			Default(15).
			Positive().
			Comment("Auto-sync interval in minutes"),
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

// Edges of the Integration.
func (Integration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("secrets", IntegrationSecret.Type).
			Comment("Credentials stored for this integration"),
		edge.To("logs", IntegrationLog.Type).
			Comment("Execution audit trail"),
	}
}

// Indexes of the Integration.
func (Integration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider").
			Unique(),
		index.Fields("is_active"),
		index.Fields("auto_sync"),
	}
}
