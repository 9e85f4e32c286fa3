package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Subscription holds the schema definition for the Subscription entity.
// Rows are upserted from Stripe customer.subscription webhooks, keyed by
// the Stripe object id.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("stripe_subscription_id").
			NotEmpty().
			Unique().
			Comment("Stripe Subscription id"),
		field.String("status").
			NotEmpty().
			Comment("Stripe subscription status (active, past_due, ...)"),
		field.Time("current_period_end").
			Optional().
			Nillable().
			Comment("End of the current billing period"),
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

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("subscriptions").
			Unique(),
	}
}
