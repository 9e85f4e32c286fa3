package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Customer holds the schema definition for the Customer entity.
type Customer struct {
	ent.Schema
}

// Fields of the Customer.
func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Customer name"),
		field.String("email").
			NotEmpty().
			Unique().
			Comment("Primary contact email"),
		field.String("phone").
			Optional().
			Comment("Contact phone number"),
		field.String("company").
			Optional().
			Comment("Company name"),
		field.String("stripe_customer_id").
			Optional().
			Comment("Back-reference to the Stripe customer object"),
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

// Edges of the Customer.
func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deals", Deal.Type),
		edge.To("payments", Payment.Type),
		edge.To("subscriptions", Subscription.Type),
	}
}

// Indexes of the Customer.
func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stripe_customer_id"),
	}
}
