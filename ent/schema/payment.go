package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Payment holds the schema definition for the Payment entity.
// Rows are upserted from Stripe payment_intent webhooks, keyed by the
// Stripe object id.
type Payment struct {
	ent.Schema
}

// Fields of the Payment.
func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.String("stripe_payment_intent_id").
			NotEmpty().
			Unique().
			Comment("Stripe PaymentIntent id"),
		field.Int64("amount").
			Comment("Amount in the smallest currency unit"),
		field.String("currency").
			NotEmpty().
			Comment("ISO currency code"),
		field.String("status").
			NotEmpty().
			Comment("Stripe payment status"),
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

// Edges of the Payment.
func (Payment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("payments").
			Unique(),
	}
}
