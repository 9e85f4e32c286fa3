// Code generated by ent, DO NOT EDIT.

package integrationsecret

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mateovidal/crmbridge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLTE(FieldID, id))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldIntegrationID, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldKey, v))
}

// Ciphertext applies equality check predicate on the "ciphertext" field. It's identical to CiphertextEQ.
func Ciphertext(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldCiphertext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...int) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldContainsFold(FieldKey, v))
}

// CiphertextEQ applies the EQ predicate on the "ciphertext" field.
func CiphertextEQ(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldCiphertext, v))
}

// CiphertextNEQ applies the NEQ predicate on the "ciphertext" field.
func CiphertextNEQ(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNEQ(FieldCiphertext, v))
}

// CiphertextIn applies the In predicate on the "ciphertext" field.
func CiphertextIn(vs ...string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldIn(FieldCiphertext, vs...))
}

// CiphertextNotIn applies the NotIn predicate on the "ciphertext" field.
func CiphertextNotIn(vs ...string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNotIn(FieldCiphertext, vs...))
}

// CiphertextGT applies the GT predicate on the "ciphertext" field.
func CiphertextGT(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGT(FieldCiphertext, v))
}

// CiphertextGTE applies the GTE predicate on the "ciphertext" field.
func CiphertextGTE(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGTE(FieldCiphertext, v))
}

// CiphertextLT applies the LT predicate on the "ciphertext" field.
func CiphertextLT(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLT(FieldCiphertext, v))
}

// CiphertextLTE applies the LTE predicate on the "ciphertext" field.
func CiphertextLTE(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLTE(FieldCiphertext, v))
}

// CiphertextContains applies the Contains predicate on the "ciphertext" field.
func CiphertextContains(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldContains(FieldCiphertext, v))
}

// CiphertextHasPrefix applies the HasPrefix predicate on the "ciphertext" field.
func CiphertextHasPrefix(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldHasPrefix(FieldCiphertext, v))
}

// CiphertextHasSuffix applies the HasSuffix predicate on the "ciphertext" field.
func CiphertextHasSuffix(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldHasSuffix(FieldCiphertext, v))
}

// CiphertextEqualFold applies the EqualFold predicate on the "ciphertext" field.
func CiphertextEqualFold(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEqualFold(FieldCiphertext, v))
}

// CiphertextContainsFold applies the ContainsFold predicate on the "ciphertext" field.
func CiphertextContainsFold(v string) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldContainsFold(FieldCiphertext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIntegration applies the HasEdge predicate on the "integration" edge.
func HasIntegration() predicate.IntegrationSecret {
	return predicate.IntegrationSecret(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntegrationTable, IntegrationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntegrationWith applies the HasEdge predicate on the "integration" edge with a given conditions (other predicates).
func HasIntegrationWith(preds ...predicate.Integration) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(func(s *sql.Selector) {
		step := newIntegrationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IntegrationSecret) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IntegrationSecret) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IntegrationSecret) predicate.IntegrationSecret {
	return predicate.IntegrationSecret(sql.NotPredicates(p))
}
