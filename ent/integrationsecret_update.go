// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
	"github.com/mateovidal/crmbridge/ent/predicate"
)

// IntegrationSecretUpdate is the builder for updating IntegrationSecret entities.
type IntegrationSecretUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationSecretMutation
}

// Where appends a list predicates to the IntegrationSecretUpdate builder.
func (_u *IntegrationSecretUpdate) Where(ps ...predicate.IntegrationSecret) *IntegrationSecretUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *IntegrationSecretUpdate) SetIntegrationID(v int) *IntegrationSecretUpdate {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *IntegrationSecretUpdate) SetNillableIntegrationID(v *int) *IntegrationSecretUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *IntegrationSecretUpdate) SetKey(v string) *IntegrationSecretUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *IntegrationSecretUpdate) SetNillableKey(v *string) *IntegrationSecretUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *IntegrationSecretUpdate) SetCiphertext(v string) *IntegrationSecretUpdate {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetNillableCiphertext sets the "ciphertext" field if the given value is not nil.
func (_u *IntegrationSecretUpdate) SetNillableCiphertext(v *string) *IntegrationSecretUpdate {
	if v != nil {
		_u.SetCiphertext(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationSecretUpdate) SetUpdatedAt(v time.Time) *IntegrationSecretUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the Integration entity.
func (_u *IntegrationSecretUpdate) SetIntegration(v *Integration) *IntegrationSecretUpdate {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the IntegrationSecretMutation object of the builder.
func (_u *IntegrationSecretUpdate) Mutation() *IntegrationSecretMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the Integration entity.
func (_u *IntegrationSecretUpdate) ClearIntegration() *IntegrationSecretUpdate {
	_u.mutation.ClearIntegration()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationSecretUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationSecretUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationSecretUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationSecretUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationSecretUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integrationsecret.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationSecretUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := integrationsecret.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "IntegrationSecret.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ciphertext(); ok {
		if err := integrationsecret.CiphertextValidator(v); err != nil {
			return &ValidationError{Name: "ciphertext", err: fmt.Errorf(`ent: validator failed for field "IntegrationSecret.ciphertext": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntegrationSecret.integration"`)
	}
	return nil
}

func (_u *IntegrationSecretUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integrationsecret.Table, integrationsecret.Columns, sqlgraph.NewFieldSpec(integrationsecret.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(integrationsecret.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(integrationsecret.FieldCiphertext, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integrationsecret.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integrationsecret.IntegrationTable,
			Columns: []string{integrationsecret.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integrationsecret.IntegrationTable,
			Columns: []string{integrationsecret.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationsecret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationSecretUpdateOne is the builder for updating a single IntegrationSecret entity.
type IntegrationSecretUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationSecretMutation
}

// SetIntegrationID sets the "integration_id" field.
func (_u *IntegrationSecretUpdateOne) SetIntegrationID(v int) *IntegrationSecretUpdateOne {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *IntegrationSecretUpdateOne) SetNillableIntegrationID(v *int) *IntegrationSecretUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *IntegrationSecretUpdateOne) SetKey(v string) *IntegrationSecretUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *IntegrationSecretUpdateOne) SetNillableKey(v *string) *IntegrationSecretUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *IntegrationSecretUpdateOne) SetCiphertext(v string) *IntegrationSecretUpdateOne {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetNillableCiphertext sets the "ciphertext" field if the given value is not nil.
func (_u *IntegrationSecretUpdateOne) SetNillableCiphertext(v *string) *IntegrationSecretUpdateOne {
	if v != nil {
		_u.SetCiphertext(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationSecretUpdateOne) SetUpdatedAt(v time.Time) *IntegrationSecretUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the Integration entity.
func (_u *IntegrationSecretUpdateOne) SetIntegration(v *Integration) *IntegrationSecretUpdateOne {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the IntegrationSecretMutation object of the builder.
func (_u *IntegrationSecretUpdateOne) Mutation() *IntegrationSecretMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the Integration entity.
func (_u *IntegrationSecretUpdateOne) ClearIntegration() *IntegrationSecretUpdateOne {
	_u.mutation.ClearIntegration()
	return _u
}

// Where appends a list predicates to the IntegrationSecretUpdate builder.
func (_u *IntegrationSecretUpdateOne) Where(ps ...predicate.IntegrationSecret) *IntegrationSecretUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationSecretUpdateOne) Select(field string, fields ...string) *IntegrationSecretUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntegrationSecret entity.
func (_u *IntegrationSecretUpdateOne) Save(ctx context.Context) (*IntegrationSecret, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationSecretUpdateOne) SaveX(ctx context.Context) *IntegrationSecret {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationSecretUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationSecretUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationSecretUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integrationsecret.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationSecretUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := integrationsecret.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "IntegrationSecret.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ciphertext(); ok {
		if err := integrationsecret.CiphertextValidator(v); err != nil {
			return &ValidationError{Name: "ciphertext", err: fmt.Errorf(`ent: validator failed for field "IntegrationSecret.ciphertext": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntegrationSecret.integration"`)
	}
	return nil
}

func (_u *IntegrationSecretUpdateOne) sqlSave(ctx context.Context) (_node *IntegrationSecret, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integrationsecret.Table, integrationsecret.Columns, sqlgraph.NewFieldSpec(integrationsecret.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntegrationSecret.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integrationsecret.FieldID)
		for _, f := range fields {
			if !integrationsecret.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integrationsecret.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(integrationsecret.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(integrationsecret.FieldCiphertext, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integrationsecret.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integrationsecret.IntegrationTable,
			Columns: []string{integrationsecret.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integrationsecret.IntegrationTable,
			Columns: []string{integrationsecret.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IntegrationSecret{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationsecret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
