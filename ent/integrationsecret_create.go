// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
)

// IntegrationSecretCreate is the builder for creating a IntegrationSecret entity.
type IntegrationSecretCreate struct {
	config
	mutation *IntegrationSecretMutation
	hooks    []Hook
}

// SetIntegrationID sets the "integration_id" field.
func (_c *IntegrationSecretCreate) SetIntegrationID(v int) *IntegrationSecretCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *IntegrationSecretCreate) SetKey(v string) *IntegrationSecretCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetCiphertext sets the "ciphertext" field.
func (_c *IntegrationSecretCreate) SetCiphertext(v string) *IntegrationSecretCreate {
	_c.mutation.SetCiphertext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationSecretCreate) SetCreatedAt(v time.Time) *IntegrationSecretCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationSecretCreate) SetNillableCreatedAt(v *time.Time) *IntegrationSecretCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntegrationSecretCreate) SetUpdatedAt(v time.Time) *IntegrationSecretCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntegrationSecretCreate) SetNillableUpdatedAt(v *time.Time) *IntegrationSecretCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIntegration sets the "integration" edge to the Integration entity.
func (_c *IntegrationSecretCreate) SetIntegration(v *Integration) *IntegrationSecretCreate {
	return _c.SetIntegrationID(v.ID)
}

// Mutation returns the IntegrationSecretMutation object of the builder.
func (_c *IntegrationSecretCreate) Mutation() *IntegrationSecretMutation {
	return _c.mutation
}

// Save creates the IntegrationSecret in the database.
func (_c *IntegrationSecretCreate) Save(ctx context.Context) (*IntegrationSecret, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationSecretCreate) SaveX(ctx context.Context) *IntegrationSecret {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationSecretCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationSecretCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationSecretCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integrationsecret.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := integrationsecret.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationSecretCreate) check() error {
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "IntegrationSecret.integration_id"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "IntegrationSecret.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := integrationsecret.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "IntegrationSecret.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ciphertext(); !ok {
		return &ValidationError{Name: "ciphertext", err: errors.New(`ent: missing required field "IntegrationSecret.ciphertext"`)}
	}
	if v, ok := _c.mutation.Ciphertext(); ok {
		if err := integrationsecret.CiphertextValidator(v); err != nil {
			return &ValidationError{Name: "ciphertext", err: fmt.Errorf(`ent: validator failed for field "IntegrationSecret.ciphertext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntegrationSecret.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IntegrationSecret.updated_at"`)}
	}
	if len(_c.mutation.IntegrationIDs()) == 0 {
		return &ValidationError{Name: "integration", err: errors.New(`ent: missing required edge "IntegrationSecret.integration"`)}
	}
	return nil
}

func (_c *IntegrationSecretCreate) sqlSave(ctx context.Context) (*IntegrationSecret, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrationSecretCreate) createSpec() (*IntegrationSecret, *sqlgraph.CreateSpec) {
	var (
		_node = &IntegrationSecret{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integrationsecret.Table, sqlgraph.NewFieldSpec(integrationsecret.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(integrationsecret.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Ciphertext(); ok {
		_spec.SetField(integrationsecret.FieldCiphertext, field.TypeString, value)
		_node.Ciphertext = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integrationsecret.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(integrationsecret.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_node.IntegrationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IntegrationSecretCreateBulk is the builder for creating many IntegrationSecret entities in bulk.
type IntegrationSecretCreateBulk struct {
	config
	err      error
	builders []*IntegrationSecretCreate
}

// Save creates the IntegrationSecret entities in the database.
func (_c *IntegrationSecretCreateBulk) Save(ctx context.Context) ([]*IntegrationSecret, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntegrationSecret, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationSecretMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IntegrationSecretCreateBulk) SaveX(ctx context.Context) []*IntegrationSecret {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationSecretCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationSecretCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
