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
	"github.com/mateovidal/crmbridge/ent/integrationlog"
)

// IntegrationLogCreate is the builder for creating a IntegrationLog entity.
type IntegrationLogCreate struct {
	config
	mutation *IntegrationLogMutation
	hooks    []Hook
}

// SetIntegrationID sets the "integration_id" field.
func (_c *IntegrationLogCreate) SetIntegrationID(v int) *IntegrationLogCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetEvent sets the "event" field.
func (_c *IntegrationLogCreate) SetEvent(v string) *IntegrationLogCreate {
	_c.mutation.SetEvent(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IntegrationLogCreate) SetStatus(v integrationlog.Status) *IntegrationLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *IntegrationLogCreate) SetPayload(v map[string]interface{}) *IntegrationLogCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *IntegrationLogCreate) SetResponse(v map[string]interface{}) *IntegrationLogCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationLogCreate) SetCreatedAt(v time.Time) *IntegrationLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationLogCreate) SetNillableCreatedAt(v *time.Time) *IntegrationLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetIntegration sets the "integration" edge to the Integration entity.
func (_c *IntegrationLogCreate) SetIntegration(v *Integration) *IntegrationLogCreate {
	return _c.SetIntegrationID(v.ID)
}

// Mutation returns the IntegrationLogMutation object of the builder.
func (_c *IntegrationLogCreate) Mutation() *IntegrationLogMutation {
	return _c.mutation
}

// Save creates the IntegrationLog in the database.
func (_c *IntegrationLogCreate) Save(ctx context.Context) (*IntegrationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationLogCreate) SaveX(ctx context.Context) *IntegrationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integrationlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationLogCreate) check() error {
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "IntegrationLog.integration_id"`)}
	}
	if _, ok := _c.mutation.Event(); !ok {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required field "IntegrationLog.event"`)}
	}
	if v, ok := _c.mutation.Event(); ok {
		if err := integrationlog.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "IntegrationLog.event": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IntegrationLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := integrationlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntegrationLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntegrationLog.created_at"`)}
	}
	if len(_c.mutation.IntegrationIDs()) == 0 {
		return &ValidationError{Name: "integration", err: errors.New(`ent: missing required edge "IntegrationLog.integration"`)}
	}
	return nil
}

func (_c *IntegrationLogCreate) sqlSave(ctx context.Context) (*IntegrationLog, error) {
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

func (_c *IntegrationLogCreate) createSpec() (*IntegrationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &IntegrationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integrationlog.Table, sqlgraph.NewFieldSpec(integrationlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Event(); ok {
		_spec.SetField(integrationlog.FieldEvent, field.TypeString, value)
		_node.Event = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(integrationlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(integrationlog.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(integrationlog.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integrationlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IntegrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integrationlog.IntegrationTable,
			Columns: []string{integrationlog.IntegrationColumn},
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

// IntegrationLogCreateBulk is the builder for creating many IntegrationLog entities in bulk.
type IntegrationLogCreateBulk struct {
	config
	err      error
	builders []*IntegrationLogCreate
}

// Save creates the IntegrationLog entities in the database.
func (_c *IntegrationLogCreateBulk) Save(ctx context.Context) ([]*IntegrationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntegrationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationLogMutation)
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
func (_c *IntegrationLogCreateBulk) SaveX(ctx context.Context) []*IntegrationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
