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
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// IntegrationCreate is the builder for creating a Integration entity.
type IntegrationCreate struct {
	config
	mutation *IntegrationMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *IntegrationCreate) SetName(v string) *IntegrationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *IntegrationCreate) SetProvider(v integration.Provider) *IntegrationCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IntegrationCreate) SetDescription(v string) *IntegrationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableDescription(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *IntegrationCreate) SetIsActive(v bool) *IntegrationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableIsActive(v *bool) *IntegrationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *IntegrationCreate) SetConfig(v models.IntegrationConfig) *IntegrationCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableConfig(v *models.IntegrationConfig) *IntegrationCreate {
	if v != nil {
		_c.SetConfig(*v)
	}
	return _c
}

// SetTriggers sets the "triggers" field.
func (_c *IntegrationCreate) SetTriggers(v []string) *IntegrationCreate {
	_c.mutation.SetTriggers(v)
	return _c
}

// SetAutoSync sets the "auto_sync" field.
func (_c *IntegrationCreate) SetAutoSync(v bool) *IntegrationCreate {
	_c.mutation.SetAutoSync(v)
	return _c
}

// SetNillableAutoSync sets the "auto_sync" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableAutoSync(v *bool) *IntegrationCreate {
	if v != nil {
		_c.SetAutoSync(*v)
	}
	return _c
}

// SetSyncIntervalMins sets the "sync_interval_mins" field.
func (_c *IntegrationCreate) SetSyncIntervalMins(v int) *IntegrationCreate {
	_c.mutation.SetSyncIntervalMins(v)
	return _c
}

// SetNillableSyncIntervalMins sets the "sync_interval_mins" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableSyncIntervalMins(v *int) *IntegrationCreate {
	if v != nil {
		_c.SetSyncIntervalMins(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationCreate) SetCreatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableCreatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntegrationCreate) SetUpdatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableUpdatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddSecretIDs adds the "secrets" edge to the IntegrationSecret entity by IDs.
func (_c *IntegrationCreate) AddSecretIDs(ids ...int) *IntegrationCreate {
	_c.mutation.AddSecretIDs(ids...)
	return _c
}

// AddSecrets adds the "secrets" edges to the IntegrationSecret entity.
func (_c *IntegrationCreate) AddSecrets(v ...*IntegrationSecret) *IntegrationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSecretIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the IntegrationLog entity by IDs.
func (_c *IntegrationCreate) AddLogIDs(ids ...int) *IntegrationCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the IntegrationLog entity.
func (_c *IntegrationCreate) AddLogs(v ...*IntegrationLog) *IntegrationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the IntegrationMutation object of the builder.
func (_c *IntegrationCreate) Mutation() *IntegrationMutation {
	return _c.mutation
}

// Save creates the Integration in the database.
func (_c *IntegrationCreate) Save(ctx context.Context) (*Integration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationCreate) SaveX(ctx context.Context) *Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := integration.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.AutoSync(); !ok {
		v := integration.DefaultAutoSync
		_c.mutation.SetAutoSync(v)
	}
	if _, ok := _c.mutation.SyncIntervalMins(); !ok {
		v := integration.DefaultSyncIntervalMins
		_c.mutation.SetSyncIntervalMins(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := integration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Integration.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := integration.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Integration.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Integration.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Integration.is_active"`)}
	}
	if _, ok := _c.mutation.AutoSync(); !ok {
		return &ValidationError{Name: "auto_sync", err: errors.New(`ent: missing required field "Integration.auto_sync"`)}
	}
	if _, ok := _c.mutation.SyncIntervalMins(); !ok {
		return &ValidationError{Name: "sync_interval_mins", err: errors.New(`ent: missing required field "Integration.sync_interval_mins"`)}
	}
	if v, ok := _c.mutation.SyncIntervalMins(); ok {
		if err := integration.SyncIntervalMinsValidator(v); err != nil {
			return &ValidationError{Name: "sync_interval_mins", err: fmt.Errorf(`ent: validator failed for field "Integration.sync_interval_mins": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Integration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Integration.updated_at"`)}
	}
	return nil
}

func (_c *IntegrationCreate) sqlSave(ctx context.Context) (*Integration, error) {
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

func (_c *IntegrationCreate) createSpec() (*Integration, *sqlgraph.CreateSpec) {
	var (
		_node = &Integration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integration.Table, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(integration.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(integration.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(integration.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(integration.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Triggers(); ok {
		_spec.SetField(integration.FieldTriggers, field.TypeJSON, value)
		_node.Triggers = value
	}
	if value, ok := _c.mutation.AutoSync(); ok {
		_spec.SetField(integration.FieldAutoSync, field.TypeBool, value)
		_node.AutoSync = value
	}
	if value, ok := _c.mutation.SyncIntervalMins(); ok {
		_spec.SetField(integration.FieldSyncIntervalMins, field.TypeInt, value)
		_node.SyncIntervalMins = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SecretsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   integration.SecretsTable,
			Columns: []string{integration.SecretsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(integrationsecret.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   integration.LogsTable,
			Columns: []string{integration.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(integrationlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IntegrationCreateBulk is the builder for creating many Integration entities in bulk.
type IntegrationCreateBulk struct {
	config
	err      error
	builders []*IntegrationCreate
}

// Save creates the Integration entities in the database.
func (_c *IntegrationCreateBulk) Save(ctx context.Context) ([]*Integration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Integration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationMutation)
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
func (_c *IntegrationCreateBulk) SaveX(ctx context.Context) []*Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
