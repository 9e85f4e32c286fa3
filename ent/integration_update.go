// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationlog"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
	"github.com/mateovidal/crmbridge/ent/predicate"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// IntegrationUpdate is the builder for updating Integration entities.
type IntegrationUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationMutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdate) Where(ps ...predicate.Integration) *IntegrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *IntegrationUpdate) SetName(v string) *IntegrationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableName(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *IntegrationUpdate) SetProvider(v integration.Provider) *IntegrationUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableProvider(v *integration.Provider) *IntegrationUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IntegrationUpdate) SetDescription(v string) *IntegrationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableDescription(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IntegrationUpdate) ClearDescription() *IntegrationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *IntegrationUpdate) SetIsActive(v bool) *IntegrationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableIsActive(v *bool) *IntegrationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *IntegrationUpdate) SetConfig(v models.IntegrationConfig) *IntegrationUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableConfig(v *models.IntegrationConfig) *IntegrationUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *IntegrationUpdate) ClearConfig() *IntegrationUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetTriggers sets the "triggers" field.
func (_u *IntegrationUpdate) SetTriggers(v []string) *IntegrationUpdate {
	_u.mutation.SetTriggers(v)
	return _u
}

// AppendTriggers appends value to the "triggers" field.
func (_u *IntegrationUpdate) AppendTriggers(v []string) *IntegrationUpdate {
	_u.mutation.AppendTriggers(v)
	return _u
}

// ClearTriggers clears the value of the "triggers" field.
func (_u *IntegrationUpdate) ClearTriggers() *IntegrationUpdate {
	_u.mutation.ClearTriggers()
	return _u
}

// SetAutoSync sets the "auto_sync" field.
func (_u *IntegrationUpdate) SetAutoSync(v bool) *IntegrationUpdate {
	_u.mutation.SetAutoSync(v)
	return _u
}

// SetNillableAutoSync sets the "auto_sync" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableAutoSync(v *bool) *IntegrationUpdate {
	if v != nil {
		_u.SetAutoSync(*v)
	}
	return _u
}

// SetSyncIntervalMins sets the "sync_interval_mins" field.
func (_u *IntegrationUpdate) SetSyncIntervalMins(v int) *IntegrationUpdate {
	_u.mutation.ResetSyncIntervalMins()
	_u.mutation.SetSyncIntervalMins(v)
	return _u
}

// SetNillableSyncIntervalMins sets the "sync_interval_mins" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableSyncIntervalMins(v *int) *IntegrationUpdate {
	if v != nil {
		_u.SetSyncIntervalMins(*v)
	}
	return _u
}

// AddSyncIntervalMins adds value to the "sync_interval_mins" field.
func (_u *IntegrationUpdate) AddSyncIntervalMins(v int) *IntegrationUpdate {
	_u.mutation.AddSyncIntervalMins(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationUpdate) SetUpdatedAt(v time.Time) *IntegrationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSecretIDs adds the "secrets" edge to the IntegrationSecret entity by IDs.
func (_u *IntegrationUpdate) AddSecretIDs(ids ...int) *IntegrationUpdate {
	_u.mutation.AddSecretIDs(ids...)
	return _u
}

// AddSecrets adds the "secrets" edges to the IntegrationSecret entity.
func (_u *IntegrationUpdate) AddSecrets(v ...*IntegrationSecret) *IntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSecretIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the IntegrationLog entity by IDs.
func (_u *IntegrationUpdate) AddLogIDs(ids ...int) *IntegrationUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the IntegrationLog entity.
func (_u *IntegrationUpdate) AddLogs(v ...*IntegrationLog) *IntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdate) Mutation() *IntegrationMutation {
	return _u.mutation
}

// ClearSecrets clears all "secrets" edges to the IntegrationSecret entity.
func (_u *IntegrationUpdate) ClearSecrets() *IntegrationUpdate {
	_u.mutation.ClearSecrets()
	return _u
}

// RemoveSecretIDs removes the "secrets" edge to IntegrationSecret entities by IDs.
func (_u *IntegrationUpdate) RemoveSecretIDs(ids ...int) *IntegrationUpdate {
	_u.mutation.RemoveSecretIDs(ids...)
	return _u
}

// RemoveSecrets removes "secrets" edges to IntegrationSecret entities.
func (_u *IntegrationUpdate) RemoveSecrets(v ...*IntegrationSecret) *IntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSecretIDs(ids...)
}

// ClearLogs clears all "logs" edges to the IntegrationLog entity.
func (_u *IntegrationUpdate) ClearLogs() *IntegrationUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to IntegrationLog entities by IDs.
func (_u *IntegrationUpdate) RemoveLogIDs(ids ...int) *IntegrationUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to IntegrationLog entities.
func (_u *IntegrationUpdate) RemoveLogs(v ...*IntegrationLog) *IntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := integration.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Integration.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncIntervalMins(); ok {
		if err := integration.SyncIntervalMinsValidator(v); err != nil {
			return &ValidationError{Name: "sync_interval_mins", err: fmt.Errorf(`ent: validator failed for field "Integration.sync_interval_mins": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(integration.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(integration.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(integration.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(integration.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(integration.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(integration.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Triggers(); ok {
		_spec.SetField(integration.FieldTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integration.FieldTriggers, value)
		})
	}
	if _u.mutation.TriggersCleared() {
		_spec.ClearField(integration.FieldTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoSync(); ok {
		_spec.SetField(integration.FieldAutoSync, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SyncIntervalMins(); ok {
		_spec.SetField(integration.FieldSyncIntervalMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSyncIntervalMins(); ok {
		_spec.AddField(integration.FieldSyncIntervalMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SecretsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSecretsIDs(); len(nodes) > 0 && !_u.mutation.SecretsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SecretsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationUpdateOne is the builder for updating a single Integration entity.
type IntegrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationMutation
}

// SetName sets the "name" field.
func (_u *IntegrationUpdateOne) SetName(v string) *IntegrationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableName(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *IntegrationUpdateOne) SetProvider(v integration.Provider) *IntegrationUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableProvider(v *integration.Provider) *IntegrationUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IntegrationUpdateOne) SetDescription(v string) *IntegrationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableDescription(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IntegrationUpdateOne) ClearDescription() *IntegrationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *IntegrationUpdateOne) SetIsActive(v bool) *IntegrationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableIsActive(v *bool) *IntegrationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *IntegrationUpdateOne) SetConfig(v models.IntegrationConfig) *IntegrationUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableConfig(v *models.IntegrationConfig) *IntegrationUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *IntegrationUpdateOne) ClearConfig() *IntegrationUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetTriggers sets the "triggers" field.
func (_u *IntegrationUpdateOne) SetTriggers(v []string) *IntegrationUpdateOne {
	_u.mutation.SetTriggers(v)
	return _u
}

// AppendTriggers appends value to the "triggers" field.
func (_u *IntegrationUpdateOne) AppendTriggers(v []string) *IntegrationUpdateOne {
	_u.mutation.AppendTriggers(v)
	return _u
}

// ClearTriggers clears the value of the "triggers" field.
func (_u *IntegrationUpdateOne) ClearTriggers() *IntegrationUpdateOne {
	_u.mutation.ClearTriggers()
	return _u
}

// SetAutoSync sets the "auto_sync" field.
func (_u *IntegrationUpdateOne) SetAutoSync(v bool) *IntegrationUpdateOne {
	_u.mutation.SetAutoSync(v)
	return _u
}

// SetNillableAutoSync sets the "auto_sync" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableAutoSync(v *bool) *IntegrationUpdateOne {
	if v != nil {
		_u.SetAutoSync(*v)
	}
	return _u
}

// SetSyncIntervalMins sets the "sync_interval_mins" field.
func (_u *IntegrationUpdateOne) SetSyncIntervalMins(v int) *IntegrationUpdateOne {
	_u.mutation.ResetSyncIntervalMins()
	_u.mutation.SetSyncIntervalMins(v)
	return _u
}

// SetNillableSyncIntervalMins sets the "sync_interval_mins" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableSyncIntervalMins(v *int) *IntegrationUpdateOne {
	if v != nil {
		_u.SetSyncIntervalMins(*v)
	}
	return _u
}

// AddSyncIntervalMins adds value to the "sync_interval_mins" field.
func (_u *IntegrationUpdateOne) AddSyncIntervalMins(v int) *IntegrationUpdateOne {
	_u.mutation.AddSyncIntervalMins(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationUpdateOne) SetUpdatedAt(v time.Time) *IntegrationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSecretIDs adds the "secrets" edge to the IntegrationSecret entity by IDs.
func (_u *IntegrationUpdateOne) AddSecretIDs(ids ...int) *IntegrationUpdateOne {
	_u.mutation.AddSecretIDs(ids...)
	return _u
}

// AddSecrets adds the "secrets" edges to the IntegrationSecret entity.
func (_u *IntegrationUpdateOne) AddSecrets(v ...*IntegrationSecret) *IntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSecretIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the IntegrationLog entity by IDs.
func (_u *IntegrationUpdateOne) AddLogIDs(ids ...int) *IntegrationUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the IntegrationLog entity.
func (_u *IntegrationUpdateOne) AddLogs(v ...*IntegrationLog) *IntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdateOne) Mutation() *IntegrationMutation {
	return _u.mutation
}

// ClearSecrets clears all "secrets" edges to the IntegrationSecret entity.
func (_u *IntegrationUpdateOne) ClearSecrets() *IntegrationUpdateOne {
	_u.mutation.ClearSecrets()
	return _u
}

// RemoveSecretIDs removes the "secrets" edge to IntegrationSecret entities by IDs.
func (_u *IntegrationUpdateOne) RemoveSecretIDs(ids ...int) *IntegrationUpdateOne {
	_u.mutation.RemoveSecretIDs(ids...)
	return _u
}

// RemoveSecrets removes "secrets" edges to IntegrationSecret entities.
func (_u *IntegrationUpdateOne) RemoveSecrets(v ...*IntegrationSecret) *IntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSecretIDs(ids...)
}

// ClearLogs clears all "logs" edges to the IntegrationLog entity.
func (_u *IntegrationUpdateOne) ClearLogs() *IntegrationUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to IntegrationLog entities by IDs.
func (_u *IntegrationUpdateOne) RemoveLogIDs(ids ...int) *IntegrationUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to IntegrationLog entities.
func (_u *IntegrationUpdateOne) RemoveLogs(v ...*IntegrationLog) *IntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdateOne) Where(ps ...predicate.Integration) *IntegrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationUpdateOne) Select(field string, fields ...string) *IntegrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Integration entity.
func (_u *IntegrationUpdateOne) Save(ctx context.Context) (*Integration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdateOne) SaveX(ctx context.Context) *Integration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := integration.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Integration.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncIntervalMins(); ok {
		if err := integration.SyncIntervalMinsValidator(v); err != nil {
			return &ValidationError{Name: "sync_interval_mins", err: fmt.Errorf(`ent: validator failed for field "Integration.sync_interval_mins": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationUpdateOne) sqlSave(ctx context.Context) (_node *Integration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Integration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integration.FieldID)
		for _, f := range fields {
			if !integration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integration.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(integration.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(integration.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(integration.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(integration.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(integration.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(integration.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Triggers(); ok {
		_spec.SetField(integration.FieldTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integration.FieldTriggers, value)
		})
	}
	if _u.mutation.TriggersCleared() {
		_spec.ClearField(integration.FieldTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoSync(); ok {
		_spec.SetField(integration.FieldAutoSync, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SyncIntervalMins(); ok {
		_spec.SetField(integration.FieldSyncIntervalMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSyncIntervalMins(); ok {
		_spec.AddField(integration.FieldSyncIntervalMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SecretsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSecretsIDs(); len(nodes) > 0 && !_u.mutation.SecretsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SecretsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Integration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
