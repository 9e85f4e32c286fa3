// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationlog"
	"github.com/mateovidal/crmbridge/ent/predicate"
)

// IntegrationLogUpdate is the builder for updating IntegrationLog entities.
type IntegrationLogUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationLogMutation
}

// Where appends a list predicates to the IntegrationLogUpdate builder.
func (_u *IntegrationLogUpdate) Where(ps ...predicate.IntegrationLog) *IntegrationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *IntegrationLogUpdate) SetIntegrationID(v int) *IntegrationLogUpdate {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *IntegrationLogUpdate) SetNillableIntegrationID(v *int) *IntegrationLogUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetEvent sets the "event" field.
func (_u *IntegrationLogUpdate) SetEvent(v string) *IntegrationLogUpdate {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *IntegrationLogUpdate) SetNillableEvent(v *string) *IntegrationLogUpdate {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntegrationLogUpdate) SetStatus(v integrationlog.Status) *IntegrationLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntegrationLogUpdate) SetNillableStatus(v *integrationlog.Status) *IntegrationLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *IntegrationLogUpdate) SetPayload(v map[string]interface{}) *IntegrationLogUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *IntegrationLogUpdate) ClearPayload() *IntegrationLogUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetResponse sets the "response" field.
func (_u *IntegrationLogUpdate) SetResponse(v map[string]interface{}) *IntegrationLogUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *IntegrationLogUpdate) ClearResponse() *IntegrationLogUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetIntegration sets the "integration" edge to the Integration entity.
func (_u *IntegrationLogUpdate) SetIntegration(v *Integration) *IntegrationLogUpdate {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the IntegrationLogMutation object of the builder.
func (_u *IntegrationLogUpdate) Mutation() *IntegrationLogMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the Integration entity.
func (_u *IntegrationLogUpdate) ClearIntegration() *IntegrationLogUpdate {
	_u.mutation.ClearIntegration()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationLogUpdate) check() error {
	if v, ok := _u.mutation.Event(); ok {
		if err := integrationlog.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "IntegrationLog.event": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := integrationlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntegrationLog.status": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntegrationLog.integration"`)
	}
	return nil
}

func (_u *IntegrationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integrationlog.Table, integrationlog.Columns, sqlgraph.NewFieldSpec(integrationlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(integrationlog.FieldEvent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(integrationlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(integrationlog.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(integrationlog.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(integrationlog.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(integrationlog.FieldResponse, field.TypeJSON)
	}
	if _u.mutation.IntegrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationLogUpdateOne is the builder for updating a single IntegrationLog entity.
type IntegrationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationLogMutation
}

// SetIntegrationID sets the "integration_id" field.
func (_u *IntegrationLogUpdateOne) SetIntegrationID(v int) *IntegrationLogUpdateOne {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *IntegrationLogUpdateOne) SetNillableIntegrationID(v *int) *IntegrationLogUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetEvent sets the "event" field.
func (_u *IntegrationLogUpdateOne) SetEvent(v string) *IntegrationLogUpdateOne {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *IntegrationLogUpdateOne) SetNillableEvent(v *string) *IntegrationLogUpdateOne {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntegrationLogUpdateOne) SetStatus(v integrationlog.Status) *IntegrationLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntegrationLogUpdateOne) SetNillableStatus(v *integrationlog.Status) *IntegrationLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *IntegrationLogUpdateOne) SetPayload(v map[string]interface{}) *IntegrationLogUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *IntegrationLogUpdateOne) ClearPayload() *IntegrationLogUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetResponse sets the "response" field.
func (_u *IntegrationLogUpdateOne) SetResponse(v map[string]interface{}) *IntegrationLogUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *IntegrationLogUpdateOne) ClearResponse() *IntegrationLogUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetIntegration sets the "integration" edge to the Integration entity.
func (_u *IntegrationLogUpdateOne) SetIntegration(v *Integration) *IntegrationLogUpdateOne {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the IntegrationLogMutation object of the builder.
func (_u *IntegrationLogUpdateOne) Mutation() *IntegrationLogMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the Integration entity.
func (_u *IntegrationLogUpdateOne) ClearIntegration() *IntegrationLogUpdateOne {
	_u.mutation.ClearIntegration()
	return _u
}

// Where appends a list predicates to the IntegrationLogUpdate builder.
func (_u *IntegrationLogUpdateOne) Where(ps ...predicate.IntegrationLog) *IntegrationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationLogUpdateOne) Select(field string, fields ...string) *IntegrationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntegrationLog entity.
func (_u *IntegrationLogUpdateOne) Save(ctx context.Context) (*IntegrationLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationLogUpdateOne) SaveX(ctx context.Context) *IntegrationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationLogUpdateOne) check() error {
	if v, ok := _u.mutation.Event(); ok {
		if err := integrationlog.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "IntegrationLog.event": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := integrationlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntegrationLog.status": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntegrationLog.integration"`)
	}
	return nil
}

func (_u *IntegrationLogUpdateOne) sqlSave(ctx context.Context) (_node *IntegrationLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integrationlog.Table, integrationlog.Columns, sqlgraph.NewFieldSpec(integrationlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntegrationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integrationlog.FieldID)
		for _, f := range fields {
			if !integrationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integrationlog.FieldID {
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
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(integrationlog.FieldEvent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(integrationlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(integrationlog.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(integrationlog.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(integrationlog.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(integrationlog.FieldResponse, field.TypeJSON)
	}
	if _u.mutation.IntegrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IntegrationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
