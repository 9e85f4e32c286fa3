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
	"github.com/mateovidal/crmbridge/ent/predicate"
	"github.com/mateovidal/crmbridge/ent/webhookdelivery"
	"github.com/mateovidal/crmbridge/ent/webhookendpoint"
)

// WebhookDeliveryUpdate is the builder for updating WebhookDelivery entities.
type WebhookDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdate) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndpointID sets the "endpoint_id" field.
func (_u *WebhookDeliveryUpdate) SetEndpointID(v int) *WebhookDeliveryUpdate {
	_u.mutation.SetEndpointID(v)
	return _u
}

// SetNillableEndpointID sets the "endpoint_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEndpointID(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEndpointID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *WebhookDeliveryUpdate) SetEventID(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEventID(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *WebhookDeliveryUpdate) SetEventName(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEventName(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *WebhookDeliveryUpdate) SetRequestPayload(v map[string]interface{}) *WebhookDeliveryUpdate {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// SetResponseStatus sets the "response_status" field.
func (_u *WebhookDeliveryUpdate) SetResponseStatus(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetResponseStatus()
	_u.mutation.SetResponseStatus(v)
	return _u
}

// SetNillableResponseStatus sets the "response_status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableResponseStatus(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetResponseStatus(*v)
	}
	return _u
}

// AddResponseStatus adds value to the "response_status" field.
func (_u *WebhookDeliveryUpdate) AddResponseStatus(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddResponseStatus(v)
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *WebhookDeliveryUpdate) SetResponseBody(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableResponseBody(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// ClearResponseBody clears the value of the "response_body" field.
func (_u *WebhookDeliveryUpdate) ClearResponseBody() *WebhookDeliveryUpdate {
	_u.mutation.ClearResponseBody()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *WebhookDeliveryUpdate) SetAttempt(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAttempt(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *WebhookDeliveryUpdate) AddAttempt(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *WebhookDeliveryUpdate) SetDelivered(v bool) *WebhookDeliveryUpdate {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableDelivered(v *bool) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *WebhookDeliveryUpdate) SetNextRetryAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableNextRetryAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *WebhookDeliveryUpdate) ClearNextRetryAt() *WebhookDeliveryUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdate) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdate) SetEndpoint(v *WebhookEndpoint) *WebhookDeliveryUpdate {
	return _u.SetEndpointID(v.ID)
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdate) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdate) ClearEndpoint() *WebhookDeliveryUpdate {
	_u.mutation.ClearEndpoint()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := webhookdelivery.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventName(); ok {
		if err := webhookdelivery.EventNameValidator(v); err != nil {
			return &ValidationError{Name: "event_name", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.event_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseBody(); ok {
		if err := webhookdelivery.ResponseBodyValidator(v); err != nil {
			return &ValidationError{Name: "response_body", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.response_body": %w`, err)}
		}
	}
	if _u.mutation.EndpointCleared() && len(_u.mutation.EndpointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.endpoint"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(webhookdelivery.FieldEventName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(webhookdelivery.FieldRequestPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResponseStatus(); ok {
		_spec.SetField(webhookdelivery.FieldResponseStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseStatus(); ok {
		_spec.AddField(webhookdelivery.FieldResponseStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(webhookdelivery.FieldResponseBody, field.TypeString, value)
	}
	if _u.mutation.ResponseBodyCleared() {
		_spec.ClearField(webhookdelivery.FieldResponseBody, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(webhookdelivery.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(webhookdelivery.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(webhookdelivery.FieldDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(webhookdelivery.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EndpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookdelivery.EndpointTable,
			Columns: []string{webhookdelivery.EndpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EndpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookdelivery.EndpointTable,
			Columns: []string{webhookdelivery.EndpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryUpdateOne is the builder for updating a single WebhookDelivery entity.
type WebhookDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// SetEndpointID sets the "endpoint_id" field.
func (_u *WebhookDeliveryUpdateOne) SetEndpointID(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEndpointID(v)
	return _u
}

// SetNillableEndpointID sets the "endpoint_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEndpointID(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEndpointID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *WebhookDeliveryUpdateOne) SetEventID(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEventID(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *WebhookDeliveryUpdateOne) SetEventName(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEventName(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *WebhookDeliveryUpdateOne) SetRequestPayload(v map[string]interface{}) *WebhookDeliveryUpdateOne {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// SetResponseStatus sets the "response_status" field.
func (_u *WebhookDeliveryUpdateOne) SetResponseStatus(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetResponseStatus()
	_u.mutation.SetResponseStatus(v)
	return _u
}

// SetNillableResponseStatus sets the "response_status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableResponseStatus(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetResponseStatus(*v)
	}
	return _u
}

// AddResponseStatus adds value to the "response_status" field.
func (_u *WebhookDeliveryUpdateOne) AddResponseStatus(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddResponseStatus(v)
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *WebhookDeliveryUpdateOne) SetResponseBody(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableResponseBody(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// ClearResponseBody clears the value of the "response_body" field.
func (_u *WebhookDeliveryUpdateOne) ClearResponseBody() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearResponseBody()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *WebhookDeliveryUpdateOne) SetAttempt(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAttempt(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *WebhookDeliveryUpdateOne) AddAttempt(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *WebhookDeliveryUpdateOne) SetDelivered(v bool) *WebhookDeliveryUpdateOne {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableDelivered(v *bool) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *WebhookDeliveryUpdateOne) SetNextRetryAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableNextRetryAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *WebhookDeliveryUpdateOne) ClearNextRetryAt() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdateOne) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdateOne) SetEndpoint(v *WebhookEndpoint) *WebhookDeliveryUpdateOne {
	return _u.SetEndpointID(v.ID)
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdateOne) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdateOne) ClearEndpoint() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearEndpoint()
	return _u
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdateOne) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryUpdateOne) Select(field string, fields ...string) *WebhookDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDelivery entity.
func (_u *WebhookDeliveryUpdateOne) Save(ctx context.Context) (*WebhookDelivery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) SaveX(ctx context.Context) *WebhookDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := webhookdelivery.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventName(); ok {
		if err := webhookdelivery.EventNameValidator(v); err != nil {
			return &ValidationError{Name: "event_name", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.event_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseBody(); ok {
		if err := webhookdelivery.ResponseBodyValidator(v); err != nil {
			return &ValidationError{Name: "response_body", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.response_body": %w`, err)}
		}
	}
	if _u.mutation.EndpointCleared() && len(_u.mutation.EndpointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.endpoint"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDelivery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdelivery.FieldID)
		for _, f := range fields {
			if !webhookdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdelivery.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(webhookdelivery.FieldEventName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(webhookdelivery.FieldRequestPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResponseStatus(); ok {
		_spec.SetField(webhookdelivery.FieldResponseStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseStatus(); ok {
		_spec.AddField(webhookdelivery.FieldResponseStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(webhookdelivery.FieldResponseBody, field.TypeString, value)
	}
	if _u.mutation.ResponseBodyCleared() {
		_spec.ClearField(webhookdelivery.FieldResponseBody, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(webhookdelivery.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(webhookdelivery.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(webhookdelivery.FieldDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(webhookdelivery.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EndpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookdelivery.EndpointTable,
			Columns: []string{webhookdelivery.EndpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EndpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookdelivery.EndpointTable,
			Columns: []string{webhookdelivery.EndpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WebhookDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
