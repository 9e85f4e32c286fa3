// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mateovidal/crmbridge/ent/webhookdelivery"
	"github.com/mateovidal/crmbridge/ent/webhookendpoint"
)

// WebhookDeliveryCreate is the builder for creating a WebhookDelivery entity.
type WebhookDeliveryCreate struct {
	config
	mutation *WebhookDeliveryMutation
	hooks    []Hook
}

// SetEndpointID sets the "endpoint_id" field.
func (_c *WebhookDeliveryCreate) SetEndpointID(v int) *WebhookDeliveryCreate {
	_c.mutation.SetEndpointID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *WebhookDeliveryCreate) SetEventID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetEventName sets the "event_name" field.
func (_c *WebhookDeliveryCreate) SetEventName(v string) *WebhookDeliveryCreate {
	_c.mutation.SetEventName(v)
	return _c
}

// SetRequestPayload sets the "request_payload" field.
func (_c *WebhookDeliveryCreate) SetRequestPayload(v map[string]interface{}) *WebhookDeliveryCreate {
	_c.mutation.SetRequestPayload(v)
	return _c
}

// SetResponseStatus sets the "response_status" field.
func (_c *WebhookDeliveryCreate) SetResponseStatus(v int) *WebhookDeliveryCreate {
	_c.mutation.SetResponseStatus(v)
	return _c
}

// SetNillableResponseStatus sets the "response_status" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableResponseStatus(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetResponseStatus(*v)
	}
	return _c
}

// SetResponseBody sets the "response_body" field.
func (_c *WebhookDeliveryCreate) SetResponseBody(v string) *WebhookDeliveryCreate {
	_c.mutation.SetResponseBody(v)
	return _c
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableResponseBody(v *string) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetResponseBody(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *WebhookDeliveryCreate) SetAttempt(v int) *WebhookDeliveryCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableAttempt(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetDelivered sets the "delivered" field.
func (_c *WebhookDeliveryCreate) SetDelivered(v bool) *WebhookDeliveryCreate {
	_c.mutation.SetDelivered(v)
	return _c
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableDelivered(v *bool) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetDelivered(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *WebhookDeliveryCreate) SetNextRetryAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableNextRetryAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookDeliveryCreate) SetCreatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookDeliveryCreate) SetUpdatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableUpdatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_c *WebhookDeliveryCreate) SetEndpoint(v *WebhookEndpoint) *WebhookDeliveryCreate {
	return _c.SetEndpointID(v.ID)
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_c *WebhookDeliveryCreate) Mutation() *WebhookDeliveryMutation {
	return _c.mutation
}

// Save creates the WebhookDelivery in the database.
func (_c *WebhookDeliveryCreate) Save(ctx context.Context) (*WebhookDelivery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookDeliveryCreate) SaveX(ctx context.Context) *WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookDeliveryCreate) defaults() {
	if _, ok := _c.mutation.ResponseStatus(); !ok {
		v := webhookdelivery.DefaultResponseStatus
		_c.mutation.SetResponseStatus(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := webhookdelivery.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.Delivered(); !ok {
		v := webhookdelivery.DefaultDelivered
		_c.mutation.SetDelivered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookdelivery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookDeliveryCreate) check() error {
	if _, ok := _c.mutation.EndpointID(); !ok {
		return &ValidationError{Name: "endpoint_id", err: errors.New(`ent: missing required field "WebhookDelivery.endpoint_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "WebhookDelivery.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := webhookdelivery.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventName(); !ok {
		return &ValidationError{Name: "event_name", err: errors.New(`ent: missing required field "WebhookDelivery.event_name"`)}
	}
	if v, ok := _c.mutation.EventName(); ok {
		if err := webhookdelivery.EventNameValidator(v); err != nil {
			return &ValidationError{Name: "event_name", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.event_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestPayload(); !ok {
		return &ValidationError{Name: "request_payload", err: errors.New(`ent: missing required field "WebhookDelivery.request_payload"`)}
	}
	if _, ok := _c.mutation.ResponseStatus(); !ok {
		return &ValidationError{Name: "response_status", err: errors.New(`ent: missing required field "WebhookDelivery.response_status"`)}
	}
	if v, ok := _c.mutation.ResponseBody(); ok {
		if err := webhookdelivery.ResponseBodyValidator(v); err != nil {
			return &ValidationError{Name: "response_body", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.response_body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "WebhookDelivery.attempt"`)}
	}
	if _, ok := _c.mutation.Delivered(); !ok {
		return &ValidationError{Name: "delivered", err: errors.New(`ent: missing required field "WebhookDelivery.delivered"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookDelivery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookDelivery.updated_at"`)}
	}
	if len(_c.mutation.EndpointIDs()) == 0 {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required edge "WebhookDelivery.endpoint"`)}
	}
	return nil
}

func (_c *WebhookDeliveryCreate) sqlSave(ctx context.Context) (*WebhookDelivery, error) {
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

func (_c *WebhookDeliveryCreate) createSpec() (*WebhookDelivery, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookDelivery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookdelivery.Table, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.EventName(); ok {
		_spec.SetField(webhookdelivery.FieldEventName, field.TypeString, value)
		_node.EventName = value
	}
	if value, ok := _c.mutation.RequestPayload(); ok {
		_spec.SetField(webhookdelivery.FieldRequestPayload, field.TypeJSON, value)
		_node.RequestPayload = value
	}
	if value, ok := _c.mutation.ResponseStatus(); ok {
		_spec.SetField(webhookdelivery.FieldResponseStatus, field.TypeInt, value)
		_node.ResponseStatus = value
	}
	if value, ok := _c.mutation.ResponseBody(); ok {
		_spec.SetField(webhookdelivery.FieldResponseBody, field.TypeString, value)
		_node.ResponseBody = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(webhookdelivery.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Delivered(); ok {
		_spec.SetField(webhookdelivery.FieldDelivered, field.TypeBool, value)
		_node.Delivered = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EndpointIDs(); len(nodes) > 0 {
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
		_node.EndpointID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WebhookDeliveryCreateBulk is the builder for creating many WebhookDelivery entities in bulk.
type WebhookDeliveryCreateBulk struct {
	config
	err      error
	builders []*WebhookDeliveryCreate
}

// Save creates the WebhookDelivery entities in the database.
func (_c *WebhookDeliveryCreateBulk) Save(ctx context.Context) ([]*WebhookDelivery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookDelivery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookDeliveryMutation)
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
func (_c *WebhookDeliveryCreateBulk) SaveX(ctx context.Context) []*WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
