// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"timebill-api/ent/predicate"
	"timebill-api/ent/service"
	"timebill-api/ent/task"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetDescription sets the "description" field.
func (tu *TaskUpdate) SetDescription(s string) *TaskUpdate {
	tu.mutation.SetDescription(s)
	return tu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDescription(s *string) *TaskUpdate {
	if s != nil {
		tu.SetDescription(*s)
	}
	return tu
}

// SetHours sets the "hours" field.
func (tu *TaskUpdate) SetHours(d decimal.Decimal) *TaskUpdate {
	tu.mutation.SetHours(d)
	return tu
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableHours(d *decimal.Decimal) *TaskUpdate {
	if d != nil {
		tu.SetHours(*d)
	}
	return tu
}

// SetDate sets the "date" field.
func (tu *TaskUpdate) SetDate(t time.Time) *TaskUpdate {
	tu.mutation.SetDate(t)
	return tu
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDate(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetDate(*t)
	}
	return tu
}

// SetServiceID sets the "service_id" field.
func (tu *TaskUpdate) SetServiceID(u uuid.UUID) *TaskUpdate {
	tu.mutation.SetServiceID(u)
	return tu
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableServiceID(u *uuid.UUID) *TaskUpdate {
	if u != nil {
		tu.SetServiceID(*u)
	}
	return tu
}

// ClearServiceID clears the value of the "service_id" field.
func (tu *TaskUpdate) ClearServiceID() *TaskUpdate {
	tu.mutation.ClearServiceID()
	return tu
}

// SetPlatform sets the "platform" field.
func (tu *TaskUpdate) SetPlatform(t task.Platform) *TaskUpdate {
	tu.mutation.SetPlatform(t)
	return tu
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePlatform(t *task.Platform) *TaskUpdate {
	if t != nil {
		tu.SetPlatform(*t)
	}
	return tu
}

// SetBilled sets the "billed" field.
func (tu *TaskUpdate) SetBilled(b bool) *TaskUpdate {
	tu.mutation.SetBilled(b)
	return tu
}

// SetNillableBilled sets the "billed" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableBilled(b *bool) *TaskUpdate {
	if b != nil {
		tu.SetBilled(*b)
	}
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TaskUpdate) SetUpdatedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetService sets the "service" edge to the Service entity.
func (tu *TaskUpdate) SetService(s *Service) *TaskUpdate {
	return tu.SetServiceID(s.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// ClearService clears the "service" edge to the Service entity.
func (tu *TaskUpdate) ClearService() *TaskUpdate {
	tu.mutation.ClearService()
	return tu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TaskUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.Description(); ok {
		if err := task.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Task.description": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Platform(); ok {
		if err := task.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Task.platform": %w`, err)}
		}
	}
	if tu.mutation.ClientCleared() && len(tu.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.client"`)
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tu.mutation.Hours(); ok {
		_spec.SetField(task.FieldHours, field.TypeOther, value)
	}
	if value, ok := tu.mutation.Date(); ok {
		_spec.SetField(task.FieldDate, field.TypeTime, value)
	}
	if value, ok := tu.mutation.Platform(); ok {
		_spec.SetField(task.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.Billed(); ok {
		_spec.SetField(task.FieldBilled, field.TypeBool, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if tu.mutation.ServiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ServiceTable,
			Columns: []string{task.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.ServiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ServiceTable,
			Columns: []string{task.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetDescription sets the "description" field.
func (tuo *TaskUpdateOne) SetDescription(s string) *TaskUpdateOne {
	tuo.mutation.SetDescription(s)
	return tuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDescription(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetDescription(*s)
	}
	return tuo
}

// SetHours sets the "hours" field.
func (tuo *TaskUpdateOne) SetHours(d decimal.Decimal) *TaskUpdateOne {
	tuo.mutation.SetHours(d)
	return tuo
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableHours(d *decimal.Decimal) *TaskUpdateOne {
	if d != nil {
		tuo.SetHours(*d)
	}
	return tuo
}

// SetDate sets the "date" field.
func (tuo *TaskUpdateOne) SetDate(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetDate(t)
	return tuo
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDate(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetDate(*t)
	}
	return tuo
}

// SetServiceID sets the "service_id" field.
func (tuo *TaskUpdateOne) SetServiceID(u uuid.UUID) *TaskUpdateOne {
	tuo.mutation.SetServiceID(u)
	return tuo
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableServiceID(u *uuid.UUID) *TaskUpdateOne {
	if u != nil {
		tuo.SetServiceID(*u)
	}
	return tuo
}

// ClearServiceID clears the value of the "service_id" field.
func (tuo *TaskUpdateOne) ClearServiceID() *TaskUpdateOne {
	tuo.mutation.ClearServiceID()
	return tuo
}

// SetPlatform sets the "platform" field.
func (tuo *TaskUpdateOne) SetPlatform(t task.Platform) *TaskUpdateOne {
	tuo.mutation.SetPlatform(t)
	return tuo
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePlatform(t *task.Platform) *TaskUpdateOne {
	if t != nil {
		tuo.SetPlatform(*t)
	}
	return tuo
}

// SetBilled sets the "billed" field.
func (tuo *TaskUpdateOne) SetBilled(b bool) *TaskUpdateOne {
	tuo.mutation.SetBilled(b)
	return tuo
}

// SetNillableBilled sets the "billed" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableBilled(b *bool) *TaskUpdateOne {
	if b != nil {
		tuo.SetBilled(*b)
	}
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TaskUpdateOne) SetUpdatedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetService sets the "service" edge to the Service entity.
func (tuo *TaskUpdateOne) SetService(s *Service) *TaskUpdateOne {
	return tuo.SetServiceID(s.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// ClearService clears the "service" edge to the Service entity.
func (tuo *TaskUpdateOne) ClearService() *TaskUpdateOne {
	tuo.mutation.ClearService()
	return tuo
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TaskUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.Description(); ok {
		if err := task.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Task.description": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Platform(); ok {
		if err := task.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Task.platform": %w`, err)}
		}
	}
	if tuo.mutation.ClientCleared() && len(tuo.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.client"`)
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Hours(); ok {
		_spec.SetField(task.FieldHours, field.TypeOther, value)
	}
	if value, ok := tuo.mutation.Date(); ok {
		_spec.SetField(task.FieldDate, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.Platform(); ok {
		_spec.SetField(task.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.Billed(); ok {
		_spec.SetField(task.FieldBilled, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if tuo.mutation.ServiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ServiceTable,
			Columns: []string{task.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.ServiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ServiceTable,
			Columns: []string{task.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
