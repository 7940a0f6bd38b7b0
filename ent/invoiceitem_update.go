// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"timebill-api/ent/invoiceitem"
	"timebill-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItemUpdate is the builder for updating InvoiceItem entities.
type InvoiceItemUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceItemMutation
}

// Where appends a list predicates to the InvoiceItemUpdate builder.
func (iiu *InvoiceItemUpdate) Where(ps ...predicate.InvoiceItem) *InvoiceItemUpdate {
	iiu.mutation.Where(ps...)
	return iiu
}

// SetTaskID sets the "task_id" field.
func (iiu *InvoiceItemUpdate) SetTaskID(u uuid.UUID) *InvoiceItemUpdate {
	iiu.mutation.SetTaskID(u)
	return iiu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (iiu *InvoiceItemUpdate) SetNillableTaskID(u *uuid.UUID) *InvoiceItemUpdate {
	if u != nil {
		iiu.SetTaskID(*u)
	}
	return iiu
}

// SetDescription sets the "description" field.
func (iiu *InvoiceItemUpdate) SetDescription(s string) *InvoiceItemUpdate {
	iiu.mutation.SetDescription(s)
	return iiu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iiu *InvoiceItemUpdate) SetNillableDescription(s *string) *InvoiceItemUpdate {
	if s != nil {
		iiu.SetDescription(*s)
	}
	return iiu
}

// SetHours sets the "hours" field.
func (iiu *InvoiceItemUpdate) SetHours(d decimal.Decimal) *InvoiceItemUpdate {
	iiu.mutation.SetHours(d)
	return iiu
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (iiu *InvoiceItemUpdate) SetNillableHours(d *decimal.Decimal) *InvoiceItemUpdate {
	if d != nil {
		iiu.SetHours(*d)
	}
	return iiu
}

// SetPosition sets the "position" field.
func (iiu *InvoiceItemUpdate) SetPosition(i int) *InvoiceItemUpdate {
	iiu.mutation.ResetPosition()
	iiu.mutation.SetPosition(i)
	return iiu
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (iiu *InvoiceItemUpdate) SetNillablePosition(i *int) *InvoiceItemUpdate {
	if i != nil {
		iiu.SetPosition(*i)
	}
	return iiu
}

// AddPosition adds i to the "position" field.
func (iiu *InvoiceItemUpdate) AddPosition(i int) *InvoiceItemUpdate {
	iiu.mutation.AddPosition(i)
	return iiu
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (iiu *InvoiceItemUpdate) Mutation() *InvoiceItemMutation {
	return iiu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iiu *InvoiceItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iiu.sqlSave, iiu.mutation, iiu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iiu *InvoiceItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iiu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iiu *InvoiceItemUpdate) Exec(ctx context.Context) error {
	_, err := iiu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iiu *InvoiceItemUpdate) ExecX(ctx context.Context) {
	if err := iiu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iiu *InvoiceItemUpdate) check() error {
	if iiu.mutation.InvoiceCleared() && len(iiu.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceItem.invoice"`)
	}
	return nil
}

func (iiu *InvoiceItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iiu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceitem.Table, invoiceitem.Columns, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	if ps := iiu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iiu.mutation.TaskID(); ok {
		_spec.SetField(invoiceitem.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := iiu.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := iiu.mutation.Hours(); ok {
		_spec.SetField(invoiceitem.FieldHours, field.TypeOther, value)
	}
	if value, ok := iiu.mutation.Position(); ok {
		_spec.SetField(invoiceitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := iiu.mutation.AddedPosition(); ok {
		_spec.AddField(invoiceitem.FieldPosition, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iiu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iiu.mutation.done = true
	return n, nil
}

// InvoiceItemUpdateOne is the builder for updating a single InvoiceItem entity.
type InvoiceItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceItemMutation
}

// SetTaskID sets the "task_id" field.
func (iiuo *InvoiceItemUpdateOne) SetTaskID(u uuid.UUID) *InvoiceItemUpdateOne {
	iiuo.mutation.SetTaskID(u)
	return iiuo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (iiuo *InvoiceItemUpdateOne) SetNillableTaskID(u *uuid.UUID) *InvoiceItemUpdateOne {
	if u != nil {
		iiuo.SetTaskID(*u)
	}
	return iiuo
}

// SetDescription sets the "description" field.
func (iiuo *InvoiceItemUpdateOne) SetDescription(s string) *InvoiceItemUpdateOne {
	iiuo.mutation.SetDescription(s)
	return iiuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iiuo *InvoiceItemUpdateOne) SetNillableDescription(s *string) *InvoiceItemUpdateOne {
	if s != nil {
		iiuo.SetDescription(*s)
	}
	return iiuo
}

// SetHours sets the "hours" field.
func (iiuo *InvoiceItemUpdateOne) SetHours(d decimal.Decimal) *InvoiceItemUpdateOne {
	iiuo.mutation.SetHours(d)
	return iiuo
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (iiuo *InvoiceItemUpdateOne) SetNillableHours(d *decimal.Decimal) *InvoiceItemUpdateOne {
	if d != nil {
		iiuo.SetHours(*d)
	}
	return iiuo
}

// SetPosition sets the "position" field.
func (iiuo *InvoiceItemUpdateOne) SetPosition(i int) *InvoiceItemUpdateOne {
	iiuo.mutation.ResetPosition()
	iiuo.mutation.SetPosition(i)
	return iiuo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (iiuo *InvoiceItemUpdateOne) SetNillablePosition(i *int) *InvoiceItemUpdateOne {
	if i != nil {
		iiuo.SetPosition(*i)
	}
	return iiuo
}

// AddPosition adds i to the "position" field.
func (iiuo *InvoiceItemUpdateOne) AddPosition(i int) *InvoiceItemUpdateOne {
	iiuo.mutation.AddPosition(i)
	return iiuo
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (iiuo *InvoiceItemUpdateOne) Mutation() *InvoiceItemMutation {
	return iiuo.mutation
}

// Where appends a list predicates to the InvoiceItemUpdate builder.
func (iiuo *InvoiceItemUpdateOne) Where(ps ...predicate.InvoiceItem) *InvoiceItemUpdateOne {
	iiuo.mutation.Where(ps...)
	return iiuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iiuo *InvoiceItemUpdateOne) Select(field string, fields ...string) *InvoiceItemUpdateOne {
	iiuo.fields = append([]string{field}, fields...)
	return iiuo
}

// Save executes the query and returns the updated InvoiceItem entity.
func (iiuo *InvoiceItemUpdateOne) Save(ctx context.Context) (*InvoiceItem, error) {
	return withHooks(ctx, iiuo.sqlSave, iiuo.mutation, iiuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iiuo *InvoiceItemUpdateOne) SaveX(ctx context.Context) *InvoiceItem {
	node, err := iiuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iiuo *InvoiceItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iiuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iiuo *InvoiceItemUpdateOne) ExecX(ctx context.Context) {
	if err := iiuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iiuo *InvoiceItemUpdateOne) check() error {
	if iiuo.mutation.InvoiceCleared() && len(iiuo.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceItem.invoice"`)
	}
	return nil
}

func (iiuo *InvoiceItemUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceItem, err error) {
	if err := iiuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceitem.Table, invoiceitem.Columns, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	id, ok := iiuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iiuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceitem.FieldID)
		for _, f := range fields {
			if !invoiceitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iiuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iiuo.mutation.TaskID(); ok {
		_spec.SetField(invoiceitem.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := iiuo.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := iiuo.mutation.Hours(); ok {
		_spec.SetField(invoiceitem.FieldHours, field.TypeOther, value)
	}
	if value, ok := iiuo.mutation.Position(); ok {
		_spec.SetField(invoiceitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := iiuo.mutation.AddedPosition(); ok {
		_spec.AddField(invoiceitem.FieldPosition, field.TypeInt, value)
	}
	_node = &InvoiceItem{config: iiuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iiuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iiuo.mutation.done = true
	return _node, nil
}
