// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"timebill-api/ent/invoice"
	"timebill-api/ent/invoiceitem"
	"timebill-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iu *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iu *InvoiceUpdate) SetInvoiceNumber(s string) *InvoiceUpdate {
	iu.mutation.SetInvoiceNumber(s)
	return iu
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableInvoiceNumber(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetInvoiceNumber(*s)
	}
	return iu
}

// SetClientName sets the "client_name" field.
func (iu *InvoiceUpdate) SetClientName(s string) *InvoiceUpdate {
	iu.mutation.SetClientName(s)
	return iu
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableClientName(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetClientName(*s)
	}
	return iu
}

// SetTotalAmount sets the "total_amount" field.
func (iu *InvoiceUpdate) SetTotalAmount(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetTotalAmount(d)
	return iu
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTotalAmount(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTotalAmount(*d)
	}
	return iu
}

// SetTaxAmount sets the "tax_amount" field.
func (iu *InvoiceUpdate) SetTaxAmount(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetTaxAmount(d)
	return iu
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTaxAmount(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTaxAmount(*d)
	}
	return iu
}

// SetFinalAmount sets the "final_amount" field.
func (iu *InvoiceUpdate) SetFinalAmount(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetFinalAmount(d)
	return iu
}

// SetNillableFinalAmount sets the "final_amount" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableFinalAmount(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetFinalAmount(*d)
	}
	return iu
}

// SetTaxRate sets the "tax_rate" field.
func (iu *InvoiceUpdate) SetTaxRate(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetTaxRate(d)
	return iu
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTaxRate(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTaxRate(*d)
	}
	return iu
}

// SetStatus sets the "status" field.
func (iu *InvoiceUpdate) SetStatus(i invoice.Status) *InvoiceUpdate {
	iu.mutation.SetStatus(i)
	return iu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableStatus(i *invoice.Status) *InvoiceUpdate {
	if i != nil {
		iu.SetStatus(*i)
	}
	return iu
}

// SetIssueDate sets the "issue_date" field.
func (iu *InvoiceUpdate) SetIssueDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetIssueDate(t)
	return iu
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableIssueDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetIssueDate(*t)
	}
	return iu
}

// SetDueDate sets the "due_date" field.
func (iu *InvoiceUpdate) SetDueDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetDueDate(t)
	return iu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableDueDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetDueDate(*t)
	}
	return iu
}

// SetPaymentLink sets the "payment_link" field.
func (iu *InvoiceUpdate) SetPaymentLink(s string) *InvoiceUpdate {
	iu.mutation.SetPaymentLink(s)
	return iu
}

// SetNillablePaymentLink sets the "payment_link" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentLink(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetPaymentLink(*s)
	}
	return iu
}

// SetNotes sets the "notes" field.
func (iu *InvoiceUpdate) SetNotes(s string) *InvoiceUpdate {
	iu.mutation.SetNotes(s)
	return iu
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableNotes(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetNotes(*s)
	}
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InvoiceUpdate) SetUpdatedAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (iu *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	iu.mutation.AddItemIDs(ids...)
	return iu
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (iu *InvoiceUpdate) AddItems(i ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iu.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iu *InvoiceUpdate) Mutation() *InvoiceMutation {
	return iu.mutation
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (iu *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	iu.mutation.ClearItems()
	return iu
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (iu *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	iu.mutation.RemoveItemIDs(ids...)
	return iu
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (iu *InvoiceUpdate) RemoveItems(i ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iu.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InvoiceUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *InvoiceUpdate) check() error {
	if v, ok := iu.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if iu.mutation.ClientCleared() && len(iu.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.client"`)
	}
	return nil
}

func (iu *InvoiceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := iu.mutation.ClientName(); ok {
		_spec.SetField(invoice.FieldClientName, field.TypeString, value)
	}
	if value, ok := iu.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeOther, value)
	}
	if value, ok := iu.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeOther, value)
	}
	if value, ok := iu.mutation.FinalAmount(); ok {
		_spec.SetField(invoice.FieldFinalAmount, field.TypeOther, value)
	}
	if value, ok := iu.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeOther, value)
	}
	if value, ok := iu.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iu.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := iu.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := iu.mutation.PaymentLink(); ok {
		_spec.SetField(invoice.FieldPaymentLink, field.TypeString, value)
	}
	if value, ok := iu.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iu.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.RemovedItemsIDs(); len(nodes) > 0 && !iu.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iuo *InvoiceUpdateOne) SetInvoiceNumber(s string) *InvoiceUpdateOne {
	iuo.mutation.SetInvoiceNumber(s)
	return iuo
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableInvoiceNumber(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetInvoiceNumber(*s)
	}
	return iuo
}

// SetClientName sets the "client_name" field.
func (iuo *InvoiceUpdateOne) SetClientName(s string) *InvoiceUpdateOne {
	iuo.mutation.SetClientName(s)
	return iuo
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableClientName(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetClientName(*s)
	}
	return iuo
}

// SetTotalAmount sets the "total_amount" field.
func (iuo *InvoiceUpdateOne) SetTotalAmount(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetTotalAmount(d)
	return iuo
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTotalAmount(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTotalAmount(*d)
	}
	return iuo
}

// SetTaxAmount sets the "tax_amount" field.
func (iuo *InvoiceUpdateOne) SetTaxAmount(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetTaxAmount(d)
	return iuo
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTaxAmount(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTaxAmount(*d)
	}
	return iuo
}

// SetFinalAmount sets the "final_amount" field.
func (iuo *InvoiceUpdateOne) SetFinalAmount(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetFinalAmount(d)
	return iuo
}

// SetNillableFinalAmount sets the "final_amount" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableFinalAmount(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetFinalAmount(*d)
	}
	return iuo
}

// SetTaxRate sets the "tax_rate" field.
func (iuo *InvoiceUpdateOne) SetTaxRate(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetTaxRate(d)
	return iuo
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTaxRate(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTaxRate(*d)
	}
	return iuo
}

// SetStatus sets the "status" field.
func (iuo *InvoiceUpdateOne) SetStatus(i invoice.Status) *InvoiceUpdateOne {
	iuo.mutation.SetStatus(i)
	return iuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableStatus(i *invoice.Status) *InvoiceUpdateOne {
	if i != nil {
		iuo.SetStatus(*i)
	}
	return iuo
}

// SetIssueDate sets the "issue_date" field.
func (iuo *InvoiceUpdateOne) SetIssueDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetIssueDate(t)
	return iuo
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableIssueDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetIssueDate(*t)
	}
	return iuo
}

// SetDueDate sets the "due_date" field.
func (iuo *InvoiceUpdateOne) SetDueDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetDueDate(t)
	return iuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableDueDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetDueDate(*t)
	}
	return iuo
}

// SetPaymentLink sets the "payment_link" field.
func (iuo *InvoiceUpdateOne) SetPaymentLink(s string) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentLink(s)
	return iuo
}

// SetNillablePaymentLink sets the "payment_link" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentLink(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetPaymentLink(*s)
	}
	return iuo
}

// SetNotes sets the "notes" field.
func (iuo *InvoiceUpdateOne) SetNotes(s string) *InvoiceUpdateOne {
	iuo.mutation.SetNotes(s)
	return iuo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableNotes(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetNotes(*s)
	}
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InvoiceUpdateOne) SetUpdatedAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (iuo *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	iuo.mutation.AddItemIDs(ids...)
	return iuo
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (iuo *InvoiceUpdateOne) AddItems(i ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iuo.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iuo *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return iuo.mutation
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (iuo *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	iuo.mutation.ClearItems()
	return iuo
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (iuo *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	iuo.mutation.RemoveItemIDs(ids...)
	return iuo
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (iuo *InvoiceUpdateOne) RemoveItems(i ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iuo.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iuo *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Invoice entity.
func (iuo *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InvoiceUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *InvoiceUpdateOne) check() error {
	if v, ok := iuo.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if iuo.mutation.ClientCleared() && len(iuo.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.client"`)
	}
	return nil
}

func (iuo *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := iuo.mutation.ClientName(); ok {
		_spec.SetField(invoice.FieldClientName, field.TypeString, value)
	}
	if value, ok := iuo.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.FinalAmount(); ok {
		_spec.SetField(invoice.FieldFinalAmount, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iuo.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := iuo.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := iuo.mutation.PaymentLink(); ok {
		_spec.SetField(invoice.FieldPaymentLink, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iuo.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.RemovedItemsIDs(); len(nodes) > 0 && !iuo.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
