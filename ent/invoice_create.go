// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"timebill-api/ent/customer"
	"timebill-api/ent/invoice"
	"timebill-api/ent/invoiceitem"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetInvoiceNumber sets the "invoice_number" field.
func (ic *InvoiceCreate) SetInvoiceNumber(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceNumber(s)
	return ic
}

// SetClientID sets the "client_id" field.
func (ic *InvoiceCreate) SetClientID(u uuid.UUID) *InvoiceCreate {
	ic.mutation.SetClientID(u)
	return ic
}

// SetClientName sets the "client_name" field.
func (ic *InvoiceCreate) SetClientName(s string) *InvoiceCreate {
	ic.mutation.SetClientName(s)
	return ic
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableClientName(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetClientName(*s)
	}
	return ic
}

// SetTotalAmount sets the "total_amount" field.
func (ic *InvoiceCreate) SetTotalAmount(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTotalAmount(d)
	return ic
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTotalAmount(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetTotalAmount(*d)
	}
	return ic
}

// SetTaxAmount sets the "tax_amount" field.
func (ic *InvoiceCreate) SetTaxAmount(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTaxAmount(d)
	return ic
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTaxAmount(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetTaxAmount(*d)
	}
	return ic
}

// SetFinalAmount sets the "final_amount" field.
func (ic *InvoiceCreate) SetFinalAmount(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetFinalAmount(d)
	return ic
}

// SetNillableFinalAmount sets the "final_amount" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableFinalAmount(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetFinalAmount(*d)
	}
	return ic
}

// SetTaxRate sets the "tax_rate" field.
func (ic *InvoiceCreate) SetTaxRate(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTaxRate(d)
	return ic
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTaxRate(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetTaxRate(*d)
	}
	return ic
}

// SetStatus sets the "status" field.
func (ic *InvoiceCreate) SetStatus(i invoice.Status) *InvoiceCreate {
	ic.mutation.SetStatus(i)
	return ic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableStatus(i *invoice.Status) *InvoiceCreate {
	if i != nil {
		ic.SetStatus(*i)
	}
	return ic
}

// SetIssueDate sets the "issue_date" field.
func (ic *InvoiceCreate) SetIssueDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetIssueDate(t)
	return ic
}

// SetDueDate sets the "due_date" field.
func (ic *InvoiceCreate) SetDueDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetDueDate(t)
	return ic
}

// SetPaymentLink sets the "payment_link" field.
func (ic *InvoiceCreate) SetPaymentLink(s string) *InvoiceCreate {
	ic.mutation.SetPaymentLink(s)
	return ic
}

// SetNillablePaymentLink sets the "payment_link" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaymentLink(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetPaymentLink(*s)
	}
	return ic
}

// SetNotes sets the "notes" field.
func (ic *InvoiceCreate) SetNotes(s string) *InvoiceCreate {
	ic.mutation.SetNotes(s)
	return ic
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableNotes(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetNotes(*s)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *InvoiceCreate) SetCreatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCreatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InvoiceCreate) SetUpdatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableUpdatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InvoiceCreate) SetID(u uuid.UUID) *InvoiceCreate {
	ic.mutation.SetID(u)
	return ic
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableID(u *uuid.UUID) *InvoiceCreate {
	if u != nil {
		ic.SetID(*u)
	}
	return ic
}

// SetClient sets the "client" edge to the Customer entity.
func (ic *InvoiceCreate) SetClient(c *Customer) *InvoiceCreate {
	return ic.SetClientID(c.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (ic *InvoiceCreate) AddItemIDs(ids ...uuid.UUID) *InvoiceCreate {
	ic.mutation.AddItemIDs(ids...)
	return ic
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (ic *InvoiceCreate) AddItems(i ...*InvoiceItem) *InvoiceCreate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return ic.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (ic *InvoiceCreate) Mutation() *InvoiceMutation {
	return ic.mutation
}

// Save creates the Invoice in the database.
func (ic *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InvoiceCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InvoiceCreate) defaults() {
	if _, ok := ic.mutation.ClientName(); !ok {
		v := invoice.DefaultClientName
		ic.mutation.SetClientName(v)
	}
	if _, ok := ic.mutation.TotalAmount(); !ok {
		v := invoice.DefaultTotalAmount
		ic.mutation.SetTotalAmount(v)
	}
	if _, ok := ic.mutation.TaxAmount(); !ok {
		v := invoice.DefaultTaxAmount
		ic.mutation.SetTaxAmount(v)
	}
	if _, ok := ic.mutation.FinalAmount(); !ok {
		v := invoice.DefaultFinalAmount
		ic.mutation.SetFinalAmount(v)
	}
	if _, ok := ic.mutation.TaxRate(); !ok {
		v := invoice.DefaultTaxRate
		ic.mutation.SetTaxRate(v)
	}
	if _, ok := ic.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		ic.mutation.SetStatus(v)
	}
	if _, ok := ic.mutation.PaymentLink(); !ok {
		v := invoice.DefaultPaymentLink
		ic.mutation.SetPaymentLink(v)
	}
	if _, ok := ic.mutation.Notes(); !ok {
		v := invoice.DefaultNotes
		ic.mutation.SetNotes(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.ID(); !ok {
		v := invoice.DefaultID()
		ic.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InvoiceCreate) check() error {
	if _, ok := ic.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "Invoice.invoice_number"`)}
	}
	if v, ok := ic.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := ic.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Invoice.client_id"`)}
	}
	if _, ok := ic.mutation.ClientName(); !ok {
		return &ValidationError{Name: "client_name", err: errors.New(`ent: missing required field "Invoice.client_name"`)}
	}
	if _, ok := ic.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "Invoice.total_amount"`)}
	}
	if _, ok := ic.mutation.TaxAmount(); !ok {
		return &ValidationError{Name: "tax_amount", err: errors.New(`ent: missing required field "Invoice.tax_amount"`)}
	}
	if _, ok := ic.mutation.FinalAmount(); !ok {
		return &ValidationError{Name: "final_amount", err: errors.New(`ent: missing required field "Invoice.final_amount"`)}
	}
	if _, ok := ic.mutation.TaxRate(); !ok {
		return &ValidationError{Name: "tax_rate", err: errors.New(`ent: missing required field "Invoice.tax_rate"`)}
	}
	if _, ok := ic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if v, ok := ic.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _, ok := ic.mutation.IssueDate(); !ok {
		return &ValidationError{Name: "issue_date", err: errors.New(`ent: missing required field "Invoice.issue_date"`)}
	}
	if _, ok := ic.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "Invoice.due_date"`)}
	}
	if _, ok := ic.mutation.PaymentLink(); !ok {
		return &ValidationError{Name: "payment_link", err: errors.New(`ent: missing required field "Invoice.payment_link"`)}
	}
	if _, ok := ic.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "Invoice.notes"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	if len(ic.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "Invoice.client"`)}
	}
	return nil
}

func (ic *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ic.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := ic.mutation.ClientName(); ok {
		_spec.SetField(invoice.FieldClientName, field.TypeString, value)
		_node.ClientName = value
	}
	if value, ok := ic.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeOther, value)
		_node.TotalAmount = value
	}
	if value, ok := ic.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeOther, value)
		_node.TaxAmount = value
	}
	if value, ok := ic.mutation.FinalAmount(); ok {
		_spec.SetField(invoice.FieldFinalAmount, field.TypeOther, value)
		_node.FinalAmount = value
	}
	if value, ok := ic.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeOther, value)
		_node.TaxRate = value
	}
	if value, ok := ic.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ic.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = value
	}
	if value, ok := ic.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := ic.mutation.PaymentLink(); ok {
		_spec.SetField(invoice.FieldPaymentLink, field.TypeString, value)
		_node.PaymentLink = value
	}
	if value, ok := ic.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ic.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ClientTable,
			Columns: []string{invoice.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ic.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (icb *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Invoice, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
