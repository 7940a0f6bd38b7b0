package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"timebill-api/ent"
	"timebill-api/ent/invoice"
	"timebill-api/ent/invoiceitem"
	"timebill-api/internal/billing"
	"timebill-api/internal/storage"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
)

// InvoiceRepo implements the storage.InvoiceRepository interface using Ent.
type InvoiceRepo struct {
	client *ent.Client
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(client *ent.Client) *InvoiceRepo {
	return &InvoiceRepo{client: client}
}

func (r *InvoiceRepo) WithTx(tx *ent.Tx) storage.InvoiceRepository {
	return &InvoiceRepo{client: tx.Client()}
}

var _ storage.InvoiceRepository = (*InvoiceRepo)(nil)

// Create persists a composed draft and its line items. Amounts are rounded to
// 2 decimal places at the storage boundary; the draft keeps full precision.
func (r *InvoiceRepo) Create(ctx context.Context, draft *billing.Draft) (*ent.Invoice, error) {
	created, err := r.client.Invoice.Create().
		SetInvoiceNumber(draft.InvoiceNumber).
		SetClientID(draft.ClientID).
		SetClientName(draft.ClientName).
		SetTotalAmount(draft.Subtotal.Round(2)).
		SetTaxAmount(draft.Tax.Round(2)).
		SetFinalAmount(draft.Total.Round(2)).
		SetTaxRate(draft.TaxRate).
		SetIssueDate(draft.IssueDate).
		SetDueDate(draft.DueDate).
		SetNotes(draft.Notes).
		SetPaymentLink(draft.PaymentLink).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating invoice (constraint violation, client %s): %v\n", draft.ClientID, err)
			return nil, fmt.Errorf("failed to create invoice: invalid client reference: %w", storage.ErrConflict)
		}
		log.Printf("Error creating invoice for client %s: %v\n", draft.ClientID, err)
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	if err := r.insertItems(ctx, created.ID, draft.Items); err != nil {
		return nil, err
	}

	log.Printf("Invoice created successfully with ID: %s (%s) for client %s",
		created.ID, created.InvoiceNumber, created.ClientID)
	return r.GetByID(ctx, &dto.GetInvoiceByIDRequest{ID: created.ID})
}

// GetByID retrieves an invoice together with its line items.
func (r *InvoiceRepo) GetByID(ctx context.Context, req *dto.GetInvoiceByIDRequest) (*ent.Invoice, error) {
	entInvoice, err := r.client.Invoice.
		Query().
		Where(invoice.IDEQ(req.ID)).
		WithItems(func(q *ent.InvoiceItemQuery) {
			q.Order(ent.Asc(invoiceitem.FieldPosition))
		}).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Invoice not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving invoice by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get invoice by ID %s: %w", req.ID, err)
	}

	return entInvoice, nil
}

// List retrieves invoices, optionally filtered by client and status, newest
// issue date first.
func (r *InvoiceRepo) List(ctx context.Context, req *dto.ListInvoicesRequest) ([]*ent.Invoice, error) {
	query := r.client.Invoice.Query()

	if req.ClientID != nil {
		query = query.Where(invoice.ClientID(*req.ClientID))
	}
	if req.Status != nil {
		query = query.Where(invoice.StatusEQ(*req.Status))
	}

	invoices, err := query.
		Order(ent.Desc(invoice.FieldIssueDate)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying invoices: %v\n", err)
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}

	return invoices, nil
}

// Replace overwrites an invoice's computed fields and rebuilds its line items
// from a freshly composed draft. Status is untouched.
func (r *InvoiceRepo) Replace(ctx context.Context, id uuid.UUID, draft *billing.Draft) (*ent.Invoice, error) {
	_, err := r.client.Invoice.UpdateOneID(id).
		SetInvoiceNumber(draft.InvoiceNumber).
		SetClientName(draft.ClientName).
		SetTotalAmount(draft.Subtotal.Round(2)).
		SetTaxAmount(draft.Tax.Round(2)).
		SetFinalAmount(draft.Total.Round(2)).
		SetTaxRate(draft.TaxRate).
		SetIssueDate(draft.IssueDate).
		SetDueDate(draft.DueDate).
		SetNotes(draft.Notes).
		SetPaymentLink(draft.PaymentLink).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Invoice not found for replace with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error replacing invoice %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to replace invoice %s: %w", id, err)
	}

	if _, err := r.client.InvoiceItem.
		Delete().
		Where(invoiceitem.InvoiceID(id)).
		Exec(ctx); err != nil {
		log.Printf("Error clearing items of invoice %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to clear invoice items: %w", err)
	}

	if err := r.insertItems(ctx, id, draft.Items); err != nil {
		return nil, err
	}

	log.Printf("Invoice replaced successfully: %s", id)
	return r.GetByID(ctx, &dto.GetInvoiceByIDRequest{ID: id})
}

// UpdateStatus moves an invoice to a new lifecycle status. Transition rules
// live in the service layer.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*ent.Invoice, error) {
	updated, err := r.client.Invoice.UpdateOneID(req.ID).
		SetStatus(req.NewStatus).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Invoice not found for status update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating invoice status %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update invoice status %s: %w", req.ID, err)
	}

	log.Printf("Invoice status updated successfully for ID: %s to %s", updated.ID, updated.Status)
	return updated, nil
}

// Delete removes an invoice; line items go with it via the cascade.
func (r *InvoiceRepo) Delete(ctx context.Context, req *dto.DeleteInvoiceRequest) error {
	err := r.client.Invoice.DeleteOneID(req.ID).Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Invoice not found for deletion with ID: %s\n", req.ID)
			return storage.ErrNotFound
		}
		log.Printf("Error deleting invoice %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete invoice %s: %w", req.ID, err)
	}

	log.Printf("Invoice deleted successfully: %s", req.ID)
	return nil
}

// ListPaidBetween retrieves paid invoices with issue dates in [from, to),
// oldest first. A zero time disables that bound.
func (r *InvoiceRepo) ListPaidBetween(ctx context.Context, from, to time.Time) ([]*ent.Invoice, error) {
	query := r.client.Invoice.
		Query().
		Where(invoice.StatusEQ(invoice.StatusPaid))

	if !from.IsZero() {
		query = query.Where(invoice.IssueDateGTE(from))
	}
	if !to.IsZero() {
		query = query.Where(invoice.IssueDateLT(to))
	}

	invoices, err := query.Order(ent.Asc(invoice.FieldIssueDate)).All(ctx)
	if err != nil {
		log.Printf("Error querying paid invoices: %v\n", err)
		return nil, fmt.Errorf("failed to query paid invoices: %w", err)
	}

	return invoices, nil
}

func (r *InvoiceRepo) insertItems(ctx context.Context, invoiceID uuid.UUID, items []billing.LineItem) error {
	builders := make([]*ent.InvoiceItemCreate, len(items))
	for i, item := range items {
		builders[i] = r.client.InvoiceItem.Create().
			SetInvoiceID(invoiceID).
			SetTaskID(item.TaskID).
			SetDescription(item.Description).
			SetHours(item.Hours).
			SetPosition(i)
	}

	if _, err := r.client.InvoiceItem.CreateBulk(builders...).Save(ctx); err != nil {
		log.Printf("Error creating %d items for invoice %s: %v\n", len(items), invoiceID, err)
		return fmt.Errorf("failed to create invoice items: %w", err)
	}

	return nil
}
