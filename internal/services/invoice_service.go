package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"timebill-api/ent"
	"timebill-api/ent/invoice"
	"timebill-api/internal/billing"
	"timebill-api/internal/storage"
	"timebill-api/internal/storage/postgres"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type invoiceService struct {
	invoiceRepo storage.InvoiceRepository
	taskRepo    storage.TaskRepository
	clientRepo  storage.ClientRepository
	db          *ent.Client
}

// NewInvoiceService creates a new instance of InvoiceService.
func NewInvoiceService(db *ent.Client) InvoiceService {
	return &invoiceService{
		invoiceRepo: postgres.NewInvoiceRepo(db),
		taskRepo:    postgres.NewTaskRepo(db),
		clientRepo:  postgres.NewClientRepo(db),
		db:          db,
	}
}

// compose loads the client and the selected tasks through the given repos and
// prices them. A nil taxRate falls back to the client's currency default.
// Callers pass transaction-bound repos when the result will be persisted so
// the selection cannot change underneath the commit.
func (s *invoiceService) compose(
	ctx context.Context,
	clientRepo storage.ClientRepository,
	taskRepo storage.TaskRepository,
	clientID uuid.UUID,
	taskIDs []uuid.UUID,
	opts billing.Options,
	taxRate *decimal.Decimal,
) (*billing.Draft, error) {
	client, err := clientRepo.GetByID(ctx, &dto.GetClientByIDRequest{ID: clientID})
	if err != nil {
		return nil, mapRepoError(err, "fetching client for invoice")
	}

	tasks, err := taskRepo.GetByIDs(ctx, taskIDs)
	if err != nil {
		return nil, mapRepoError(err, "fetching selected tasks")
	}

	if taxRate != nil {
		opts.TaxRate = *taxRate
	} else {
		opts.TaxRate = billing.DefaultTaxRate(client.Currency)
	}

	draft, err := billing.Compose(client, tasks, opts)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrTaskAlreadyBilled):
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		case errors.Is(err, billing.ErrEmptySelection),
			errors.Is(err, billing.ErrCrossClientSelection),
			errors.Is(err, billing.ErrInvalidTaxRate):
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		default:
			log.Printf("Unexpected compose error for client %s: %v", clientID, err)
			return nil, fmt.Errorf("internal error composing invoice: %w", err)
		}
	}

	return draft, nil
}

// PreviewInvoice prices a task selection without persisting anything. Nothing
// gets billed; the caller sees exactly what CreateInvoice would produce.
func (s *invoiceService) PreviewInvoice(ctx context.Context, req *dto.PreviewInvoiceRequest) (*billing.Draft, error) {
	return s.compose(ctx, s.clientRepo, s.taskRepo, req.ClientID, req.TaskIDs, billing.Options{}, req.TaxRate)
}

// CreateInvoice generates an invoice from a task selection. Composing the
// amounts, persisting the invoice and flipping every selected task to billed
// happen in one transaction: either all of it lands or none of it does.
func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*ent.Invoice, error) {
	// --- Transaction Start ---
	tx, err := s.db.Tx(ctx)
	if err != nil {
		log.Printf("CreateInvoice: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if anything fails

	txInvoiceRepo := s.invoiceRepo.WithTx(tx)
	txTaskRepo := s.taskRepo.WithTx(tx)
	txClientRepo := s.clientRepo.WithTx(tx)
	// --- End Transaction Setup ---

	opts := billing.Options{
		InvoiceNumber: req.InvoiceNumber,
		Notes:         req.Notes,
		PaymentLink:   req.PaymentLink,
	}
	if req.IssueDate != nil {
		opts.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		opts.DueDate = *req.DueDate
	}

	draft, err := s.compose(ctx, txClientRepo, txTaskRepo, req.ClientID, req.TaskIDs, opts, req.TaxRate)
	if err != nil {
		return nil, err
	}

	created, err := txInvoiceRepo.Create(ctx, draft)
	if err != nil {
		return nil, mapRepoError(err, "saving invoice")
	}

	if _, err := txTaskRepo.SetBilled(ctx, req.TaskIDs, true); err != nil {
		return nil, mapRepoError(err, "marking tasks billed")
	}

	// --- Commit Transaction ---
	if err := tx.Commit(); err != nil {
		log.Printf("CreateInvoice: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing invoice creation: %w", err)
	}
	// --- End Transaction ---

	return created, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, req *dto.GetInvoiceByIDRequest) (*ent.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting invoice")
	}
	return inv, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, req *dto.ListInvoicesRequest) ([]*ent.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing invoices")
	}
	return invoices, nil
}

// UpdateInvoice re-prices an invoice against a new task selection. The new
// selection replaces the old one: dropped tasks return to the unbilled pool,
// added tasks get billed, and the invoice's own tasks are exempt from the
// already-billed check. Paid invoices are immutable.
func (s *invoiceService) UpdateInvoice(ctx context.Context, req *dto.UpdateInvoiceRequest) (*ent.Invoice, error) {
	// --- Transaction Start ---
	tx, err := s.db.Tx(ctx)
	if err != nil {
		log.Printf("UpdateInvoice: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if anything fails

	txInvoiceRepo := s.invoiceRepo.WithTx(tx)
	txTaskRepo := s.taskRepo.WithTx(tx)
	txClientRepo := s.clientRepo.WithTx(tx)
	// --- End Transaction Setup ---

	current, err := txInvoiceRepo.GetByID(ctx, &dto.GetInvoiceByIDRequest{ID: req.ID})
	if err != nil {
		return nil, mapRepoError(err, "getting invoice for update")
	}

	if current.Status == invoice.StatusPaid {
		log.Printf("UpdateInvoice: Attempt to edit paid invoice %s", req.ID)
		return nil, fmt.Errorf("%w: paid invoices cannot be edited", ErrInvalidState)
	}

	oldTaskIDs := lo.Map(current.Edges.Items, func(item *ent.InvoiceItem, _ int) uuid.UUID {
		return item.TaskID
	})

	opts := billing.Options{
		InvoiceNumber: current.InvoiceNumber,
		IssueDate:     current.IssueDate,
		DueDate:       current.DueDate,
		Notes:         current.Notes,
		PaymentLink:   current.PaymentLink,
		Exempt:        lo.SliceToMap(oldTaskIDs, func(id uuid.UUID) (uuid.UUID, struct{}) { return id, struct{}{} }),
	}
	if req.InvoiceNumber != nil {
		opts.InvoiceNumber = *req.InvoiceNumber
	}
	if req.IssueDate != nil {
		opts.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		opts.DueDate = *req.DueDate
	}
	if req.Notes != nil {
		opts.Notes = *req.Notes
	}
	if req.PaymentLink != nil {
		opts.PaymentLink = *req.PaymentLink
	}

	rate := current.TaxRate
	if req.TaxRate != nil {
		rate = *req.TaxRate
	}

	draft, err := s.compose(ctx, txClientRepo, txTaskRepo, current.ClientID, req.TaskIDs, opts, &rate)
	if err != nil {
		return nil, err
	}

	updated, err := txInvoiceRepo.Replace(ctx, req.ID, draft)
	if err != nil {
		return nil, mapRepoError(err, "replacing invoice")
	}

	// Reconcile the billed flags: tasks dropped from the selection become
	// billable again, the new selection is billed as a whole.
	removed, _ := lo.Difference(oldTaskIDs, req.TaskIDs)
	if len(removed) > 0 {
		if _, err := txTaskRepo.SetBilled(ctx, removed, false); err != nil {
			return nil, mapRepoError(err, "releasing removed tasks")
		}
	}
	if _, err := txTaskRepo.SetBilled(ctx, req.TaskIDs, true); err != nil {
		return nil, mapRepoError(err, "marking selected tasks billed")
	}

	// --- Commit Transaction ---
	if err := tx.Commit(); err != nil {
		log.Printf("UpdateInvoice: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing invoice update: %w", err)
	}
	// --- End Transaction ---

	return updated, nil
}

// UpdateInvoiceStatus moves an invoice through its lifecycle.
func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*ent.Invoice, error) {
	current, err := s.invoiceRepo.GetByID(ctx, &dto.GetInvoiceByIDRequest{ID: req.ID})
	if err != nil {
		return nil, mapRepoError(err, "getting invoice for status update")
	}

	if !isValidInvoiceStatusTransition(current.Status, req.NewStatus) {
		log.Printf("UpdateInvoiceStatus: Invalid transition %s -> %s for invoice %s",
			current.Status, req.NewStatus, req.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, req.NewStatus)
	}

	updated, err := s.invoiceRepo.UpdateStatus(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating invoice status")
	}

	return updated, nil
}

// DeleteInvoice voids an invoice: its tasks return to the unbilled pool and
// the record disappears, atomically. Paid invoices are part of the payment
// history and cannot be voided.
func (s *invoiceService) DeleteInvoice(ctx context.Context, req *dto.DeleteInvoiceRequest) error {
	// --- Transaction Start ---
	tx, err := s.db.Tx(ctx)
	if err != nil {
		log.Printf("DeleteInvoice: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if anything fails

	txInvoiceRepo := s.invoiceRepo.WithTx(tx)
	txTaskRepo := s.taskRepo.WithTx(tx)
	// --- End Transaction Setup ---

	current, err := txInvoiceRepo.GetByID(ctx, &dto.GetInvoiceByIDRequest{ID: req.ID})
	if err != nil {
		return mapRepoError(err, "getting invoice for deletion")
	}

	if current.Status == invoice.StatusPaid {
		log.Printf("DeleteInvoice: Attempt to void paid invoice %s", req.ID)
		return fmt.Errorf("%w: paid invoices cannot be voided", ErrInvalidState)
	}

	taskIDs := lo.Map(current.Edges.Items, func(item *ent.InvoiceItem, _ int) uuid.UUID {
		return item.TaskID
	})
	if len(taskIDs) > 0 {
		if _, err := txTaskRepo.SetBilled(ctx, taskIDs, false); err != nil {
			return mapRepoError(err, "releasing invoiced tasks")
		}
	}

	if err := txInvoiceRepo.Delete(ctx, req); err != nil {
		return mapRepoError(err, "deleting invoice")
	}

	// --- Commit Transaction ---
	if err := tx.Commit(); err != nil {
		log.Printf("DeleteInvoice: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing invoice deletion: %w", err)
	}
	// --- End Transaction ---

	return nil
}
