// internal/transport/dto/invoice_dto.go
package dto

import (
	"time"

	"timebill-api/ent/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Invoice Request DTOs ---

// PreviewInvoiceRequest defines the structure for pricing a task selection
// without persisting anything. TaxRate nil means "use the client's default".
type PreviewInvoiceRequest struct {
	ClientID uuid.UUID        `json:"client_id" validate:"required,uuid"`
	TaskIDs  []uuid.UUID      `json:"task_ids" validate:"required,min=1,dive,uuid"`
	TaxRate  *decimal.Decimal `json:"tax_rate,omitempty"`
}

// CreateInvoiceRequest defines the structure for generating an invoice from a
// task selection. Amounts are computed server-side from the client's hourly
// rate; callers only choose the tasks and presentation details.
type CreateInvoiceRequest struct {
	ClientID      uuid.UUID        `json:"client_id" validate:"required,uuid"`
	TaskIDs       []uuid.UUID      `json:"task_ids" validate:"required,min=1,dive,uuid"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	InvoiceNumber string           `json:"invoice_number" validate:"omitempty,max=50"`
	IssueDate     *time.Time       `json:"issue_date,omitempty"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	Notes         string           `json:"notes" validate:"omitempty,max=2000"`
	PaymentLink   string           `json:"payment_link" validate:"omitempty,url"`
}

// GetInvoiceByIDRequest defines the structure for getting an invoice by ID.
type GetInvoiceByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// ListInvoicesRequest defines parameters for listing invoices.
type ListInvoicesRequest struct {
	ClientID *uuid.UUID      `form:"client_id" validate:"omitempty,uuid"`
	Status   *invoice.Status `form:"status" validate:"omitempty,oneof=draft sent paid overdue"`
	Limit    int             `form:"limit,default=50"`
	Offset   int             `form:"offset,default=0"`
}

// UpdateInvoiceRequest defines the structure for editing an invoice. The task
// selection replaces the previous one and every amount is recomputed; tasks
// dropped from the selection return to the unbilled pool.
type UpdateInvoiceRequest struct {
	ID            uuid.UUID        `json:"-" validate:"required,uuid"`
	TaskIDs       []uuid.UUID      `json:"task_ids" validate:"required,min=1,dive,uuid"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty" validate:"omitempty,max=50"`
	IssueDate     *time.Time       `json:"issue_date,omitempty"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	Notes         *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
	PaymentLink   *string          `json:"payment_link,omitempty" validate:"omitempty,url"`
}

// UpdateInvoiceStatusRequest defines the structure for moving an invoice
// through its lifecycle (draft -> sent -> paid/overdue).
type UpdateInvoiceStatusRequest struct {
	ID        uuid.UUID      `json:"-" validate:"required,uuid"`
	NewStatus invoice.Status `json:"status" validate:"required,oneof=draft sent paid overdue"`
}

// DeleteInvoiceRequest defines the structure for voiding an invoice.
type DeleteInvoiceRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// --- Invoice Response DTOs ---

// InvoiceItemResponse is a frozen line item as it appeared when the invoice
// was composed.
type InvoiceItemResponse struct {
	TaskID      uuid.UUID       `json:"task_id"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
}

// InvoiceResponse defines the standard invoice data returned to the caller.
// Amounts are serialized rounded to 2 decimal places.
type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	ClientID      uuid.UUID             `json:"client_id"`
	ClientName    string                `json:"client_name"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	TaxRate       decimal.Decimal       `json:"tax_rate"`
	TaxAmount     decimal.Decimal       `json:"tax_amount"`
	FinalAmount   decimal.Decimal       `json:"final_amount"`
	Status        string                `json:"status"`
	IssueDate     time.Time             `json:"issue_date"`
	DueDate       time.Time             `json:"due_date"`
	PaymentLink   string                `json:"payment_link,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// InvoicePreviewResponse mirrors InvoiceResponse for a draft that was never
// persisted: no ID, no status, nothing billed.
type InvoicePreviewResponse struct {
	InvoiceNumber string                `json:"invoice_number"`
	ClientID      uuid.UUID             `json:"client_id"`
	ClientName    string                `json:"client_name"`
	Items         []InvoiceItemResponse `json:"items"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	TaxRate       decimal.Decimal       `json:"tax_rate"`
	TaxAmount     decimal.Decimal       `json:"tax_amount"`
	FinalAmount   decimal.Decimal       `json:"final_amount"`
	IssueDate     time.Time             `json:"issue_date"`
	DueDate       time.Time             `json:"due_date"`
}
