package services

import (
	"errors"
	"fmt"
	"log"

	"timebill-api/ent"
	"timebill-api/ent/invoice"
	"timebill-api/internal/billing"
	"timebill-api/internal/storage"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// isValidInvoiceStatusTransition checks if moving from current to next status
// is allowed. Lifecycle: draft -> sent -> paid, with sent -> overdue -> paid
// as the late-payment path. Paid is terminal.
func isValidInvoiceStatusTransition(current, next invoice.Status) bool {
	switch current {
	case invoice.StatusDraft:
		return next == invoice.StatusSent
	case invoice.StatusSent:
		return next == invoice.StatusPaid || next == invoice.StatusOverdue
	case invoice.StatusOverdue:
		return next == invoice.StatusPaid
	case invoice.StatusPaid:
		return false
	default:
		return false
	}
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// --- Response mappers ---

func MapUserToResponse(user *ent.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func MapServiceToResponse(service *ent.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:        service.ID,
		Name:      service.Name,
		CreatedAt: service.CreatedAt,
		UpdatedAt: service.UpdatedAt,
	}
}

func MapClientToResponse(client *ent.Customer) dto.ClientResponse {
	resp := dto.ClientResponse{
		ID:          client.ID,
		Name:        client.Name,
		Owner:       client.Owner,
		Email:       client.Email,
		Mobile:      client.Mobile,
		ProjectName: client.ProjectName,
		HourlyRate:  client.HourlyRate,
		Currency:    client.Currency.String(),
		Status:      client.Status.String(),
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
	if client.Edges.Services != nil {
		resp.Services = lo.Map(client.Edges.Services, func(s *ent.Service, _ int) dto.ServiceResponse {
			return MapServiceToResponse(s)
		})
	}
	return resp
}

func MapTaskToResponse(task *ent.Task) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:          task.ID,
		ClientID:    task.ClientID,
		Description: task.Description,
		Hours:       task.Hours,
		Date:        task.Date,
		Platform:    task.Platform.String(),
		Billed:      task.Billed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.ServiceID != uuid.Nil {
		serviceID := task.ServiceID
		resp.ServiceID = &serviceID
	}
	return resp
}

// MapDraftToPreview renders a composed draft the way the persisted invoice
// would look, with amounts rounded for presentation.
func MapDraftToPreview(draft *billing.Draft) dto.InvoicePreviewResponse {
	return dto.InvoicePreviewResponse{
		InvoiceNumber: draft.InvoiceNumber,
		ClientID:      draft.ClientID,
		ClientName:    draft.ClientName,
		Items: lo.Map(draft.Items, func(item billing.LineItem, _ int) dto.InvoiceItemResponse {
			return dto.InvoiceItemResponse{
				TaskID:      item.TaskID,
				Description: item.Description,
				Hours:       item.Hours,
			}
		}),
		TotalAmount: draft.Subtotal.Round(2),
		TaxRate:     draft.TaxRate,
		TaxAmount:   draft.Tax.Round(2),
		FinalAmount: draft.Total.Round(2),
		IssueDate:   draft.IssueDate,
		DueDate:     draft.DueDate,
	}
}

func MapInvoiceToResponse(inv *ent.Invoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ClientName:    inv.ClientName,
		TotalAmount:   inv.TotalAmount,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		FinalAmount:   inv.FinalAmount,
		Status:        inv.Status.String(),
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		PaymentLink:   inv.PaymentLink,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if inv.Edges.Items != nil {
		resp.Items = lo.Map(inv.Edges.Items, func(item *ent.InvoiceItem, _ int) dto.InvoiceItemResponse {
			return dto.InvoiceItemResponse{
				TaskID:      item.TaskID,
				Description: item.Description,
				Hours:       item.Hours,
			}
		})
	}
	return resp
}
