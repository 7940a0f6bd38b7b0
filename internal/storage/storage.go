package storage

import (
	"context"
	"time"

	"timebill-api/ent"
	"timebill-api/internal/billing"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*ent.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*ent.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*ent.User, error)
	Delete(ctx context.Context, req *dto.DeleteUserRequest) error
}

// ClientRepository defines the interface for client data operations. The
// backing entity is ent.Customer; see the schema for the naming note.
type ClientRepository interface {
	Create(ctx context.Context, req *dto.CreateClientRequest) (*ent.Customer, error)
	GetByID(ctx context.Context, req *dto.GetClientByIDRequest) (*ent.Customer, error)
	List(ctx context.Context, req *dto.ListClientsRequest) ([]*ent.Customer, error)
	Update(ctx context.Context, req *dto.UpdateClientRequest) (*ent.Customer, error)
	SetStatus(ctx context.Context, req *dto.SetClientStatusRequest) (*ent.Customer, error)
	WithTx(tx *ent.Tx) ClientRepository
}

// ServiceRepository defines the interface for the service catalog.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*ent.Service, error)
	GetByID(ctx context.Context, req *dto.GetServiceByIDRequest) (*ent.Service, error)
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*ent.Service, error)
	Update(ctx context.Context, req *dto.UpdateServiceRequest) (*ent.Service, error)
	Delete(ctx context.Context, req *dto.DeleteServiceRequest) error
}

// TaskRepository defines the interface for billable task operations.
type TaskRepository interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*ent.Task, error)
	GetByID(ctx context.Context, req *dto.GetTaskByIDRequest) (*ent.Task, error)
	// GetByIDs returns ErrNotFound unless every requested ID exists.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*ent.Task, error)
	List(ctx context.Context, req *dto.ListTasksRequest) ([]*ent.Task, error)
	ListUnbilled(ctx context.Context, req *dto.ListUnbilledTasksRequest) ([]*ent.Task, error)
	Update(ctx context.Context, req *dto.UpdateTaskRequest) (*ent.Task, error)
	// SetBilled flips the billed flag on every listed task and returns the
	// number of rows touched. ErrNotFound when any ID is missing.
	SetBilled(ctx context.Context, ids []uuid.UUID, billed bool) (int, error)
	Delete(ctx context.Context, req *dto.DeleteTaskRequest) error
	WithTx(tx *ent.Tx) TaskRepository
}

// InvoiceRepository defines the interface for invoice data operations.
type InvoiceRepository interface {
	// Create persists a composed draft together with its line items.
	Create(ctx context.Context, draft *billing.Draft) (*ent.Invoice, error)
	GetByID(ctx context.Context, req *dto.GetInvoiceByIDRequest) (*ent.Invoice, error)
	List(ctx context.Context, req *dto.ListInvoicesRequest) ([]*ent.Invoice, error)
	// Replace overwrites an invoice's computed fields and line items with a
	// freshly composed draft. Status is left untouched.
	Replace(ctx context.Context, id uuid.UUID, draft *billing.Draft) (*ent.Invoice, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*ent.Invoice, error)
	Delete(ctx context.Context, req *dto.DeleteInvoiceRequest) error
	// ListPaidBetween returns paid invoices whose issue date falls in
	// [from, to), ordered oldest first. Zero times disable the bound.
	ListPaidBetween(ctx context.Context, from, to time.Time) ([]*ent.Invoice, error)
	WithTx(tx *ent.Tx) InvoiceRepository
}
