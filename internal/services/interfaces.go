package services

import (
	"context"

	"timebill-api/ent"
	"timebill-api/internal/billing"
	"timebill-api/internal/transport/dto"
)

// UserService defines the interface for account and auth business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*ent.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*ent.User, *dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*ent.User, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*ent.User, error)
	Delete(ctx context.Context, req *dto.DeleteUserRequest) error
}

// ClientService defines the interface for client-related business logic.
type ClientService interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*ent.Customer, error)
	GetClientByID(ctx context.Context, req *dto.GetClientByIDRequest) (*ent.Customer, error)
	ListClients(ctx context.Context, req *dto.ListClientsRequest) ([]*ent.Customer, error)
	UpdateClient(ctx context.Context, req *dto.UpdateClientRequest) (*ent.Customer, error)
	SetClientStatus(ctx context.Context, req *dto.SetClientStatusRequest) (*ent.Customer, error)
}

// CatalogService defines the interface for the service catalog.
type CatalogService interface {
	ListServices(ctx context.Context) ([]*ent.Service, error)
	GetServiceByID(ctx context.Context, req *dto.GetServiceByIDRequest) (*ent.Service, error)
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*ent.Service, error)
	UpdateService(ctx context.Context, req *dto.UpdateServiceRequest) (*ent.Service, error)
	DeleteService(ctx context.Context, req *dto.DeleteServiceRequest) error
}

// TaskService defines the interface for billable task business logic.
type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*ent.Task, error)
	GetTaskByID(ctx context.Context, req *dto.GetTaskByIDRequest) (*ent.Task, error)
	ListTasks(ctx context.Context, req *dto.ListTasksRequest) ([]*ent.Task, error)
	ListUnbilledTasks(ctx context.Context, req *dto.ListUnbilledTasksRequest) ([]*ent.Task, error)
	UpdateTask(ctx context.Context, req *dto.UpdateTaskRequest) (*ent.Task, error)
	DeleteTask(ctx context.Context, req *dto.DeleteTaskRequest) error
}

// InvoiceService defines the interface for invoice-related business logic,
// including the billed-flag transition that runs atomically with invoice
// creation, edit and voiding.
type InvoiceService interface {
	PreviewInvoice(ctx context.Context, req *dto.PreviewInvoiceRequest) (*billing.Draft, error)
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*ent.Invoice, error)
	GetInvoiceByID(ctx context.Context, req *dto.GetInvoiceByIDRequest) (*ent.Invoice, error)
	ListInvoices(ctx context.Context, req *dto.ListInvoicesRequest) ([]*ent.Invoice, error)
	UpdateInvoice(ctx context.Context, req *dto.UpdateInvoiceRequest) (*ent.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*ent.Invoice, error)
	DeleteInvoice(ctx context.Context, req *dto.DeleteInvoiceRequest) error
}

// ReportService defines the interface for revenue reporting.
type ReportService interface {
	MonthlyRevenue(ctx context.Context, req *dto.MonthlyRevenueRequest) (*dto.RevenueReportResponse, error)
}
