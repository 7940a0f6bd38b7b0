// internal/transport/dto/client_dto.go
package dto

import (
	"time"

	"timebill-api/ent/customer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Client Request DTOs ---

// CreateClientRequest defines the structure for registering a new client.
// HourlyRate is validated in the service layer (decimal fields are opaque to
// the validator).
type CreateClientRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Owner       string          `json:"owner" validate:"omitempty,max=100"`
	Email       string          `json:"email" validate:"required,email"`
	Mobile      string          `json:"mobile" validate:"omitempty,max=20"`
	ProjectName string          `json:"project_name" validate:"omitempty,max=150"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Currency    string          `json:"currency" validate:"omitempty,oneof=USD INR"`
	ServiceIDs  []uuid.UUID     `json:"service_ids" validate:"omitempty,dive,uuid"`
}

// GetClientByIDRequest defines the structure for getting a client by ID.
type GetClientByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// ListClientsRequest defines parameters for listing clients.
type ListClientsRequest struct {
	Limit  int              `form:"limit,default=50"`
	Offset int              `form:"offset,default=0"`
	Status *customer.Status `form:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateClientRequest defines the structure for updating a client.
type UpdateClientRequest struct {
	ID          uuid.UUID        `json:"-" validate:"required,uuid"`
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Owner       *string          `json:"owner,omitempty" validate:"omitempty,max=100"`
	Email       *string          `json:"email,omitempty" validate:"omitempty,email"`
	Mobile      *string          `json:"mobile,omitempty" validate:"omitempty,max=20"`
	ProjectName *string          `json:"project_name,omitempty" validate:"omitempty,max=150"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
	Currency    *string          `json:"currency,omitempty" validate:"omitempty,oneof=USD INR"`
	ServiceIDs  *[]uuid.UUID     `json:"service_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// SetClientStatusRequest defines the structure for activating or deactivating
// a client. Deactivation replaces hard deletion.
type SetClientStatusRequest struct {
	ID     uuid.UUID       `json:"-" validate:"required,uuid"`
	Status customer.Status `json:"status" validate:"required,oneof=active inactive"`
}

// ClientResponse defines the standard client data returned to the caller.
type ClientResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Owner       string            `json:"owner,omitempty"`
	Email       string            `json:"email"`
	Mobile      string            `json:"mobile,omitempty"`
	ProjectName string            `json:"project_name,omitempty"`
	HourlyRate  decimal.Decimal   `json:"hourly_rate"`
	Currency    string            `json:"currency"`
	Status      string            `json:"status"`
	Services    []ServiceResponse `json:"services,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
