// internal/transport/dto/service_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateServiceRequest defines the structure for adding a catalog entry.
type CreateServiceRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// GetServiceByIDRequest defines the structure for getting a service by ID.
type GetServiceByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// UpdateServiceRequest defines the structure for renaming a catalog entry.
type UpdateServiceRequest struct {
	ID   uuid.UUID `json:"-" validate:"required,uuid"`
	Name string    `json:"name" validate:"required,max=100"`
}

// DeleteServiceRequest defines the structure for deleting a catalog entry.
type DeleteServiceRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// ServiceResponse defines the standard service data returned to the caller.
type ServiceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
