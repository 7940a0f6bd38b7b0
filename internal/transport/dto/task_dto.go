// internal/transport/dto/task_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Task Request DTOs ---

// CreateTaskRequest defines the structure for logging billable work.
// Hours must be positive; the service layer enforces it.
type CreateTaskRequest struct {
	ClientID    uuid.UUID       `json:"client_id" validate:"required,uuid"`
	Description string          `json:"description" validate:"required,max=500"`
	Hours       decimal.Decimal `json:"hours"`
	Date        time.Time       `json:"date" validate:"required"`
	ServiceID   *uuid.UUID      `json:"service_id,omitempty" validate:"omitempty,uuid"`
	Platform    string          `json:"platform" validate:"omitempty,oneof=Mobile Web Other"`
}

// GetTaskByIDRequest defines the structure for getting a task by ID.
type GetTaskByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// ListTasksRequest defines parameters for listing tasks. From/To bound the
// work date as [from, to).
type ListTasksRequest struct {
	ClientID *uuid.UUID `form:"client_id" validate:"omitempty,uuid"`
	Billed   *bool      `form:"billed"`
	Platform *string    `form:"platform" validate:"omitempty,oneof=Mobile Web Other"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Limit    int        `form:"limit,default=50"`
	Offset   int        `form:"offset,default=0"`
}

// ListUnbilledTasksRequest defines parameters for the invoice-builder task
// picker: every unbilled task for one client.
type ListUnbilledTasksRequest struct {
	ClientID uuid.UUID `json:"-" validate:"required,uuid"`
}

// UpdateTaskRequest defines the structure for editing an unbilled task.
type UpdateTaskRequest struct {
	ID          uuid.UUID        `json:"-" validate:"required,uuid"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	ServiceID   *uuid.UUID       `json:"service_id,omitempty" validate:"omitempty,uuid"`
	Platform    *string          `json:"platform,omitempty" validate:"omitempty,oneof=Mobile Web Other"`
}

// DeleteTaskRequest defines the structure for deleting an unbilled task.
type DeleteTaskRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// TaskResponse defines the standard task data returned to the caller.
type TaskResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"client_id"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	Date        time.Time       `json:"date"`
	ServiceID   *uuid.UUID      `json:"service_id,omitempty"`
	Platform    string          `json:"platform"`
	Billed      bool            `json:"billed"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
