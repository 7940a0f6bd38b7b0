package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Auth Request DTOs ---

// RegisterRequest defines the structure for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the structure for exchanging credentials for tokens.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the structure for rotating a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest defines the structure for revoking a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- User Request DTOs (storage-facing) ---

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// CreateUserRequest defines the structure for persisting a new user. Password
// is hashed by the repository before it touches the database.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"-" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin client"`
}

// UpdateUserRequest defines the structure for updating an existing user.
type UpdateUserRequest struct {
	ID   uuid.UUID `json:"-" validate:"required,uuid"`
	Name *string   `json:"name,omitempty" validate:"omitempty,max=100"`
}

// DeleteUserRequest defines the structure for deleting a user.
type DeleteUserRequest struct {
	ID uuid.UUID `json:"-" validate:"required,uuid"`
}

// --- Auth Response DTOs ---

// UserResponse defines the account data returned to the caller. The password
// hash never leaves the service layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse carries a fresh access/refresh token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // access token lifetime in seconds
}
