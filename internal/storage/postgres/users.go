package postgres

import (
	"context"
	"fmt"
	"log"

	"timebill-api/ent"
	"timebill-api/ent/user"
	"timebill-api/internal/storage"
	"timebill-api/internal/transport/dto"

	"golang.org/x/crypto/bcrypt"
)

// UserRepo implements the storage.UserRepository interface using Ent.
type UserRepo struct {
	client *ent.Client
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *ent.Client) *UserRepo {
	return &UserRepo{client: client}
}

var _ storage.UserRepository = (*UserRepo)(nil)

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*ent.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(user.IDEQ(req.ID)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", req.ID, err)
		return nil, err
	}

	return entUser, nil
}

// GetByEmail retrieves a single user by email, including the password hash
// for credential checks.
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*ent.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(user.EmailEQ(req.Email)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v\n", req.Email, err)
		return nil, err
	}

	return entUser, nil
}

// Create a new user. The plaintext password is hashed here and never stored.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	builder := r.client.User.
		Create().
		SetEmail(req.Email).
		SetPasswordHash(string(hashedPassword)).
		SetName(req.Name)

	if req.Role != "" {
		builder.SetRole(user.Role(req.Role))
	}

	entUser, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Attempted to create user with duplicate email %s: %v\n", req.Email, err)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, err
	}

	log.Printf("User created successfully with ID: %s", entUser.ID)

	return entUser, nil
}

// Update an existing user.
func (r *UserRepo) Update(ctx context.Context, req *dto.UpdateUserRequest) (*ent.User, error) {
	updateBuilder := r.client.User.UpdateOneID(req.ID)

	if req.Name != nil {
		updateBuilder.SetName(*req.Name)
	}

	entUser, err := updateBuilder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Attempted to update non-existent user %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			log.Printf("Attempted to update user %s resulting in constraint violation: %v\n", req.ID, err)
			return nil, storage.ErrConflict
		}
		log.Printf("Error updating user %s: %v\n", req.ID, err)
		return nil, err
	}

	return entUser, nil
}

// Delete a user by ID.
func (r *UserRepo) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	err := r.client.User.
		DeleteOneID(req.ID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Attempted to delete non-existent user %s\n", req.ID)
			return storage.ErrNotFound
		}
		log.Printf("Error deleting user %s: %v\n", req.ID, err)
		return err
	}

	return nil
}
