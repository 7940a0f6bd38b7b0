package postgres

import (
	"context"
	"fmt"
	"log"

	"timebill-api/ent"
	"timebill-api/ent/customer"
	"timebill-api/internal/storage"
	"timebill-api/internal/transport/dto"
)

// ClientRepo implements the storage.ClientRepository interface using Ent.
type ClientRepo struct {
	client *ent.Client
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(client *ent.Client) *ClientRepo {
	return &ClientRepo{client: client}
}

func (r *ClientRepo) WithTx(tx *ent.Tx) storage.ClientRepository {
	return &ClientRepo{client: tx.Client()}
}

var _ storage.ClientRepository = (*ClientRepo)(nil)

// Create registers a new client.
func (r *ClientRepo) Create(ctx context.Context, req *dto.CreateClientRequest) (*ent.Customer, error) {
	builder := r.client.Customer.Create().
		SetName(req.Name).
		SetOwner(req.Owner).
		SetEmail(req.Email).
		SetMobile(req.Mobile).
		SetProjectName(req.ProjectName).
		SetHourlyRate(req.HourlyRate)

	if req.Currency != "" {
		builder.SetCurrency(customer.Currency(req.Currency))
	}
	if len(req.ServiceIDs) > 0 {
		builder.AddServiceIDs(req.ServiceIDs...)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating client (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create client: invalid service reference: %w", storage.ErrConflict)
		}
		log.Printf("Error creating client %q: %v\n", req.Name, err)
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	log.Printf("Client created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves a client with its service catalog entries.
func (r *ClientRepo) GetByID(ctx context.Context, req *dto.GetClientByIDRequest) (*ent.Customer, error) {
	entClient, err := r.client.Customer.
		Query().
		Where(customer.IDEQ(req.ID)).
		WithServices().
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Client not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting client by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get client by ID %s: %w", req.ID, err)
	}

	return entClient, nil
}

// List retrieves clients, optionally filtered by lifecycle status.
func (r *ClientRepo) List(ctx context.Context, req *dto.ListClientsRequest) ([]*ent.Customer, error) {
	query := r.client.Customer.Query()

	if req.Status != nil {
		query = query.Where(customer.StatusEQ(*req.Status))
	}

	clients, err := query.
		WithServices().
		Order(ent.Asc(customer.FieldName)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying clients: %v\n", err)
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}

	return clients, nil
}

// Update modifies an existing client based on non-nil fields in the request.
// A non-nil ServiceIDs slice replaces the whole service assignment.
func (r *ClientRepo) Update(ctx context.Context, req *dto.UpdateClientRequest) (*ent.Customer, error) {
	builder := r.client.Customer.UpdateOneID(req.ID)

	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Owner != nil {
		builder.SetOwner(*req.Owner)
	}
	if req.Email != nil {
		builder.SetEmail(*req.Email)
	}
	if req.Mobile != nil {
		builder.SetMobile(*req.Mobile)
	}
	if req.ProjectName != nil {
		builder.SetProjectName(*req.ProjectName)
	}
	if req.HourlyRate != nil {
		builder.SetHourlyRate(*req.HourlyRate)
	}
	if req.Currency != nil {
		builder.SetCurrency(customer.Currency(*req.Currency))
	}
	if req.ServiceIDs != nil {
		builder.ClearServices().AddServiceIDs(*req.ServiceIDs...)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Client not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			log.Printf("Error updating client %s (constraint violation): %v\n", req.ID, err)
			return nil, fmt.Errorf("failed to update client: invalid reference: %w", storage.ErrConflict)
		}
		log.Printf("Error updating client %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update client %s: %w", req.ID, err)
	}

	return updated, nil
}

// SetStatus flips a client between active and inactive. Deactivation stands
// in for deletion so tasks and invoices keep a valid owner.
func (r *ClientRepo) SetStatus(ctx context.Context, req *dto.SetClientStatusRequest) (*ent.Customer, error) {
	updated, err := r.client.Customer.UpdateOneID(req.ID).
		SetStatus(req.Status).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Client not found for status change with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error changing client status %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to change client status %s: %w", req.ID, err)
	}

	log.Printf("Client %s status set to %s", updated.ID, updated.Status)
	return updated, nil
}
