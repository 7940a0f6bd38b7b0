package postgres

import (
	"context"
	"fmt"
	"log"

	"timebill-api/ent"
	"timebill-api/ent/service"
	"timebill-api/internal/storage"
	"timebill-api/internal/transport/dto"
)

// ServiceRepo implements the storage.ServiceRepository interface using Ent.
type ServiceRepo struct {
	client *ent.Client
}

// NewServiceRepo creates a new ServiceRepo.
func NewServiceRepo(client *ent.Client) *ServiceRepo {
	return &ServiceRepo{client: client}
}

var _ storage.ServiceRepository = (*ServiceRepo)(nil)

// GetAll retrieves the whole service catalog, ordered by name.
func (r *ServiceRepo) GetAll(ctx context.Context) ([]*ent.Service, error) {
	services, err := r.client.Service.
		Query().
		Order(ent.Asc(service.FieldName)).
		All(ctx)

	if err != nil {
		log.Printf("Error querying services: %v\n", err)
		return nil, fmt.Errorf("failed to query services: %w", err)
	}

	return services, nil
}

// GetByID retrieves a single catalog entry.
func (r *ServiceRepo) GetByID(ctx context.Context, req *dto.GetServiceByIDRequest) (*ent.Service, error) {
	entService, err := r.client.Service.Get(ctx, req.ID)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Service not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving service by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get service by ID %s: %w", req.ID, err)
	}

	return entService, nil
}

// Create adds a catalog entry.
func (r *ServiceRepo) Create(ctx context.Context, req *dto.CreateServiceRequest) (*ent.Service, error) {
	created, err := r.client.Service.Create().
		SetName(req.Name).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating service %q (constraint violation): %v\n", req.Name, err)
			return nil, fmt.Errorf("failed to create service: %w", storage.ErrConflict)
		}
		log.Printf("Error creating service %q: %v\n", req.Name, err)
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	log.Printf("Service created successfully with ID: %s", created.ID)
	return created, nil
}

// Update renames a catalog entry.
func (r *ServiceRepo) Update(ctx context.Context, req *dto.UpdateServiceRequest) (*ent.Service, error) {
	updated, err := r.client.Service.UpdateOneID(req.ID).
		SetName(req.Name).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Service not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating service %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update service %s: %w", req.ID, err)
	}

	return updated, nil
}

// Delete removes a catalog entry. Tasks referencing it keep their rows; the
// service edge is simply cleared by the foreign key.
func (r *ServiceRepo) Delete(ctx context.Context, req *dto.DeleteServiceRequest) error {
	err := r.client.Service.DeleteOneID(req.ID).Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Service not found for deletion with ID: %s\n", req.ID)
			return storage.ErrNotFound
		}
		log.Printf("Error deleting service %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete service %s: %w", req.ID, err)
	}

	log.Printf("Service deleted successfully: %s", req.ID)
	return nil
}
