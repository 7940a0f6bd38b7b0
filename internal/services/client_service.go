package services

import (
	"context"
	"fmt"

	"timebill-api/ent"
	"timebill-api/internal/storage"
	"timebill-api/internal/storage/postgres"
	"timebill-api/internal/transport/dto"
)

type clientService struct {
	repo storage.ClientRepository
}

// NewClientService creates a new instance of ClientService.
func NewClientService(db *ent.Client) ClientService {
	return &clientService{
		repo: postgres.NewClientRepo(db),
	}
}

func (s *clientService) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*ent.Customer, error) {
	if req.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: hourly rate cannot be negative", ErrValidation)
	}

	client, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating client")
	}
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, req *dto.GetClientByIDRequest) (*ent.Customer, error) {
	client, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting client")
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, req *dto.ListClientsRequest) ([]*ent.Customer, error) {
	clients, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing clients")
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, req *dto.UpdateClientRequest) (*ent.Customer, error) {
	if req.HourlyRate != nil && req.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: hourly rate cannot be negative", ErrValidation)
	}

	client, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating client")
	}
	return client, nil
}

// SetClientStatus activates or deactivates a client. Inactive clients keep
// their tasks and invoices; they just stop showing up for new work.
func (s *clientService) SetClientStatus(ctx context.Context, req *dto.SetClientStatusRequest) (*ent.Customer, error) {
	client, err := s.repo.SetStatus(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "changing client status")
	}
	return client, nil
}
