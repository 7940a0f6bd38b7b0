package services

import (
	"context"

	"timebill-api/ent"
	"timebill-api/internal/storage"
	"timebill-api/internal/storage/postgres"
	"timebill-api/internal/transport/dto"
)

type catalogService struct {
	repo storage.ServiceRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(db *ent.Client) CatalogService {
	return &catalogService{
		repo: postgres.NewServiceRepo(db),
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]*ent.Service, error) {
	services, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing services")
	}
	return services, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, req *dto.GetServiceByIDRequest) (*ent.Service, error) {
	service, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting service")
	}
	return service, nil
}

func (s *catalogService) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*ent.Service, error) {
	service, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating service")
	}
	return service, nil
}

func (s *catalogService) UpdateService(ctx context.Context, req *dto.UpdateServiceRequest) (*ent.Service, error) {
	service, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating service")
	}
	return service, nil
}

func (s *catalogService) DeleteService(ctx context.Context, req *dto.DeleteServiceRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, "deleting service")
	}
	return nil
}
