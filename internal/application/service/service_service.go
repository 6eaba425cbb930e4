package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/newgenpools/site-api/pkg/pagination"
	"github.com/newgenpools/site-api/pkg/utils"
)

// ServiceCatalogService handles the service offerings shown on the site
type ServiceCatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceCatalogService creates a new service catalog service
func NewServiceCatalogService(serviceRepo repository.ServiceRepository) *ServiceCatalogService {
	return &ServiceCatalogService{serviceRepo: serviceRepo}
}

// ServiceInput carries the writable fields of a service offering.
type ServiceInput struct {
	Name             string
	ShortDescription string
	Description      string
	IconImageID      *uuid.UUID
	HeroImageID      *uuid.UUID
	DisplayOrder     int
	IsActive         bool
	SEOTitle         string
	SEODescription   string
	SEOKeywords      []string
	SEOCanonicalURL  string
	SEOIndex         *bool
}

func (in *ServiceInput) apply(svc *entity.Service) {
	svc.Name = strings.TrimSpace(in.Name)
	svc.Slug = utils.Slugify(svc.Name)
	svc.ShortDescription = strings.TrimSpace(in.ShortDescription)
	svc.Description = strings.TrimSpace(in.Description)
	svc.IconImageID = in.IconImageID
	svc.HeroImageID = in.HeroImageID
	svc.DisplayOrder = in.DisplayOrder
	svc.IsActive = in.IsActive

	svc.SEO.Title = strings.TrimSpace(in.SEOTitle)
	svc.SEO.Description = strings.TrimSpace(in.SEODescription)
	svc.SEO.Keywords = in.SEOKeywords
	svc.SEO.CanonicalURL = strings.TrimSpace(in.SEOCanonicalURL)
	if in.SEOIndex != nil {
		svc.SEO.Index = *in.SEOIndex
	}
}

// CreateService creates a new service offering
func (s *ServiceCatalogService) CreateService(ctx context.Context, input *ServiceInput) (*entity.Service, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewBadRequestError("Name and description are required")
	}

	svc := &entity.Service{IsActive: true}
	svc.SEO.Index = true
	input.apply(svc)

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetService retrieves a service by ID
func (s *ServiceCatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// GetServiceBySlug retrieves a service by its slug
func (s *ServiceCatalogService) GetServiceBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// ListServices lists all services for the admin screen
func (s *ServiceCatalogService) ListServices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Service], error) {
	services, total, err := s.serviceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(services, pag), nil
}

// ListActiveServices lists services visible on the public site, ordered for
// display.
func (s *ServiceCatalogService) ListActiveServices(ctx context.Context) ([]entity.Service, error) {
	return s.serviceRepo.ListActive(ctx)
}

// UpdateService updates an existing service
func (s *ServiceCatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *ServiceInput) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewBadRequestError("Name and description are required")
	}

	input.apply(svc)
	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service offering
func (s *ServiceCatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return apperror.NewNotFoundError("Service")
	}
	return s.serviceRepo.Delete(ctx, id)
}
