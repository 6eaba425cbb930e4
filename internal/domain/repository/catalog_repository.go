package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Product, int64, error)
	// ListPublished returns published, active products for the public site,
	// ordered by display order then name.
	ListPublished(ctx context.Context) ([]entity.Product, error)
	// Search matches name or sku against a free-text query for the admin
	// sale-entry selector.
	Search(ctx context.Context, query string, limit int) ([]entity.Product, error)
	ReplaceImages(ctx context.Context, product *entity.Product, imageIDs []uuid.UUID) error
}

// ServiceRepository defines the interface for service data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Service, int64, error)
	// ListActive returns active services ordered by display order.
	ListActive(ctx context.Context) ([]entity.Service, error)
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Project, int64, error)
	// ListPortfolio returns published projects flagged for the portfolio.
	ListPortfolio(ctx context.Context) ([]entity.Project, error)
	ReplaceImages(ctx context.Context, project *entity.Project, imageIDs []uuid.UUID) error
}
