package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/newgenpools/site-api/pkg/pagination"
	"github.com/newgenpools/site-api/pkg/utils"
	"github.com/shopspring/decimal"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// ProductService handles product-related business logic
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	Name             string
	ShortDescription string
	Description      string
	SKU              string
	Price            *decimal.Decimal
	CostPrice        *decimal.Decimal
	Taxable          *bool
	FeaturedImageID  *uuid.UUID
	ImageIDs         []uuid.UUID
	Category         string
	Sizes            []string
	Status           string
	DisplayOrder     int
	IsActive         bool
	SEOTitle         string
	SEODescription   string
	SEOKeywords      []string
	SEOCanonicalURL  string
	SEOIndex         *bool
}

func (in *ProductInput) apply(p *entity.Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.Slug = utils.Slugify(p.Name)
	p.ShortDescription = strings.TrimSpace(in.ShortDescription)
	p.Description = strings.TrimSpace(in.Description)

	if sku := strings.TrimSpace(in.SKU); sku != "" {
		p.SKU = &sku
	} else {
		p.SKU = nil
	}

	if in.Price != nil && !in.Price.IsNegative() {
		p.Price = *in.Price
	}
	if in.CostPrice != nil && !in.CostPrice.IsNegative() {
		p.CostPrice = *in.CostPrice
	}
	if in.Taxable != nil {
		p.Taxable = *in.Taxable
	}

	p.FeaturedImageID = in.FeaturedImageID
	if in.Category != "" {
		p.Category = strings.TrimSpace(in.Category)
	}

	sizes := make([]string, 0, len(in.Sizes))
	for _, size := range in.Sizes {
		if size = strings.TrimSpace(size); size != "" {
			sizes = append(sizes, size)
		}
	}
	p.Sizes = sizes

	p.Status = enum.ParsePublishStatus(in.Status)
	p.DisplayOrder = in.DisplayOrder
	p.IsActive = in.IsActive

	p.SEO.Title = strings.TrimSpace(in.SEOTitle)
	p.SEO.Description = strings.TrimSpace(in.SEODescription)
	p.SEO.Keywords = in.SEOKeywords
	p.SEO.CanonicalURL = strings.TrimSpace(in.SEOCanonicalURL)
	if in.SEOIndex != nil {
		p.SEO.Index = *in.SEOIndex
	}
}

// CreateProduct creates a new product; the slug is derived from the name.
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewBadRequestError("Name and description are required")
	}

	product := &entity.Product{Taxable: true, IsActive: true}
	product.SEO.Index = true
	input.apply(product)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	if len(input.ImageIDs) > 0 {
		if err := s.productRepo.ReplaceImages(ctx, product, input.ImageIDs); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductBySlug retrieves a product by its slug
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists all products for the admin screen
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListPublishedProducts lists products visible on the public site
func (s *ProductService) ListPublishedProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListPublished(ctx)
}

// SearchProducts is the free-text product search behind the admin
// sale-entry selector: name or sku substring match, bounded result count.
func (s *ProductService) SearchProducts(ctx context.Context, query string, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return s.productRepo.Search(ctx, strings.TrimSpace(query), limit)
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewBadRequestError("Name and description are required")
	}

	input.apply(product)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	if input.ImageIDs != nil {
		if err := s.productRepo.ReplaceImages(ctx, product, input.ImageIDs); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// DeleteProduct removes a product. Sale line items keep their snapshot of
// the product's name and price, so history is unaffected.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
