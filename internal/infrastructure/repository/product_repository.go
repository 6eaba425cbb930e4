package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	domainRepo "github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/pagination"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Images", imageMetaColumns).
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Images", imageMetaColumns).
		First(&product, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Omit("Images").Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("display_order ASC, name ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) ListPublished(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_active = ?", enum.PublishStatusPublished, true).
		Order("display_order ASC, name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Search(ctx context.Context, query string, limit int) ([]entity.Product, error) {
	var products []entity.Product

	q := r.db.WithContext(ctx).Model(&entity.Product{})
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}

	err := q.
		Order("name ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ReplaceImages(ctx context.Context, product *entity.Product, imageIDs []uuid.UUID) error {
	images := make([]entity.Image, len(imageIDs))
	for i, id := range imageIDs {
		images[i] = entity.Image{ID: id}
	}
	return r.db.WithContext(ctx).Model(product).Association("Images").Replace(images)
}

// imageMetaColumns restricts association preloads to image metadata so blob
// columns never ride along with catalog queries.
func imageMetaColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "filename", "mime_type", "alt_text", "title", "category", "tags", "created_at", "updated_at")
}
