package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	domainRepo "github.com/newgenpools/site-api/internal/domain/repository"
	"gorm.io/gorm"
)

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *gorm.DB) domainRepo.ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) GetMeta(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	var image entity.Image
	err := r.db.WithContext(ctx).
		Scopes(imageMetaColumns).
		First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &image, err
}

// GetVariant selects the mime type and exactly one blob column. Variant
// sizes map to fixed columns so the size never reaches SQL as text.
func (r *imageRepository) GetVariant(ctx context.Context, id uuid.UUID, size enum.ImageSize) (string, []byte, error) {
	column, ok := variantColumn(size)
	if !ok {
		return "", nil, nil
	}

	var row struct {
		MimeType string
		Data     []byte
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Image{}).
		Select("mime_type", column+" AS data").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	return row.MimeType, row.Data, nil
}

func (r *imageRepository) UpdateMeta(ctx context.Context, image *entity.Image) error {
	return r.db.WithContext(ctx).
		Model(image).
		Select("filename", "alt_text", "title", "category", "tags").
		Updates(image).Error
}

func (r *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Image{}, "id = ?", id).Error
}

func (r *imageRepository) ListMeta(ctx context.Context, query string, limit int) ([]entity.Image, error) {
	var images []entity.Image
	db := r.db.WithContext(ctx).
		Scopes(imageMetaColumns).
		Order("created_at DESC")
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("filename ILIKE ? OR title ILIKE ?", pattern, pattern)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&images).Error
	return images, err
}

func variantColumn(size enum.ImageSize) (string, bool) {
	switch size {
	case enum.ImageSizeOriginal:
		return "original_data", true
	case enum.ImageSizeThumbnail:
		return "thumbnail_data", true
	case enum.ImageSizeMedium:
		return "medium_data", true
	case enum.ImageSizeLarge:
		return "large_data", true
	}
	return "", false
}
