package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	domainRepo "github.com/newgenpools/site-api/internal/domain/repository"
	"gorm.io/gorm"
)

type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(db *gorm.DB) domainRepo.ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var msg entity.ContactMessage
	err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &msg, err
}

func (r *contactMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ContactMessage{}, "id = ?", id).Error
}

func (r *contactMessageRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *contactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
