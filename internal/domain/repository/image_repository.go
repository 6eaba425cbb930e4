package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
)

// ImageRepository defines the interface for media data operations
type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	// GetMeta loads an image without any blob columns.
	GetMeta(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	// GetVariant loads only the mime type and the one blob column for the
	// requested size. Callers pass a context with a deadline; this is the
	// only query path that serves binary data.
	GetVariant(ctx context.Context, id uuid.UUID, size enum.ImageSize) (mimeType string, data []byte, err error)
	UpdateMeta(ctx context.Context, image *entity.Image) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListMeta returns images newest first, blob columns omitted. A
	// non-empty query matches filename or title; limit 0 means no limit.
	ListMeta(ctx context.Context, query string, limit int) ([]entity.Image, error)
}

// ContactMessageRepository defines the interface for contact inbox data operations
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.ContactMessage, error)
	CountUnread(ctx context.Context) (int64, error)
}

// SettingsRepository defines the interface for the settings singleton.
// Get returns (nil, nil) when the row does not exist yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, settings *entity.Settings) error
	Update(ctx context.Context, settings *entity.Settings) error
}
