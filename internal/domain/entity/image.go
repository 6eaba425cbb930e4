package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Image is an uploaded media asset. All four variants are stored as byte
// blobs in the row; list queries must omit the blob columns.
type Image struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Filename      string             `gorm:"size:255;not null" json:"filename"`
	MimeType      string             `gorm:"size:100;not null" json:"mime_type"`
	OriginalData  []byte             `gorm:"type:bytea;not null" json:"-"`
	ThumbnailData []byte             `gorm:"type:bytea;not null" json:"-"`
	MediumData    []byte             `gorm:"type:bytea;not null" json:"-"`
	LargeData     []byte             `gorm:"type:bytea;not null" json:"-"`
	AltText       string             `gorm:"size:255" json:"alt_text"`
	Title         string             `gorm:"size:255" json:"title"`
	Category      enum.ImageCategory `gorm:"size:50;default:'general'" json:"category"`
	Tags          StringList         `gorm:"type:text" json:"tags"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new image
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Image model
func (Image) TableName() string {
	return "images"
}

// VariantPath returns the serving URL for one variant of this image.
func (i *Image) VariantPath(size enum.ImageSize) string {
	return fmt.Sprintf("/api/images/%s/%s", i.ID, size)
}

// VariantData returns the stored bytes for the requested size.
func (i *Image) VariantData(size enum.ImageSize) []byte {
	switch size {
	case enum.ImageSizeOriginal:
		return i.OriginalData
	case enum.ImageSizeThumbnail:
		return i.ThumbnailData
	case enum.ImageSizeMedium:
		return i.MediumData
	case enum.ImageSizeLarge:
		return i.LargeData
	}
	return nil
}

// MarshalJSON adds the variant serving paths to the JSON shape, mirroring
// the path fields the admin UI consumes.
func (i Image) MarshalJSON() ([]byte, error) {
	type Alias Image
	return json.Marshal(&struct {
		Alias
		OriginalPath  string `json:"original_path"`
		ThumbnailPath string `json:"thumbnail_path"`
		MediumPath    string `json:"medium_path"`
		LargePath     string `json:"large_path"`
	}{
		Alias:         Alias(i),
		OriginalPath:  i.VariantPath(enum.ImageSizeOriginal),
		ThumbnailPath: i.VariantPath(enum.ImageSizeThumbnail),
		MediumPath:    i.VariantPath(enum.ImageSizeMedium),
		LargePath:     i.VariantPath(enum.ImageSizeLarge),
	})
}
