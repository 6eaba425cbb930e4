package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a pool service offered on the public site (design,
// installation, maintenance and so on).
type Service struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Slug             string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	ShortDescription string         `gorm:"size:500" json:"short_description"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	IconImageID      *uuid.UUID     `gorm:"type:uuid" json:"icon_image_id,omitempty"`
	HeroImageID      *uuid.UUID     `gorm:"type:uuid" json:"hero_image_id,omitempty"`
	DisplayOrder     int            `gorm:"default:0" json:"display_order"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	SEO              SEOFields      `gorm:"embedded;embeddedPrefix:seo_" json:"seo"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	IconImage *Image `gorm:"foreignKey:IconImageID" json:"icon_image,omitempty"`
	HeroImage *Image `gorm:"foreignKey:HeroImageID" json:"hero_image,omitempty"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
