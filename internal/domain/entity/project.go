package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Project is a completed job shown in the public portfolio.
type Project struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Title            string             `gorm:"size:255;not null" json:"title"`
	Slug             string             `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	ShortDescription string             `gorm:"size:500" json:"short_description"`
	Description      string             `gorm:"type:text;not null" json:"description"`
	FeaturedImageID  *uuid.UUID         `gorm:"type:uuid" json:"featured_image_id,omitempty"`
	Status           enum.PublishStatus `gorm:"size:20;default:'draft'" json:"status"`
	ShowInPortfolio  bool               `gorm:"default:true" json:"show_in_portfolio"`
	SEO              SEOFields          `gorm:"embedded;embeddedPrefix:seo_" json:"seo"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	DeletedAt        gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	FeaturedImage *Image  `gorm:"foreignKey:FeaturedImageID" json:"featured_image,omitempty"`
	Images        []Image `gorm:"many2many:project_images" json:"images,omitempty"`
}

// BeforeCreate generates a UUID before creating a new project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
