package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog item sold on the site and selectable on sale forms.
type Product struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name             string             `gorm:"size:255;not null" json:"name"`
	Slug             string             `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	ShortDescription string             `gorm:"size:500" json:"short_description"`
	Description      string             `gorm:"type:text;not null" json:"description"`
	SKU              *string            `gorm:"size:100;uniqueIndex" json:"sku,omitempty"`
	Price            decimal.Decimal    `gorm:"type:numeric(12,2);default:0" json:"price"`
	CostPrice        decimal.Decimal    `gorm:"type:numeric(12,2);default:0" json:"cost_price"`
	Taxable          bool               `gorm:"default:true" json:"taxable"`
	FeaturedImageID  *uuid.UUID         `gorm:"type:uuid" json:"featured_image_id,omitempty"`
	Category         string             `gorm:"size:100;default:'general'" json:"category"`
	Sizes            StringList         `gorm:"type:text" json:"sizes"`
	Status           enum.PublishStatus `gorm:"size:20;default:'draft'" json:"status"`
	DisplayOrder     int                `gorm:"default:0" json:"display_order"`
	IsActive         bool               `gorm:"default:true" json:"is_active"`
	SEO              SEOFields          `gorm:"embedded;embeddedPrefix:seo_" json:"seo"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	DeletedAt        gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	FeaturedImage *Image  `gorm:"foreignKey:FeaturedImageID" json:"featured_image,omitempty"`
	Images        []Image `gorm:"many2many:product_images" json:"images,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// SEOFields are the per-page SEO overrides shared by the public catalog
// entities. Empty fields fall back to the site defaults from settings.
type SEOFields struct {
	Title        string     `gorm:"size:255" json:"title"`
	Description  string     `gorm:"size:500" json:"description"`
	Keywords     StringList `gorm:"type:text" json:"keywords"`
	CanonicalURL string     `gorm:"size:500" json:"canonical_url"`
	Index        bool       `gorm:"default:true" json:"index"`
}
