package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SettingsSingletonKey is the constant key of the one settings row. The
// unique index on it is what enforces the singleton, so a racing first
// read that loses the create simply re-reads the winner's row.
const SettingsSingletonKey = "global"

// DefaultSalesTaxRate is used when no rate is configured or the submitted
// rate is invalid.
var DefaultSalesTaxRate = decimal.NewFromFloat(0.0625)

// Settings is the site-wide configuration document: identity, contact
// details, SEO defaults, the sales tax rate and the theme.
type Settings struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	SingletonKey            string           `gorm:"size:20;uniqueIndex;not null" json:"-"`
	SiteName                string           `gorm:"size:255" json:"site_name"`
	DefaultMetaTitle        string           `gorm:"size:255" json:"default_meta_title"`
	DefaultMetaDescription  string           `gorm:"size:500" json:"default_meta_description"`
	DefaultOpenGraphImageID *uuid.UUID       `gorm:"type:uuid" json:"default_open_graph_image_id,omitempty"`
	ContactEmail            string           `gorm:"size:255" json:"contact_email"`
	ContactPhone            string           `gorm:"size:50" json:"contact_phone"`
	SalesTaxRate            decimal.Decimal  `gorm:"type:numeric(6,5)" json:"sales_tax_rate"`
	CompanyName             string           `gorm:"size:255" json:"company_name"`
	CompanyStreet           string           `gorm:"size:255" json:"company_street"`
	CompanyCity             string           `gorm:"size:100" json:"company_city"`
	CompanyState            string           `gorm:"size:50" json:"company_state"`
	CompanyZip              string           `gorm:"size:20" json:"company_zip"`
	CompanyCountry          string           `gorm:"size:100" json:"company_country"`
	Facebook                string           `gorm:"size:500" json:"facebook"`
	Instagram               string           `gorm:"size:500" json:"instagram"`
	Twitter                 string           `gorm:"size:500" json:"twitter"`
	LinkedIn                string           `gorm:"size:500" json:"linkedin"`
	ThemePreset             enum.ThemePreset `gorm:"size:20;default:'default'" json:"theme_preset"`
	PrimaryColor            string           `gorm:"size:20" json:"primary_color"`
	SecondaryColor          string           `gorm:"size:20" json:"secondary_color"`
	NavbarColor             string           `gorm:"size:20" json:"navbar_color"`
	FooterColor             string           `gorm:"size:20" json:"footer_color"`
	FontFamily              string           `gorm:"size:255" json:"font_family"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "global_settings"
}

// DefaultSettings returns the document created on first read.
func DefaultSettings() *Settings {
	return &Settings{
		SingletonKey:           SettingsSingletonKey,
		SiteName:               "New Generation Pools",
		DefaultMetaTitle:       "New Generation Pools - Premium Pool Services",
		DefaultMetaDescription: "New Generation Pools offers premium pool design, installation, and maintenance services.",
		ContactEmail:           "contact@newgenerationpools.com",
		SalesTaxRate:           DefaultSalesTaxRate,
		CompanyName:            "New Generation Pools",
		ThemePreset:            enum.ThemePresetDefault,
		PrimaryColor:           "#0d6efd",
		SecondaryColor:         "#6c757d",
		NavbarColor:            "#212529",
		FooterColor:            "#2c3e50",
		FontFamily:             "system-ui, -apple-system, sans-serif",
	}
}
