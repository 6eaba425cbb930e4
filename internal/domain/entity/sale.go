package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is a customer-scoped order with embedded line items. The subtotal,
// tax and total columns are derived: they are recomputed from the line
// items and the tax rate on every write and are never authoritative on
// their own. A sale is never hard-deleted; cancelling sets the status to
// cancelled.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	SaleDate      time.Time          `gorm:"not null;index" json:"sale_date"`
	Status        enum.SaleStatus    `gorm:"size:20;default:'open';index" json:"status"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;default:'unpaid'" json:"payment_status"`
	Notes         string             `gorm:"type:text" json:"notes"`
	TaxRate       decimal.Decimal    `gorm:"type:numeric(6,5)" json:"tax_rate"`
	Subtotal      decimal.Decimal    `gorm:"type:numeric(12,2)" json:"subtotal"`
	TaxTotal      decimal.Decimal    `gorm:"type:numeric(12,2)" json:"tax_total"`
	Total         decimal.Decimal    `gorm:"type:numeric(12,2)" json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Customer  *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	LineItems []SaleLineItem `gorm:"foreignKey:SaleID" json:"line_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleLineItem is one priced row of a sale. Name, sku, description, price
// and taxability are snapshots taken at sale time so historical sales stay
// intact when the referenced product is edited or removed. Position keeps
// the form's insertion order. The per-line derived amounts are stored
// unrounded; only the order-level aggregates on Sale are rounded.
type SaleLineItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID    *uuid.UUID      `gorm:"type:uuid" json:"product_id,omitempty"`
	Position     int             `gorm:"not null;default:0" json:"position"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	SKU          string          `gorm:"size:100" json:"sku"`
	Description  string          `gorm:"type:text" json:"description"`
	Taxable      bool            `gorm:"default:true" json:"taxable"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	UnitCost     decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"unit_cost"`
	Quantity     int             `gorm:"not null;default:1" json:"quantity"`
	LineSubtotal decimal.Decimal `gorm:"type:numeric(14,4)" json:"line_subtotal"`
	LineTax      decimal.Decimal `gorm:"type:numeric(14,4)" json:"line_tax"`
	LineTotal    decimal.Decimal `gorm:"type:numeric(14,4)" json:"line_total"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *SaleLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLineItem model
func (SaleLineItem) TableName() string {
	return "sale_line_items"
}
