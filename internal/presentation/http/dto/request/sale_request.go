package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/shopspring/decimal"
)

// SaleLineItemRequest is one submitted line-item row. Numeric fields arrive
// as strings from the admin form; unparseable values become nil so the
// service layer can skip or default them.
type SaleLineItemRequest struct {
	ProductID   string `json:"product_id" form:"product_id"`
	Name        string `json:"name" form:"name"`
	SKU         string `json:"sku" form:"sku"`
	Description string `json:"description" form:"description"`
	Taxable     bool   `json:"taxable" form:"taxable"`
	UnitPrice   string `json:"unit_price" form:"unit_price"`
	UnitCost    string `json:"unit_cost" form:"unit_cost"`
	Quantity    string `json:"quantity" form:"quantity"`
}

// SaleRequest carries the writable sale fields for create and update
type SaleRequest struct {
	CustomerID    string                `json:"customer_id" form:"customer_id" binding:"required"`
	SaleDate      string                `json:"sale_date" form:"sale_date"`
	Status        string                `json:"status" form:"status"`
	PaymentStatus string                `json:"payment_status" form:"payment_status"`
	TaxRate       string                `json:"tax_rate" form:"tax_rate"`
	Notes         string                `json:"notes" form:"notes"`
	Items         []SaleLineItemRequest `json:"items" form:"items"`
}

// SaleFilterRequest represents sale list filter parameters
type SaleFilterRequest struct {
	DateFrom      string `form:"date_from"`
	DateTo        string `form:"date_to"`
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	CustomerID    string `form:"customer_id"`
	Limit         int    `form:"limit"`
}

func parseDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func parseUUID(s string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}

// ParseDate accepts the date-only form value, falling back to RFC 3339.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// LineItems converts the submitted rows into service inputs
func (r *SaleRequest) LineItems() []service.LineItemInput {
	items := make([]service.LineItemInput, 0, len(r.Items))
	for _, row := range r.Items {
		var qty *int
		if d := parseDecimal(row.Quantity); d != nil {
			n := int(d.IntPart())
			qty = &n
		}
		items = append(items, service.LineItemInput{
			ProductID:   parseUUID(row.ProductID),
			Name:        row.Name,
			SKU:         row.SKU,
			Description: row.Description,
			Taxable:     row.Taxable,
			UnitPrice:   parseDecimal(row.UnitPrice),
			UnitCost:    parseDecimal(row.UnitCost),
			Quantity:    qty,
		})
	}
	return items
}

// TaxRateDecimal parses the submitted tax rate, nil when absent or invalid
func (r *SaleRequest) TaxRateDecimal() *decimal.Decimal {
	return parseDecimal(r.TaxRate)
}
