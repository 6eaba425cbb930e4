package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	settings     *SettingsService
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	settings *SettingsService,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		settings:     settings,
	}
}

// LineItemInput is one submitted line-item row. Numeric fields arrive
// already parsed; the form layer maps unparseable values to nil.
type LineItemInput struct {
	ProductID   *uuid.UUID
	Name        string
	SKU         string
	Description string
	Taxable     bool
	UnitPrice   *decimal.Decimal
	UnitCost    *decimal.Decimal
	Quantity    *int
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	CustomerID    uuid.UUID
	SaleDate      *time.Time
	Status        string
	PaymentStatus string
	TaxRate       *decimal.Decimal
	Notes         string
	LineItems     []LineItemInput
}

// UpdateSaleInput replaces a sale's editable fields and its line items
// wholesale.
type UpdateSaleInput struct {
	ID            uuid.UUID
	SaleDate      *time.Time
	Status        string
	PaymentStatus string
	TaxRate       *decimal.Decimal
	Notes         string
	LineItems     []LineItemInput
}

// buildLineItems drops rows missing a name, price or quantity (matching
// the form's skip-invalid-rows behavior), snapshots product cost where the
// row references a product without an explicit cost, and sanitizes the
// numeric fields.
func (s *SaleService) buildLineItems(ctx context.Context, inputs []LineItemInput) []entity.SaleLineItem {
	items := make([]entity.SaleLineItem, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.UnitPrice == nil || in.Quantity == nil {
			continue
		}

		item := entity.SaleLineItem{
			ProductID:   in.ProductID,
			Name:        name,
			SKU:         strings.TrimSpace(in.SKU),
			Description: strings.TrimSpace(in.Description),
			Taxable:     in.Taxable,
			UnitPrice:   *in.UnitPrice,
			Quantity:    *in.Quantity,
		}

		if in.UnitCost != nil {
			item.UnitCost = *in.UnitCost
		} else if in.ProductID != nil {
			if product, err := s.productRepo.GetByID(ctx, *in.ProductID); err == nil && product != nil {
				item.UnitCost = product.CostPrice
			}
		}

		items = append(items, SanitizeLineItem(item))
	}
	return items
}

func (s *SaleService) defaultTaxRate(ctx context.Context) decimal.Decimal {
	settings, err := s.settings.Get(ctx)
	if err != nil || settings == nil {
		return entity.DefaultSalesTaxRate
	}
	return NormalizeTaxRate(&settings.SalesTaxRate, entity.DefaultSalesTaxRate)
}

// CreateSale creates a sale for a customer, computing all derived totals.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	items := s.buildLineItems(ctx, input.LineItems)
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("At least one valid line item is required")
	}

	saleDate := time.Now()
	if input.SaleDate != nil {
		saleDate = *input.SaleDate
	}

	rate := NormalizeTaxRate(input.TaxRate, s.defaultTaxRate(ctx))
	totals, items := CalculateTotals(rate, items)

	sale := &entity.Sale{
		CustomerID:    input.CustomerID,
		SaleDate:      saleDate,
		Status:        enum.ParseSaleStatus(input.Status, enum.SaleStatusOpen),
		PaymentStatus: enum.ParsePaymentStatus(input.PaymentStatus, enum.PaymentStatusUnpaid),
		Notes:         strings.TrimSpace(input.Notes),
		TaxRate:       rate,
		Subtotal:      totals.Subtotal,
		TaxTotal:      totals.TaxTotal,
		Total:         totals.Total,
		LineItems:     items,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// GetSale retrieves a sale with its customer and line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering, newest first, capped at 100.
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, error) {
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 100
	}
	return s.saleRepo.List(ctx, params)
}

// UpdateSale replaces the sale's line items wholesale and recalculates.
// Date, status and tax rate keep their current value when the input leaves
// them empty; notes are replaced as submitted.
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	items := s.buildLineItems(ctx, input.LineItems)
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("At least one valid line item is required")
	}

	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	sale.Status = enum.ParseSaleStatus(input.Status, sale.Status)
	sale.PaymentStatus = enum.ParsePaymentStatus(input.PaymentStatus, sale.PaymentStatus)
	sale.Notes = strings.TrimSpace(input.Notes)

	fallback := sale.TaxRate
	if fallback.IsNegative() {
		fallback = s.defaultTaxRate(ctx)
	}
	sale.TaxRate = NormalizeTaxRate(input.TaxRate, fallback)

	totals, items := CalculateTotals(sale.TaxRate, items)
	sale.Subtotal = totals.Subtotal
	sale.TaxTotal = totals.TaxTotal
	sale.Total = totals.Total

	if err := s.saleRepo.ReplaceItems(ctx, sale, items); err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// CancelSale soft-deletes a sale by moving it to the cancelled status. The
// record itself is kept for historical reporting.
func (s *SaleService) CancelSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.UpdateStatus(ctx, id, enum.SaleStatusCancelled)
}

// ListCustomerSales returns a customer's most recent sales.
func (s *SaleService) ListCustomerSales(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.Sale, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.saleRepo.ListByCustomer(ctx, customerID, limit)
}
