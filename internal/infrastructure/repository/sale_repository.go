package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	domainRepo "github.com/newgenpools/site-api/internal/domain/repository"
	"gorm.io/gorm"
)

const defaultSaleListLimit = 100

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

// ReplaceItems saves the sale header and swaps the line-item set in a single
// transaction.
func (r *saleRepository) ReplaceItems(ctx context.Context, sale *entity.Sale, items []entity.SaleLineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("LineItems").Save(sale).Error; err != nil {
			return err
		}
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&entity.SaleLineItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.Nil
			items[i].SaleID = sale.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		sale.LineItems = items
		return nil
	})
}

func (r *saleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, error) {
	var sales []entity.Sale

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Preload("Customer")

	if params.DateFrom != nil {
		query = query.Where("sale_date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("sale_date <= ?", *params.DateTo)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	limit := params.Limit
	if limit <= 0 || limit > defaultSaleListLimit {
		limit = defaultSaleListLimit
	}

	err := query.
		Order("sale_date DESC, created_at DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("sale_date DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count, err
}
