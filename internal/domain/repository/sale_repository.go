package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
)

// SaleRepository defines the interface for sale data operations. Writes
// replace the whole sale atomically: Update persists the sale row and its
// full line-item set in one transaction or not at all.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithItems loads the sale, its customer and its line items in
	// position order.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// ReplaceItems saves the sale and swaps its line items wholesale.
	ReplaceItems(ctx context.Context, sale *entity.Sale, items []entity.SaleLineItem) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.Sale, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// SaleFilterParams contains filtering parameters for sale list queries.
// Results are capped at Limit (default 100) sorted by sale date descending.
type SaleFilterParams struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	Status        *enum.SaleStatus
	PaymentStatus *enum.PaymentStatus
	CustomerID    *uuid.UUID
	Limit         int
}

// IdempotencyRepository stores cached responses for replayed write
// requests. Keys are scoped per user.
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
