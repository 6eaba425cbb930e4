package service

import (
	"context"

	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/pagination"
)

const recentDashboardItems = 5

// DashboardStats is the admin landing page summary
type DashboardStats struct {
	Customers      int64                   `json:"customers"`
	Products       int64                   `json:"products"`
	Services       int64                   `json:"services"`
	Projects       int64                   `json:"projects"`
	UnreadMessages int64                   `json:"unread_messages"`
	RecentSales    []entity.Sale           `json:"recent_sales"`
	RecentMessages []entity.ContactMessage `json:"recent_messages"`
}

// DashboardService aggregates counts and recent activity for the admin
// landing page
type DashboardService struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceRepository
	projectRepo  repository.ProjectRepository
	saleRepo     repository.SaleRepository
	messageRepo  repository.ContactMessageRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	projectRepo repository.ProjectRepository,
	saleRepo repository.SaleRepository,
	messageRepo repository.ContactMessageRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		projectRepo:  projectRepo,
		saleRepo:     saleRepo,
		messageRepo:  messageRepo,
	}
}

// GetStats assembles the dashboard summary
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	countParams := &pagination.PaginationParams{Page: 1, PerPage: 1}
	stats := &DashboardStats{}

	var err error
	if _, stats.Customers, err = s.customerRepo.List(ctx, countParams, ""); err != nil {
		return nil, err
	}
	if _, stats.Products, err = s.productRepo.List(ctx, countParams); err != nil {
		return nil, err
	}
	if _, stats.Services, err = s.serviceRepo.List(ctx, countParams); err != nil {
		return nil, err
	}
	if _, stats.Projects, err = s.projectRepo.List(ctx, countParams); err != nil {
		return nil, err
	}
	if stats.UnreadMessages, err = s.messageRepo.CountUnread(ctx); err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{Limit: recentDashboardItems})
	if err != nil {
		return nil, err
	}
	stats.RecentSales = sales

	messages, err := s.messageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(messages) > recentDashboardItems {
		messages = messages[:recentDashboardItems]
	}
	stats.RecentMessages = messages

	return stats, nil
}
