package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/newgenpools/site-api/pkg/pagination"
)

// CustomerService handles customer-related business logic
type CustomerService struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, saleRepo: saleRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name   string
	Email  string
	Phone  string
	Street string
	City   string
	State  string
	Zip    string
	Notes  string
	Status string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}

	customer := &entity.Customer{
		Name:   name,
		Email:  strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:  strings.TrimSpace(input.Phone),
		Street: strings.TrimSpace(input.Street),
		City:   strings.TrimSpace(input.City),
		State:  strings.TrimSpace(input.State),
		Zip:    strings.TrimSpace(input.Zip),
		Notes:  strings.TrimSpace(input.Notes),
		Status: enum.ParseCustomerStatus(input.Status),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer and their recent sales.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	sales, err := s.saleRepo.ListByCustomer(ctx, id, 20)
	if err != nil {
		return nil, err
	}
	customer.Sales = sales
	return customer, nil
}

// ListCustomers lists customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListActiveCustomers returns active customers for sale-form dropdowns.
func (s *CustomerService) ListActiveCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.ListActive(ctx)
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Phone  string
	Street string
	City   string
	State  string
	Zip    string
	Notes  string
	Status string
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}

	customer.Name = name
	customer.Email = strings.ToLower(strings.TrimSpace(input.Email))
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.Street = strings.TrimSpace(input.Street)
	customer.City = strings.TrimSpace(input.City)
	customer.State = strings.TrimSpace(input.State)
	customer.Zip = strings.TrimSpace(input.Zip)
	customer.Notes = strings.TrimSpace(input.Notes)
	customer.Status = enum.ParseCustomerStatus(string(input.Status))

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Sales keep their customer reference;
// the customer row is only soft-deleted.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}
