package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	saleService     *service.SaleService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, saleService *service.SaleService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, saleService: saleService}
}

// List handles listing customers with optional search
func (h *CustomerHandler) List(c *gin.Context) {
	result, err := h.customerService.ListCustomers(c.Request.Context(), pageParams(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// ListActive handles the sale-form customer dropdown
func (h *CustomerHandler) ListActive(c *gin.Context) {
	customers, err := h.customerService.ListActiveCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved successfully", customers)
}

// Get handles retrieving one customer with recent sales
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Street: req.Street,
		City:   req.City,
		State:  req.State,
		Zip:    req.Zip,
		Notes:  req.Notes,
		Status: req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer created successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.CustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Street: req.Street,
		City:   req.City,
		State:  req.State,
		Zip:    req.Zip,
		Notes:  req.Notes,
		Status: req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer deleted successfully", nil)
}

// Sales handles listing a customer's sale history
func (h *CustomerHandler) Sales(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sales, err := h.saleService.ListCustomerSales(c.Request.Context(), id, 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved successfully", sales)
}
