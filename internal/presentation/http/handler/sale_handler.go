package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
	"github.com/newgenpools/site-api/pkg/apperror"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales with filters
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid filter parameters"))
		return
	}

	params := &repository.SaleFilterParams{
		DateFrom: request.ParseDate(req.DateFrom),
		DateTo:   request.ParseDate(req.DateTo),
		Limit:    req.Limit,
	}
	if status := enum.SaleStatus(req.Status); status.Valid() {
		params.Status = &status
	}
	if payment := enum.PaymentStatus(req.PaymentStatus); payment.Valid() {
		params.PaymentStatus = &payment
	}
	if id, err := uuid.Parse(req.CustomerID); err == nil {
		params.CustomerID = &id
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved successfully", sales)
}

// Get handles retrieving one sale with its line items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Create handles creating a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.SaleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid customer id"))
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		CustomerID:    customerID,
		SaleDate:      request.ParseDate(req.SaleDate),
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		TaxRate:       req.TaxRateDecimal(),
		Notes:         req.Notes,
		LineItems:     req.LineItems(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale created successfully", sale)
}

// Update handles replacing a sale's fields and line items
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.SaleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), &service.UpdateSaleInput{
		ID:            id,
		SaleDate:      request.ParseDate(req.SaleDate),
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		TaxRate:       req.TaxRateDecimal(),
		Notes:         req.Notes,
		LineItems:     req.LineItems(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale updated successfully", sale)
}

// Cancel handles cancelling a sale. The record stays in history with a
// cancelled status.
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.saleService.CancelSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale cancelled successfully", nil)
}
