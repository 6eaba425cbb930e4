package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
	"github.com/newgenpools/site-api/internal/presentation/http/middleware"
	"github.com/newgenpools/site-api/pkg/apperror"
)

// ContactHandler handles the public contact form and the admin inbox
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// formRedirect sends a browser form submission back where it came from with
// a flash message. API clients never reach this path.
func formRedirect(c *gin.Context, flash string) {
	middleware.AddFlash(c, flash)
	target := c.GetHeader("Referer")
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}

// Submit handles the public contact form. Browser submissions redirect back
// with a flash message; API clients get the JSON envelope.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		if !middleware.WantsJSON(c) {
			formRedirect(c, "Please fill in your name, email and message.")
			return
		}
		response.ErrorWithCode(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	msg, err := h.contactService.SubmitMessage(c.Request.Context(), &service.ContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Town:        req.Town,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		if !middleware.WantsJSON(c) {
			formRedirect(c, apperror.GetAppError(err).Message)
			return
		}
		response.Error(c, err)
		return
	}

	if !middleware.WantsJSON(c) {
		formRedirect(c, "Thank you, we will be in touch soon.")
		return
	}
	response.Created(c, "Thank you, we will be in touch soon", gin.H{"id": msg.ID})
}

// Inquiry handles an order inquiry submitted from a product page
func (h *ContactHandler) Inquiry(c *gin.Context) {
	var req request.InquiryRequest
	if err := c.ShouldBind(&req); err != nil {
		if !middleware.WantsJSON(c) {
			formRedirect(c, "Please fill in your name and email.")
			return
		}
		response.ErrorWithCode(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	msg, err := h.contactService.SubmitProductInquiry(c.Request.Context(), c.Param("slug"), &service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Town:    req.Town,
		Message: req.Message,
	})
	if err != nil {
		if !middleware.WantsJSON(c) {
			formRedirect(c, apperror.GetAppError(err).Message)
			return
		}
		response.Error(c, err)
		return
	}

	if !middleware.WantsJSON(c) {
		formRedirect(c, "Thanks for your interest, we will be in touch soon.")
		return
	}
	response.Created(c, "Inquiry received", gin.H{"id": msg.ID})
}

// List handles the admin inbox listing
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contactService.ListMessages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	unread, err := h.contactService.CountUnread(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Messages retrieved successfully", gin.H{
		"messages": messages,
		"unread":   unread,
	})
}

// Get handles reading one message, marking it read
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msg, err := h.contactService.GetMessage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Message retrieved successfully", msg)
}

// MarkRead handles flagging a message as read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.contactService.MarkMessageRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Message marked as read", nil)
}

// Delete handles removing a message from the inbox
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.contactService.DeleteMessage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Message deleted successfully", nil)
}
