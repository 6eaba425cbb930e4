package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/newgenpools/site-api/pkg/email"
)

// ContactService handles contact form submissions and the admin inbox
type ContactService struct {
	messageRepo repository.ContactMessageRepository
	productRepo repository.ProductRepository
	emailSvc    *email.Service
}

// NewContactService creates a new contact service
func NewContactService(messageRepo repository.ContactMessageRepository, productRepo repository.ProductRepository, emailSvc *email.Service) *ContactService {
	return &ContactService{
		messageRepo: messageRepo,
		productRepo: productRepo,
		emailSvc:    emailSvc,
	}
}

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name        string
	Email       string
	Phone       string
	Town        string
	ServiceType string
	Message     string
}

// SubmitMessage stores an inquiry and notifies the configured address. The
// submission succeeds even when email delivery fails; the message is already
// in the inbox.
func (s *ContactService) SubmitMessage(ctx context.Context, input *ContactInput) (*entity.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	addr := strings.ToLower(strings.TrimSpace(input.Email))
	body := strings.TrimSpace(input.Message)

	if name == "" || addr == "" || body == "" {
		return nil, apperror.NewBadRequestError("Name, email and message are required")
	}

	serviceType := enum.ServiceType(strings.TrimSpace(input.ServiceType))
	if input.ServiceType != "" && !serviceType.Valid() {
		return nil, apperror.NewBadRequestError("Unknown service type")
	}

	msg := &entity.ContactMessage{
		Name:        name,
		Email:       addr,
		Phone:       strings.TrimSpace(input.Phone),
		Town:        strings.TrimSpace(input.Town),
		ServiceType: serviceType,
		Message:     body,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.emailSvc.Enabled() {
		if err := s.emailSvc.SendContactNotification(email.ContactNotification{
			Name:        msg.Name,
			Email:       msg.Email,
			Phone:       msg.Phone,
			Town:        msg.Town,
			ServiceType: string(msg.ServiceType),
			Message:     msg.Message,
		}); err != nil {
			log.Printf("contact notification email failed: %v", err)
		}
	}
	return msg, nil
}

// SubmitProductInquiry records an order inquiry for a catalog product. The
// product name and sku are stamped into the message body so the inbox entry
// stands on its own even if the product is later removed.
func (s *ContactService) SubmitProductInquiry(ctx context.Context, slug string, input *ContactInput) (*entity.ContactMessage, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != enum.PublishStatusPublished || !product.IsActive {
		return nil, apperror.NewNotFoundError("Product")
	}

	subject := fmt.Sprintf("Order inquiry: %s", product.Name)
	if product.SKU != nil && *product.SKU != "" {
		subject = fmt.Sprintf("%s (SKU %s)", subject, *product.SKU)
	}

	body := strings.TrimSpace(input.Message)
	if body == "" {
		body = subject
	} else {
		body = subject + "\n\n" + body
	}

	return s.SubmitMessage(ctx, &ContactInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Town:    input.Town,
		Message: body,
	})
}

// ListMessages returns the full inbox, newest first
func (s *ContactService) ListMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	return s.messageRepo.List(ctx)
}

// GetMessage retrieves a single message and marks it read
func (s *ContactService) GetMessage(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, apperror.NewNotFoundError("Message")
	}
	if !msg.IsRead {
		if err := s.messageRepo.MarkRead(ctx, id); err != nil {
			return nil, err
		}
		msg.IsRead = true
	}
	return msg, nil
}

// MarkMessageRead flags a message as read without returning it
func (s *ContactService) MarkMessageRead(ctx context.Context, id uuid.UUID) error {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return apperror.NewNotFoundError("Message")
	}
	return s.messageRepo.MarkRead(ctx, id)
}

// DeleteMessage removes a message from the inbox
func (s *ContactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return apperror.NewNotFoundError("Message")
	}
	return s.messageRepo.Delete(ctx, id)
}

// CountUnread returns the number of unread inbox messages
func (s *ContactService) CountUnread(ctx context.Context) (int64, error) {
	return s.messageRepo.CountUnread(ctx)
}
