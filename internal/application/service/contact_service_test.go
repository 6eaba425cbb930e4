package service

import (
	"context"
	"testing"

	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/newgenpools/site-api/pkg/email"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactFixture() (*ContactService, *fakeMessageRepo, *fakeProductRepo) {
	messageRepo := newFakeMessageRepo()
	productRepo := newFakeProductRepo()
	svc := NewContactService(messageRepo, productRepo, email.NewService(email.Config{}))
	return svc, messageRepo, productRepo
}

func TestSubmitMessageStoresTrimmedFields(t *testing.T) {
	svc, repo, _ := newContactFixture()

	msg, err := svc.SubmitMessage(context.Background(), &ContactInput{
		Name:        "  Jamie Ortiz  ",
		Email:       "Jamie@Example.COM",
		Phone:       "555-0101",
		Town:        "Lakeside",
		ServiceType: "pool install",
		Message:     "  Need a quote.  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jamie Ortiz", msg.Name)
	assert.Equal(t, "jamie@example.com", msg.Email)
	assert.Equal(t, enum.ServiceTypePoolInstall, msg.ServiceType)
	assert.Equal(t, "Need a quote.", msg.Message)
	assert.False(t, msg.IsRead)

	unread, err := repo.CountUnread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestSubmitMessageRequiresCoreFields(t *testing.T) {
	svc, _, _ := newContactFixture()

	_, err := svc.SubmitMessage(context.Background(), &ContactInput{
		Name:  "Jamie",
		Email: "jamie@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSubmitMessageRejectsUnknownServiceType(t *testing.T) {
	svc, _, _ := newContactFixture()

	_, err := svc.SubmitMessage(context.Background(), &ContactInput{
		Name:        "Jamie",
		Email:       "jamie@example.com",
		ServiceType: "roofing",
		Message:     "hello",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestProductInquiryStampsProductIntoMessage(t *testing.T) {
	svc, repo, products := newContactFixture()

	sku := "FG-24"
	price := decimal.RequireFromString("18500.00")
	product := &entity.Product{
		Name:     "Fiberglass 24ft",
		Slug:     "fiberglass-24ft",
		SKU:      &sku,
		Price:    price,
		Status:   enum.PublishStatusPublished,
		IsActive: true,
	}
	require.NoError(t, products.Create(context.Background(), product))

	msg, err := svc.SubmitProductInquiry(context.Background(), "fiberglass-24ft", &ContactInput{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Message: "Is this in stock?",
	})
	require.NoError(t, err)

	assert.Contains(t, msg.Message, "Order inquiry: Fiberglass 24ft")
	assert.Contains(t, msg.Message, "SKU FG-24")
	assert.Contains(t, msg.Message, "Is this in stock?")

	stored, err := repo.GetByID(context.Background(), msg.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestProductInquiryWithoutMessageStillSubmits(t *testing.T) {
	svc, _, products := newContactFixture()

	product := &entity.Product{
		Name:     "Pool Heater",
		Slug:     "pool-heater",
		Status:   enum.PublishStatusPublished,
		IsActive: true,
	}
	require.NoError(t, products.Create(context.Background(), product))

	msg, err := svc.SubmitProductInquiry(context.Background(), "pool-heater", &ContactInput{
		Name:  "Jamie",
		Email: "jamie@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Order inquiry: Pool Heater", msg.Message)
}

func TestProductInquiryUnpublishedProductIs404(t *testing.T) {
	svc, _, products := newContactFixture()

	product := &entity.Product{
		Name:     "Draft Heater",
		Slug:     "draft-heater",
		Status:   enum.PublishStatusDraft,
		IsActive: true,
	}
	require.NoError(t, products.Create(context.Background(), product))

	_, err := svc.SubmitProductInquiry(context.Background(), "draft-heater", &ContactInput{
		Name:  "Jamie",
		Email: "jamie@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetMessageMarksRead(t *testing.T) {
	svc, repo, _ := newContactFixture()

	msg, err := svc.SubmitMessage(context.Background(), &ContactInput{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	got, err := svc.GetMessage(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	unread, err := repo.CountUnread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}
