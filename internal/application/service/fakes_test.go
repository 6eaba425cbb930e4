package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/pagination"
)

// In-memory fakes for the repository interfaces. They keep entities in
// maps and implement just enough semantics for the service tests.

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context, params *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) ListActive(_ context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		if c.Status == enum.CustomerStatusActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (f *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	copied := *s
	f.sales[s.ID] = &copied
	return nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeSaleRepo) ReplaceItems(_ context.Context, s *entity.Sale, items []entity.SaleLineItem) error {
	copied := *s
	copied.LineItems = items
	f.sales[s.ID] = &copied
	s.LineItems = items
	return nil
}

func (f *fakeSaleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.SaleStatus) error {
	s, ok := f.sales[id]
	if !ok {
		return errors.New("sale not found")
	}
	s.Status = status
	return nil
}

func (f *fakeSaleRepo) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		if params.Status != nil && s.Status != *params.Status {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (f *fakeSaleRepo) ListByCustomer(_ context.Context, customerID uuid.UUID, limit int) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range f.sales {
		if s.CustomerID == customerID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSaleRepo) CountByCustomer(_ context.Context, customerID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range f.sales {
		if s.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) ListPublished(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.Status == enum.PublishStatusPublished && p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Search(_ context.Context, _ string, limit int) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) ReplaceImages(_ context.Context, _ *entity.Product, _ []uuid.UUID) error {
	return nil
}

type fakeSettingsRepo struct {
	settings       *entity.Settings
	createErr      error
	missOnFirstGet bool
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if f.missOnFirstGet {
		f.missOnFirstGet = false
		return nil, nil
	}
	if f.settings == nil {
		return nil, nil
	}
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, s *entity.Settings) error {
	if f.createErr != nil {
		return f.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	copied := *s
	f.settings = &copied
	return nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *entity.Settings) error {
	copied := *s
	f.settings = &copied
	return nil
}

// fakeImageRepo records variant lookups so tests can assert the serve path
// never touches storage for invalid sizes.
type fakeImageRepo struct {
	images      map[uuid.UUID]*entity.Image
	variantGets int
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[uuid.UUID]*entity.Image)}
}

func (f *fakeImageRepo) Create(_ context.Context, img *entity.Image) error {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	img.CreatedAt = time.Now()
	f.images[img.ID] = img
	return nil
}

func (f *fakeImageRepo) GetMeta(_ context.Context, id uuid.UUID) (*entity.Image, error) {
	return f.images[id], nil
}

func (f *fakeImageRepo) GetVariant(_ context.Context, id uuid.UUID, size enum.ImageSize) (string, []byte, error) {
	f.variantGets++
	img, ok := f.images[id]
	if !ok {
		return "", nil, nil
	}
	return img.MimeType, img.VariantData(size), nil
}

func (f *fakeImageRepo) UpdateMeta(_ context.Context, img *entity.Image) error {
	f.images[img.ID] = img
	return nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.images, id)
	return nil
}

func (f *fakeImageRepo) ListMeta(_ context.Context, query string, limit int) ([]entity.Image, error) {
	out := make([]entity.Image, 0, len(f.images))
	for _, img := range f.images {
		if query != "" && !strings.Contains(img.Filename, query) && !strings.Contains(img.Title, query) {
			continue
		}
		out = append(out, *img)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages map[uuid.UUID]*entity.ContactMessage
	order    []uuid.UUID
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uuid.UUID]*entity.ContactMessage)}
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *entity.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	f.messages[msg.ID] = msg
	f.order = append(f.order, msg.ID)
	return nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	msg, ok := f.messages[id]
	if !ok {
		return nil, nil
	}
	copied := *msg
	return &copied, nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	if msg, ok := f.messages[id]; ok {
		msg.IsRead = true
	}
	return nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.messages, id)
	return nil
}

func (f *fakeMessageRepo) List(_ context.Context) ([]entity.ContactMessage, error) {
	out := make([]entity.ContactMessage, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if msg, ok := f.messages[f.order[i]]; ok {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) CountUnread(_ context.Context) (int64, error) {
	var n int64
	for _, msg := range f.messages {
		if !msg.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}
