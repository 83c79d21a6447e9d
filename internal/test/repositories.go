package test

import (
	"context"
	"strings"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = s.Next
	s.Next++
	stored := user
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	return users, nil
}

// Delete removes a user from both indexes.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, user.Email)
	delete(s.ByID, id)
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateCheckoutFn      func(context.Context, model.OrderDraft, repository.TokenIssuer) (*model.Order, error)
	GetByIDFn             func(context.Context, int64) (*model.Order, error)
	GetByCodeFn           func(context.Context, string) (*model.Order, error)
	ItemsByOrderFn        func(context.Context, int64) ([]model.OrderItem, error)
	ListByUserFn          func(context.Context, int64) ([]model.Order, error)
	ListFn                func(context.Context, model.OrderFilter) ([]model.Order, int, error)
	UpdateStatusFn        func(context.Context, int64, model.OrderStatus) error
	UpdateStatusShippedFn func(context.Context, int64, string) error
	ExpireStaleFn         func(context.Context, int64, int) ([]int64, error)

	Drafts      []model.OrderDraft
	Orders      []model.Order
	Items       []model.OrderItem
	UpdateCalls []OrderUpdateCall
	ListFilters []model.OrderFilter
	ExpireCalls []ExpireCall
	ExpiredIDs  []int64
	ListTotal   int
}

// OrderUpdateCall stores information about UpdateStatus invocations.
type OrderUpdateCall struct {
	OrderID  int64
	Status   model.OrderStatus
	ResiCode string
}

// ExpireCall records ExpireStale arguments.
type ExpireCall struct {
	OlderThanSeconds int64
	Limit            int
}

// CreateCheckout records the draft and runs the issuer against a synthetic
// order, mirroring the transactional contract of the real repository.
func (s *OrderRepositoryStub) CreateCheckout(ctx context.Context, draft model.OrderDraft, issue repository.TokenIssuer) (*model.Order, error) {
	s.Drafts = append(s.Drafts, draft)
	if s.CreateCheckoutFn != nil {
		return s.CreateCheckoutFn(ctx, draft, issue)
	}
	order := &model.Order{
		ID:              int64(len(s.Drafts)),
		Code:            "stub-code",
		UserID:          draft.UserID,
		ShippingAddress: draft.ShippingAddress,
		Notes:           draft.Notes,
		TotalAmount:     draft.Total(),
		Status:          model.OrderStatusPending,
	}
	token, err := issue(ctx, order, draft.Items)
	if err != nil {
		return nil, err
	}
	order.SnapToken = token
	return order, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByCode resolves an order by its public code.
func (s *OrderRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	if s.GetByCodeFn != nil {
		return s.GetByCodeFn(ctx, code)
	}
	for _, o := range s.Orders {
		if o.Code == code {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ItemsByOrder returns configured items.
func (s *OrderRepositoryStub) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	if s.ItemsByOrderFn != nil {
		return s.ItemsByOrderFn(ctx, orderID)
	}
	return s.Items, nil
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// List records the filter and returns configured page.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, int, error) {
	s.ListFilters = append(s.ListFilters, filter)
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Orders, s.ListTotal, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: status})
	return nil
}

// UpdateStatusShipped records shipped transitions with tracking code.
func (s *OrderRepositoryStub) UpdateStatusShipped(ctx context.Context, orderID int64, resiCode string) error {
	if s.UpdateStatusShippedFn != nil {
		return s.UpdateStatusShippedFn(ctx, orderID, resiCode)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: model.OrderStatusShipped, ResiCode: resiCode})
	return nil
}

// ExpireStale records the call and returns configured IDs.
func (s *OrderRepositoryStub) ExpireStale(ctx context.Context, olderThanSeconds int64, limit int) ([]int64, error) {
	s.ExpireCalls = append(s.ExpireCalls, ExpireCall{OlderThanSeconds: olderThanSeconds, Limit: limit})
	if s.ExpireStaleFn != nil {
		return s.ExpireStaleFn(ctx, olderThanSeconds, limit)
	}
	return s.ExpiredIDs, nil
}

// ProductRepositoryStub stores catalog products in-memory for tests.
type ProductRepositoryStub struct {
	CreateFn func(context.Context, model.Product) (*model.Product, error)
	ListFn   func(context.Context, model.ProductFilter) ([]model.Product, int, error)
	Products []model.Product
	Next     int64
	Err      error
}

// Create appends the product with the next identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	product.ID = s.Next
	s.Next++
	s.Products = append(s.Products, product)
	return &product, nil
}

// GetByID returns stored product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List filters stored products by name substring.
func (s *ProductRepositoryStub) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var matched []model.Product
	for _, p := range s.Products {
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.CategoryID > 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, p)
	}
	return matched, len(matched), nil
}

// Update replaces a stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	for i, p := range s.Products {
		if p.ID == product.ID {
			s.Products[i] = product
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes a stored product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, p := range s.Products {
		if p.ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	Categories []model.Category
	Next       int64
	Err        error
}

// Create appends a category with the next identifier.
func (s *CategoryRepositoryStub) Create(ctx context.Context, name string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Categories {
		if c.Name == name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	category := model.Category{ID: s.Next, Name: name}
	s.Next++
	s.Categories = append(s.Categories, category)
	return &category, nil
}

// List returns stored categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Categories, nil
}

// Update renames a stored category.
func (s *CategoryRepositoryStub) Update(ctx context.Context, id int64, name string) error {
	if s.Err != nil {
		return s.Err
	}
	for i, c := range s.Categories {
		if c.ID == id {
			s.Categories[i].Name = name
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes a stored category.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, c := range s.Categories {
		if c.ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
