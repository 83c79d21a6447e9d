package test

import (
	"context"
	"sync"

	"github.com/rizkypra/storefront/internal/domain/model"
	pkgAuth "github.com/rizkypra/storefront/internal/pkg/auth"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, model.Registration) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (pkgAuth.Claims, error)
	UsersFn        func(context.Context) ([]model.User, error)
	DeleteUserFn   func(context.Context, int64) error
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, input model.Registration) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns stored claims for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{UserID: 1, Role: model.RoleUser}, nil
}

// Users returns the registered accounts.
func (s AuthFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Email: "user@example.com", Role: model.RoleUser}}, nil
}

// DeleteUser removes an account.
func (s AuthFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// CheckoutFacadeStub simulates checkout processing.
type CheckoutFacadeStub struct {
	CheckoutFn func(context.Context, int64, model.CheckoutSubmission) (*model.Order, error)
}

// Checkout delegates to override or returns a pending order with a token.
func (s CheckoutFacadeStub) Checkout(ctx context.Context, userID int64, input model.CheckoutSubmission) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, input)
	}
	return &model.Order{ID: 1, Code: "stub-code", UserID: userID, Status: model.OrderStatusPending, SnapToken: "snap-token"}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	UpdatePaymentStatusFn func(context.Context, string, string) error
	OrdersFn              func(context.Context, int64) ([]model.Order, error)
	OrderFn               func(context.Context, int64) (*model.Order, error)
	OrderItemsFn          func(context.Context, int64) ([]model.OrderItem, error)
	ManageOrdersFn        func(context.Context, string, string, int) ([]model.Order, int, error)
	OrderHistoryFn        func(context.Context, string, string, int) ([]model.Order, int, error)
	SetOrderStatusFn      func(context.Context, int64, string, string) error

	StatusCalls []StatusCall
}

// StatusCall records SetOrderStatus and UpdatePaymentStatus invocations.
type StatusCall struct {
	OrderID   int64
	OrderCode string
	Status    string
	ResiCode  string
}

// UpdatePaymentStatus records the reported payment outcome.
func (s *OrderFacadeStub) UpdatePaymentStatus(ctx context.Context, orderCode, status string) error {
	if s.UpdatePaymentStatusFn != nil {
		return s.UpdatePaymentStatusFn(ctx, orderCode, status)
	}
	s.StatusCalls = append(s.StatusCalls, StatusCall{OrderCode: orderCode, Status: status})
	return nil
}

// Orders returns predefined orders for given user.
func (s *OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, Code: "stub-code", UserID: userID}}, nil
}

// Order returns a single order.
func (s *OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Code: "stub-code"}, nil
}

// OrderItems returns the order's lines.
func (s *OrderFacadeStub) OrderItems(ctx context.Context, id int64) ([]model.OrderItem, error) {
	if s.OrderItemsFn != nil {
		return s.OrderItemsFn(ctx, id)
	}
	return []model.OrderItem{{ID: 1, OrderID: id, Name: "item", Quantity: 1, Price: 1000}}, nil
}

// ManageOrders lists active orders for the back office.
func (s *OrderFacadeStub) ManageOrders(ctx context.Context, status, search string, page int) ([]model.Order, int, error) {
	if s.ManageOrdersFn != nil {
		return s.ManageOrdersFn(ctx, status, search, page)
	}
	return []model.Order{{ID: 1, Code: "stub-code", Status: model.OrderStatusPaid}}, 1, nil
}

// OrderHistory lists settled orders for the back office.
func (s *OrderFacadeStub) OrderHistory(ctx context.Context, status, search string, page int) ([]model.Order, int, error) {
	if s.OrderHistoryFn != nil {
		return s.OrderHistoryFn(ctx, status, search, page)
	}
	return []model.Order{{ID: 2, Code: "stub-code-2", Status: model.OrderStatusDelivered}}, 1, nil
}

// SetOrderStatus records operator transitions.
func (s *OrderFacadeStub) SetOrderStatus(ctx context.Context, orderID int64, status, resiCode string) error {
	if s.SetOrderStatusFn != nil {
		return s.SetOrderStatusFn(ctx, orderID, status, resiCode)
	}
	s.StatusCalls = append(s.StatusCalls, StatusCall{OrderID: orderID, Status: status, ResiCode: resiCode})
	return nil
}

// CatalogFacadeStub simulates catalog management.
type CatalogFacadeStub struct {
	ProductsFn       func(context.Context, string, int64, int) ([]model.Product, int, error)
	ProductFn        func(context.Context, int64) (*model.Product, error)
	CreateProductFn  func(context.Context, model.Product) (*model.Product, error)
	UpdateProductFn  func(context.Context, model.Product) error
	DeleteProductFn  func(context.Context, int64) error
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CreateCategoryFn func(context.Context, string) (*model.Category, error)
	UpdateCategoryFn func(context.Context, int64, string) error
	DeleteCategoryFn func(context.Context, int64) error
}

// Products lists catalog products.
func (s CatalogFacadeStub) Products(ctx context.Context, search string, categoryID int64, page int) ([]model.Product, int, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, search, categoryID, page)
	}
	return []model.Product{{ID: 1, Name: "product", Price: 1000}}, 1, nil
}

// Product fetches a single product.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "product", Price: 1000}, nil
}

// CreateProduct adds a product.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = 1
	return &product, nil
}

// UpdateProduct replaces a product.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product model.Product) error {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return nil
}

// DeleteProduct removes a product.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// Categories lists categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "category"}}, nil
}

// CreateCategory adds a category.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name)
	}
	return &model.Category{ID: 1, Name: name}, nil
}

// UpdateCategory renames a category.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, id int64, name string) error {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, name)
	}
	return nil
}

// DeleteCategory removes a category.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CheckoutFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
}

// ExpirerFacadeStub mimics worker interactions with the store facade.
type ExpirerFacadeStub struct {
	ExpireFn func(context.Context, int) ([]int64, error)
	Batches  [][]int64
	Err      error

	mu    sync.Mutex
	calls int
}

// Lock exposes internal mutex for external synchronization.
func (s *ExpirerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *ExpirerFacadeStub) Unlock() { s.mu.Unlock() }

// Calls reports how many sweeps ran.
func (s *ExpirerFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// ExpireStaleOrders returns configured batches in sequence.
func (s *ExpirerFacadeStub) ExpireStaleOrders(ctx context.Context, limit int) ([]int64, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if call <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	return nil, nil
}
