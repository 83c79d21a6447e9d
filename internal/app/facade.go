package app

import (
	"context"
	"time"

	"github.com/rizkypra/storefront/internal/config"
	"github.com/rizkypra/storefront/internal/domain/model"
	pkgAuth "github.com/rizkypra/storefront/internal/pkg/auth"
	"github.com/rizkypra/storefront/internal/usecase"
)

// StoreFacade aggregates the use cases behind the HTTP and worker surfaces.
type StoreFacade struct {
	auth       *usecase.AuthUseCase
	checkout   *usecase.CheckoutUseCase
	orders     *usecase.OrderUseCase
	catalog    *usecase.CatalogUseCase
	pendingTTL time.Duration
}

// NewStoreFacade constructs the facade.
func NewStoreFacade(auth *usecase.AuthUseCase, checkout *usecase.CheckoutUseCase, orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase, cfg *config.Config) *StoreFacade {
	return &StoreFacade{
		auth:       auth,
		checkout:   checkout,
		orders:     orders,
		catalog:    catalog,
		pendingTTL: cfg.PendingOrderTTL,
	}
}

// ExpireStaleOrders moves pending orders older than the configured TTL to
// expired, returning affected order IDs.
func (f *StoreFacade) ExpireStaleOrders(ctx context.Context, limit int) ([]int64, error) {
	return f.orders.ExpireStale(ctx, f.pendingTTL, limit)
}

func (f *StoreFacade) Register(ctx context.Context, input model.Registration) (string, error) {
	_, token, err := f.auth.Register(ctx, input)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.Users(ctx)
}

func (f *StoreFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.auth.DeleteUser(ctx, id)
}

func (f *StoreFacade) Checkout(ctx context.Context, userID int64, input model.CheckoutSubmission) (*model.Order, error) {
	return f.checkout.Process(ctx, userID, input)
}

func (f *StoreFacade) UpdatePaymentStatus(ctx context.Context, orderCode, status string) error {
	return f.orders.UpdatePaymentStatus(ctx, orderCode, status)
}

func (f *StoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StoreFacade) OrderItems(ctx context.Context, id int64) ([]model.OrderItem, error) {
	return f.orders.Items(ctx, id)
}

func (f *StoreFacade) ManageOrders(ctx context.Context, status, search string, page int) ([]model.Order, int, error) {
	return f.orders.List(ctx, usecase.ActiveStatuses, status, search, page)
}

func (f *StoreFacade) OrderHistory(ctx context.Context, status, search string, page int) ([]model.Order, int, error) {
	return f.orders.List(ctx, usecase.HistoryStatuses, status, search, page)
}

func (f *StoreFacade) SetOrderStatus(ctx context.Context, orderID int64, status, resiCode string) error {
	return f.orders.AdminUpdateStatus(ctx, orderID, status, resiCode)
}

func (f *StoreFacade) Products(ctx context.Context, search string, categoryID int64, page int) ([]model.Product, int, error) {
	return f.catalog.Products(ctx, search, categoryID, page)
}

func (f *StoreFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product model.Product) error {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, name)
}

func (f *StoreFacade) UpdateCategory(ctx context.Context, id int64, name string) error {
	return f.catalog.UpdateCategory(ctx, id, name)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}
