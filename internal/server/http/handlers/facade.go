package handlers

import (
	"context"

	"github.com/rizkypra/storefront/internal/domain/model"
	pkgAuth "github.com/rizkypra/storefront/internal/pkg/auth"
)

// AuthFacade describes authentication and account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input model.Registration) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
	Users(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CheckoutFacade turns a cart submission into a pending order.
type CheckoutFacade interface {
	Checkout(ctx context.Context, userID int64, input model.CheckoutSubmission) (*model.Order, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	UpdatePaymentStatus(ctx context.Context, orderCode, status string) error
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	OrderItems(ctx context.Context, id int64) ([]model.OrderItem, error)
	ManageOrders(ctx context.Context, status, search string, page int) ([]model.Order, int, error)
	OrderHistory(ctx context.Context, status, search string, page int) ([]model.Order, int, error)
	SetOrderStatus(ctx context.Context, orderID int64, status, resiCode string) error
}

// CatalogFacade provides product and category management.
type CatalogFacade interface {
	Products(ctx context.Context, search string, categoryID int64, page int) ([]model.Product, int, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CheckoutFacade
	OrderFacade
	CatalogFacade
}
