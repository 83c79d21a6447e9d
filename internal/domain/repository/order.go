package repository

import (
	"context"

	"github.com/rizkypra/storefront/internal/domain/model"
)

// TokenIssuer obtains a payment session token for a freshly built order.
// It runs inside the checkout transaction: returning an error aborts the
// transaction and no order survives.
type TokenIssuer func(ctx context.Context, order *model.Order, items []model.OrderItem) (string, error)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// CreateCheckout persists order and items, computes the total, obtains
	// the payment token via issue and stores it, all within one transaction.
	CreateCheckout(ctx context.Context, draft model.OrderDraft, issue TokenIssuer) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByCode(ctx context.Context, code string) (*model.Order, error)
	ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// List returns a page of orders plus the total match count.
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, int, error)
	// UpdateStatus applies a transition-table guarded status change.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// UpdateStatusShipped sets the tracking code and moves the order to
	// shipped in a single transaction.
	UpdateStatusShipped(ctx context.Context, orderID int64, resiCode string) error
	// ExpireStale moves pending orders older than the cutoff to expired and
	// returns affected order IDs.
	ExpireStale(ctx context.Context, olderThanSeconds int64, limit int) ([]int64, error)
}
