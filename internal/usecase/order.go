package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/domain/repository"
)

// reconcilerStatuses is the set the payment widget may report.
var reconcilerStatuses = map[model.OrderStatus]bool{
	model.OrderStatusPaid:      true,
	model.OrderStatusPending:   true,
	model.OrderStatusCancelled: true,
	model.OrderStatusFailed:    true,
	model.OrderStatusExpired:   true,
	model.OrderStatusShipped:   true,
	model.OrderStatusDelivered: true,
}

// adminStatuses is the set an operator may set from the back office.
var adminStatuses = map[model.OrderStatus]bool{
	model.OrderStatusPaid:       true,
	model.OrderStatusProcessing: true,
	model.OrderStatusShipped:    true,
	model.OrderStatusCancelled:  true,
}

// ActiveStatuses is the order-management view set.
var ActiveStatuses = []model.OrderStatus{model.OrderStatusPaid, model.OrderStatusProcessing, model.OrderStatusShipped}

// HistoryStatuses is the order-history view set.
var HistoryStatuses = []model.OrderStatus{model.OrderStatusDelivered, model.OrderStatusCancelled}

// ListPageSize is the fixed page size of admin listings.
const ListPageSize = 10

// OrderUseCase encapsulates order lifecycle logic past checkout.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// UpdatePaymentStatus applies a payment outcome reported for the order
// identified by its public code. The transition table guards the write;
// repeating the current status is a no-op so duplicate callbacks succeed.
func (u *OrderUseCase) UpdatePaymentStatus(ctx context.Context, orderCode, rawStatus string) error {
	status, ok := model.ParseOrderStatus(rawStatus)
	if !ok || !reconcilerStatuses[status] {
		return fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, rawStatus)
	}
	order, err := u.orders.GetByCode(ctx, orderCode)
	if err != nil {
		return err
	}
	return u.orders.UpdateStatus(ctx, order.ID, status)
}

// AdminUpdateStatus applies an operator-driven transition. A transition to
// shipped requires a tracking code; code and status are persisted together.
func (u *OrderUseCase) AdminUpdateStatus(ctx context.Context, orderID int64, rawStatus, resiCode string) error {
	status, ok := model.ParseOrderStatus(rawStatus)
	if !ok || !adminStatuses[status] {
		return fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, rawStatus)
	}

	if status == model.OrderStatusShipped {
		resiCode = strings.TrimSpace(resiCode)
		if resiCode == "" {
			return domainErrors.ErrTrackingRequired
		}
		return u.orders.UpdateStatusShipped(ctx, orderID, resiCode)
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// Get fetches a single order.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// Items returns the order's lines.
func (u *OrderUseCase) Items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return u.orders.ItemsByOrder(ctx, orderID)
}

// ListByUser returns the customer's own orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// List returns a page of orders restricted to the view's status set. A
// status filter outside the set is ignored rather than rejected, matching
// the back-office listing behaviour.
func (u *OrderUseCase) List(ctx context.Context, view []model.OrderStatus, statusFilter, search string, page int) ([]model.Order, int, error) {
	statuses := view
	if statusFilter != "" {
		if filtered, ok := model.ParseOrderStatus(statusFilter); ok {
			for _, s := range view {
				if s == filtered {
					statuses = []model.OrderStatus{filtered}
					break
				}
			}
		}
	}
	return u.orders.List(ctx, model.OrderFilter{
		Statuses: statuses,
		Search:   strings.TrimSpace(search),
		Page:     page,
		PageSize: ListPageSize,
	})
}

// ExpireStale moves pending orders older than ttl to expired.
func (u *OrderUseCase) ExpireStale(ctx context.Context, ttl time.Duration, limit int) ([]int64, error) {
	return u.orders.ExpireStale(ctx, int64(ttl.Seconds()), limit)
}
