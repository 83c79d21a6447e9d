package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusExpired    OrderStatus = "expired"
)

// ParseOrderStatus validates a raw status value.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(raw)
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusFailed, OrderStatusExpired:
		return s, true
	}
	return "", false
}

// transitions is the set of allowed forward moves per current status.
// Terminal statuses have no outgoing edges.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled, OrderStatusFailed, OrderStatusExpired},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusShipped, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
// Repeating the current status is always allowed so duplicate gateway
// callbacks stay idempotent.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave the status.
func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Order is a customer purchase with a monetary total and lifecycle status.
// Amounts are integer minor currency units.
type Order struct {
	ID              int64
	Code            string
	UserID          int64
	ShippingAddress string
	TotalAmount     int64
	Status          OrderStatus
	Notes           string
	SnapToken       string
	ResiCode        string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// UserName is filled by listing queries that join the customer.
	UserName string
}

// OrderItem is a line within an order. Price is a snapshot taken at
// checkout time, independent of later product price changes.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Name      string
	Quantity  int
	Price     int64
}

// OrderDraft carries validated checkout input into storage.
type OrderDraft struct {
	UserID          int64
	ShippingAddress string
	Notes           string
	ShippingFee     int64
	Items           []OrderItem
}

// Total returns item sum plus shipping fee.
func (d OrderDraft) Total() int64 {
	var sum int64
	for _, it := range d.Items {
		sum += it.Price * int64(it.Quantity)
	}
	return sum + d.ShippingFee
}

// OrderFilter narrows listing queries.
type OrderFilter struct {
	Statuses []OrderStatus
	Search   string
	Page     int
	PageSize int
}
