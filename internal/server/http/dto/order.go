package dto

import "time"

// UpdatePaymentRequest describes the payment outcome callback payload.
type UpdatePaymentRequest struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	PaymentType   string `json:"payment_type"`
	Status        string `json:"status"`
}

// UpdateOrderStatusRequest describes the admin status transition payload.
type UpdateOrderStatusRequest struct {
	Status   string `json:"status"`
	ResiCode string `json:"resi_code"`
}

// OrderItemResponse describes one order line.
type OrderItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// OrderResponse describes an order entry.
type OrderResponse struct {
	ID              int64     `json:"id"`
	Code            string    `json:"order_code"`
	UserName        string    `json:"user_name,omitempty"`
	ShippingAddress string    `json:"shipping_address"`
	TotalAmount     int64     `json:"total_amount"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	SnapToken       string    `json:"snap_token,omitempty"`
	ResiCode        string    `json:"resi_code,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// OrderListResponse is a page of orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
}
