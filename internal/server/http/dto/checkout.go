package dto

// CheckoutLine is one cart entry in the checkout payload.
type CheckoutLine struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// CheckoutRequest describes the checkout submission. The storefront
// client posts its cart lines under the "cart" key.
type CheckoutRequest struct {
	Name            string         `json:"name"`
	Phone           string         `json:"phone"`
	ShippingAddress string         `json:"shipping_address"`
	Notes           string         `json:"notes"`
	Items           []CheckoutLine `json:"cart"`
}

// CheckoutResponse carries the created order and its payment session token.
type CheckoutResponse struct {
	Status    string `json:"status"`
	SnapToken string `json:"snap_token"`
	OrderID   int64  `json:"order_id"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
