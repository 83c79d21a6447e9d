package model

// CheckoutLine is a cart line as submitted by the storefront client.
type CheckoutLine struct {
	ProductID int64
	Name      string
	Price     int64
	Quantity  int
}

// CheckoutSubmission is the checkout form together with the cart contents.
type CheckoutSubmission struct {
	Name            string
	Phone           string
	ShippingAddress string
	Notes           string
	Lines           []CheckoutLine
}

// Registration is a new-account submission.
type Registration struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}
