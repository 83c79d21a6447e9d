// Package cart implements the client-held shopping cart: line items in a
// persistent local store, totals in integer minor currency units and
// change notifications for rendering code.
package cart

import (
	"fmt"
	"strings"
	"sync"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
)

// Line is one cart entry. Price is a snapshot of the product price at the
// time the line was added.
type Line struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}

// Listener observes cart mutations. After every mutation it receives the
// current lines; err is non-nil when persisting the change failed, in
// which case the in-memory state is still the source of truth.
type Listener func(lines []Line, err error)

// Cart is a mutable collection of lines backed by a Store.
type Cart struct {
	mu        sync.Mutex
	store     Store
	lines     []Line
	listeners []Listener
}

// New builds a cart from the store's persisted state. Corrupt or absent
// store data yields an empty cart, never an error.
func New(store Store) *Cart {
	c := &Cart{store: store}
	if lines, err := store.Load(); err == nil {
		c.lines = lines
	}
	return c
}

// Subscribe registers a mutation listener.
func (c *Cart) Subscribe(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Add puts the product in the cart, incrementing quantity when a line for
// it already exists. Products without an id are ignored.
func (c *Cart) Add(product model.Product) {
	if product.ID == 0 {
		return
	}
	c.mu.Lock()
	found := false
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, Line{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Category:  product.CategoryName,
			Quantity:  1,
		})
	}
	c.persistAndNotifyLocked()
}

// Remove drops the line for the product.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.persistAndNotifyLocked()
}

// UpdateQuantity adjusts the line's quantity by delta. A resulting
// quantity below 1 removes the line. Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID int64, delta int) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		break
	}
	c.persistAndNotifyLocked()
}

// Clear empties the cart, typically after a terminal payment outcome.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.persistAndNotifyLocked()
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Subtotal is the sum of price times quantity across all lines.
func (c *Cart) Subtotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return subtotal(c.lines)
}

// Total is the subtotal plus the shipping fee.
func (c *Cart) Total(shippingFee int64) int64 {
	return c.Subtotal() + shippingFee
}

// CheckoutRequest assembles the submission sent to the checkout endpoint.
// Contact fields must be non-empty and the cart must contain lines.
func (c *Cart) CheckoutRequest(name, phone, address, notes string) (model.CheckoutSubmission, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if name == "" {
		return model.CheckoutSubmission{}, fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if phone == "" {
		return model.CheckoutSubmission{}, fmt.Errorf("%w: phone is required", domainErrors.ErrValidation)
	}
	if address == "" {
		return model.CheckoutSubmission{}, fmt.Errorf("%w: shipping address is required", domainErrors.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.lines) == 0 {
		return model.CheckoutSubmission{}, domainErrors.ErrEmptyCart
	}

	submission := model.CheckoutSubmission{
		Name:            name,
		Phone:           phone,
		ShippingAddress: address,
		Notes:           strings.TrimSpace(notes),
		Lines:           make([]model.CheckoutLine, 0, len(c.lines)),
	}
	for _, line := range c.lines {
		submission.Lines = append(submission.Lines, model.CheckoutLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	return submission, nil
}

// persistAndNotifyLocked saves the lines and fans out to listeners. The
// caller holds the mutex; it is released here so listeners may call back
// into the cart.
func (c *Cart) persistAndNotifyLocked() {
	err := c.store.Save(c.lines)
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(lines, err)
	}
}

func subtotal(lines []Line) int64 {
	var sum int64
	for _, line := range lines {
		sum += line.Price * int64(line.Quantity)
	}
	return sum
}
