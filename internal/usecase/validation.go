package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
)

// validateCheckout coerces and checks the submission, returning
// ErrValidation or ErrEmptyCart with detail on failure. The client is
// untrusted: every field is checked before anything is persisted.
func validateCheckout(in *model.CheckoutSubmission) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ShippingAddress = strings.TrimSpace(in.ShippingAddress)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.Name == "" {
		return fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", domainErrors.ErrValidation)
	}
	if in.ShippingAddress == "" {
		return fmt.Errorf("%w: shipping address is required", domainErrors.ErrValidation)
	}
	if len(in.Lines) == 0 {
		return domainErrors.ErrEmptyCart
	}
	for i, line := range in.Lines {
		if line.ProductID <= 0 {
			return fmt.Errorf("%w: line %d: product id must be positive", domainErrors.ErrValidation, i+1)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: line %d: quantity must be at least 1", domainErrors.ErrValidation, i+1)
		}
		if line.Price < 0 {
			return fmt.Errorf("%w: line %d: price must not be negative", domainErrors.ErrValidation, i+1)
		}
	}
	return nil
}

// validateProduct checks a catalog product submission.
func validateProduct(p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Image = strings.TrimSpace(p.Image)
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", domainErrors.ErrValidation)
	}
	if p.CategoryID <= 0 {
		return fmt.Errorf("%w: category is required", domainErrors.ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}
	return nil
}
