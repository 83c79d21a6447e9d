package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/domain/repository"
)

// CatalogPageSize caps catalog listings per page.
const CatalogPageSize = 10

// CatalogUseCase manages products and categories.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// CreateProduct adds a product to the catalog.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := validateProduct(&product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// UpdateProduct replaces a product's mutable fields.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product model.Product) error {
	if err := validateProduct(&product); err != nil {
		return err
	}
	if product.ID <= 0 {
		return fmt.Errorf("%w: product id is required", domainErrors.ErrValidation)
	}
	return u.products.Update(ctx, product)
}

// Product fetches a single product.
func (u *CatalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Products lists catalog products with optional search and category filter.
func (u *CatalogUseCase) Products(ctx context.Context, search string, categoryID int64, page int) ([]model.Product, int, error) {
	if page < 1 {
		page = 1
	}
	return u.products.List(ctx, model.ProductFilter{
		Search:     strings.TrimSpace(search),
		CategoryID: categoryID,
		Page:       page,
		PageSize:   CatalogPageSize,
	})
}

// DeleteProduct removes a product.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

// CreateCategory adds a category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domainErrors.ErrValidation)
	}
	return u.categories.Create(ctx, name)
}

// UpdateCategory renames a category.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", domainErrors.ErrValidation)
	}
	return u.categories.Update(ctx, id, name)
}

// Categories lists all categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// DeleteCategory removes a category.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}
