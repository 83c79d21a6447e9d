package repository

import (
	"context"

	"github.com/rizkypra/storefront/internal/domain/model"
)

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int, error)
	Update(ctx context.Context, product model.Product) error
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
