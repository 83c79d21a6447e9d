package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	testhelpers "github.com/rizkypra/storefront/internal/test"
)

func TestCatalogUseCaseCreateProduct(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{}
	uc := NewCatalogUseCase(products, &testhelpers.CategoryRepositoryStub{})

	created, err := uc.CreateProduct(context.Background(), model.Product{
		CategoryID: 2,
		Name:       "  Keyboard  ",
		Price:      150000,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned ID")
	}
	if created.Name != "Keyboard" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestCatalogUseCaseProductValidation(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.ProductRepositoryStub{}, &testhelpers.CategoryRepositoryStub{})

	cases := []model.Product{
		{CategoryID: 1, Price: 1000},
		{Name: "x", Price: 1000},
		{Name: "x", CategoryID: 1},
		{Name: "x", CategoryID: 1, Price: -5},
	}
	for i, p := range cases {
		if _, err := uc.CreateProduct(context.Background(), p); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}

	if err := uc.UpdateProduct(context.Background(), model.Product{Name: "x", CategoryID: 1, Price: 10}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for missing id, got %v", err)
	}
}

func TestCatalogUseCaseProductsPaging(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{
		ListFn: func(ctx context.Context, filter model.ProductFilter) ([]model.Product, int, error) {
			if filter.Page != 1 || filter.PageSize != CatalogPageSize {
				t.Fatalf("unexpected paging %+v", filter)
			}
			if filter.Search != "key" {
				t.Fatalf("expected trimmed search, got %q", filter.Search)
			}
			return nil, 0, nil
		},
	}
	uc := NewCatalogUseCase(products, &testhelpers.CategoryRepositoryStub{})

	if _, _, err := uc.Products(context.Background(), " key ", 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCatalogUseCaseCategoryLifecycle(t *testing.T) {
	categories := &testhelpers.CategoryRepositoryStub{}
	uc := NewCatalogUseCase(&testhelpers.ProductRepositoryStub{}, categories)

	ctx := context.Background()
	created, err := uc.CreateCategory(ctx, " Peripherals ")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.Name != "Peripherals" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}

	if _, err := uc.CreateCategory(ctx, "  "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := uc.UpdateCategory(ctx, created.ID, ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := uc.UpdateCategory(ctx, created.ID, "Accessories"); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	listed, err := uc.Categories(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Accessories" {
		t.Fatalf("unexpected categories %+v", listed)
	}

	if err := uc.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if err := uc.DeleteCategory(ctx, created.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
