package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rizkypra/storefront/internal/adapter/snap"
	"github.com/rizkypra/storefront/internal/config"
	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	pkgAuth "github.com/rizkypra/storefront/internal/pkg/auth"
	testhelpers "github.com/rizkypra/storefront/internal/test"
	"github.com/rizkypra/storefront/internal/usecase"
)

type gatewayStub struct {
	createFn func(context.Context, snap.Transaction) (string, error)
}

func (g *gatewayStub) CreateTransaction(ctx context.Context, tx snap.Transaction) (string, error) {
	if g.createFn != nil {
		return g.createFn(ctx, tx)
	}
	return "snap-token", nil
}

func newFacade() (*StoreFacade, *testhelpers.UserRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.ProductRepositoryStub, *testhelpers.CategoryRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (pkgAuth.Claims, error) {
		return pkgAuth.Claims{UserID: 99, Role: model.RoleAdmin}, nil
	}}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	orderRepo := &testhelpers.OrderRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orderRepo)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	checkoutUC := usecase.NewCheckoutUseCase(orderRepo, userRepo, &gatewayStub{}, 20000, logger)

	productRepo := &testhelpers.ProductRepositoryStub{}
	categoryRepo := &testhelpers.CategoryRepositoryStub{}
	catalogUC := usecase.NewCatalogUseCase(productRepo, categoryRepo)

	cfg := &config.Config{PendingOrderTTL: 24 * time.Hour}
	facade := NewStoreFacade(authUC, checkoutUC, orderUC, catalogUC, cfg)
	return facade, userRepo, orderRepo, productRepo, categoryRepo
}

func TestStoreFacadeAuth(t *testing.T) {
	facade, users, _, _, _ := newFacade()
	token, err := facade.Register(context.Background(), model.Registration{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	stored, err := users.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Name != "Alice" {
		t.Fatalf("unexpected stored name %q", stored.Name)
	}

	token, err = facade.Authenticate(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if claims.UserID != 99 || claims.Role != model.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}

	listed, err := facade.Users(context.Background())
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one user, got %v err=%v", listed, err)
	}
	if err := facade.DeleteUser(context.Background(), stored.ID); err != nil {
		t.Fatalf("delete user returned error: %v", err)
	}
}

func TestStoreFacadeCheckout(t *testing.T) {
	facade, users, orders, _, _ := newFacade()
	customer, err := users.Create(context.Background(), model.User{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  model.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	order, err := facade.Checkout(context.Background(), customer.ID, model.CheckoutSubmission{
		Name:            "Alice",
		Phone:           "0811111111",
		ShippingAddress: "Jl. Merdeka 1",
		Lines: []model.CheckoutLine{
			{ProductID: 1, Name: "Keyboard", Price: 150000, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if order.SnapToken != "snap-token" {
		t.Fatalf("unexpected snap token %q", order.SnapToken)
	}
	if len(orders.Drafts) != 1 {
		t.Fatalf("expected one draft, got %d", len(orders.Drafts))
	}
}

func TestStoreFacadeOrders(t *testing.T) {
	facade, _, orders, _, _ := newFacade()
	orders.Orders = []model.Order{
		{ID: 1, Code: "ord-1", Status: model.OrderStatusPending},
		{ID: 2, Code: "ord-2", Status: model.OrderStatusPaid},
	}
	orders.Items = []model.OrderItem{{OrderID: 1, Name: "Keyboard"}}
	orders.ListTotal = 2

	if err := facade.UpdatePaymentStatus(context.Background(), "ord-1", "paid"); err != nil {
		t.Fatalf("update payment status returned error: %v", err)
	}
	if len(orders.UpdateCalls) != 1 || orders.UpdateCalls[0].Status != model.OrderStatusPaid {
		t.Fatalf("unexpected update calls %+v", orders.UpdateCalls)
	}

	listed, err := facade.Orders(context.Background(), 7)
	if err != nil || len(listed) != 2 {
		t.Fatalf("expected two orders, got %v err=%v", listed, err)
	}

	order, err := facade.Order(context.Background(), 2)
	if err != nil || order.Code != "ord-2" {
		t.Fatalf("unexpected order %+v err=%v", order, err)
	}

	items, err := facade.OrderItems(context.Background(), 1)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one item, got %v err=%v", items, err)
	}

	if _, _, err := facade.ManageOrders(context.Background(), "", "", 1); err != nil {
		t.Fatalf("manage orders returned error: %v", err)
	}
	if _, _, err := facade.OrderHistory(context.Background(), "", "", 1); err != nil {
		t.Fatalf("order history returned error: %v", err)
	}
	if len(orders.ListFilters) != 2 {
		t.Fatalf("expected two list calls, got %d", len(orders.ListFilters))
	}
	if len(orders.ListFilters[0].Statuses) != len(usecase.ActiveStatuses) {
		t.Fatalf("unexpected manage statuses %v", orders.ListFilters[0].Statuses)
	}
	if len(orders.ListFilters[1].Statuses) != len(usecase.HistoryStatuses) {
		t.Fatalf("unexpected history statuses %v", orders.ListFilters[1].Statuses)
	}

	if err := facade.SetOrderStatus(context.Background(), 2, "processing", ""); err != nil {
		t.Fatalf("set order status returned error: %v", err)
	}
}

func TestStoreFacadeExpireStaleOrders(t *testing.T) {
	facade, _, orders, _, _ := newFacade()
	orders.ExpiredIDs = []int64{4, 5}

	ids, err := facade.ExpireStaleOrders(context.Background(), 50)
	if err != nil {
		t.Fatalf("expire returned error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected two expired ids, got %v", ids)
	}
	if len(orders.ExpireCalls) != 1 {
		t.Fatalf("expected one expire call, got %d", len(orders.ExpireCalls))
	}
	call := orders.ExpireCalls[0]
	if call.OlderThanSeconds != int64((24 * time.Hour).Seconds()) || call.Limit != 50 {
		t.Fatalf("unexpected expire call %+v", call)
	}
}

func TestStoreFacadeCatalog(t *testing.T) {
	facade, _, _, products, _ := newFacade()

	created, err := facade.CreateProduct(context.Background(), model.Product{
		Name:       "Keyboard",
		CategoryID: 1,
		Price:      150000,
	})
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}

	listed, total, err := facade.Products(context.Background(), "", 0, 1)
	if err != nil || total != 1 || len(listed) != 1 {
		t.Fatalf("unexpected listing: %v total=%d err=%v", listed, total, err)
	}

	fetched, err := facade.Product(context.Background(), created.ID)
	if err != nil || fetched.Name != "Keyboard" {
		t.Fatalf("unexpected product %+v err=%v", fetched, err)
	}

	created.Price = 175000
	if err := facade.UpdateProduct(context.Background(), *created); err != nil {
		t.Fatalf("update product returned error: %v", err)
	}
	if products.Products[0].Price != 175000 {
		t.Fatalf("expected price update, got %+v", products.Products[0])
	}

	if err := facade.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("delete product returned error: %v", err)
	}

	category, err := facade.CreateCategory(context.Background(), "Peripherals")
	if err != nil {
		t.Fatalf("create category returned error: %v", err)
	}
	if err := facade.UpdateCategory(context.Background(), category.ID, "Accessories"); err != nil {
		t.Fatalf("update category returned error: %v", err)
	}
	categories, err := facade.Categories(context.Background())
	if err != nil || len(categories) != 1 || categories[0].Name != "Accessories" {
		t.Fatalf("unexpected categories %v err=%v", categories, err)
	}
	if err := facade.DeleteCategory(context.Background(), category.ID); err != nil {
		t.Fatalf("delete category returned error: %v", err)
	}
	if err := facade.DeleteCategory(context.Background(), category.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
