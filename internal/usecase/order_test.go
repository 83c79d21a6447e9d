package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	testhelpers "github.com/rizkypra/storefront/internal/test"
)

func TestOrderUseCaseUpdatePaymentStatus(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{ID: 7, Code: "ord-7", Status: model.OrderStatusPending}},
	}
	uc := NewOrderUseCase(repo)

	if err := uc.UpdatePaymentStatus(context.Background(), "ord-7", "paid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.UpdateCalls) != 1 {
		t.Fatalf("expected one update call, got %d", len(repo.UpdateCalls))
	}
	if repo.UpdateCalls[0].OrderID != 7 || repo.UpdateCalls[0].Status != model.OrderStatusPaid {
		t.Fatalf("unexpected update call %+v", repo.UpdateCalls[0])
	}
}

func TestOrderUseCaseUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{
		UpdateStatusFn: func(context.Context, int64, model.OrderStatus) error {
			t.Fatal("update should not be called for unknown status")
			return nil
		},
	}
	uc := NewOrderUseCase(repo)

	for _, raw := range []string{"settled", "PAID", "", "processing"} {
		if err := uc.UpdatePaymentStatus(context.Background(), "ord-1", raw); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", raw, err)
		}
	}
}

func TestOrderUseCaseUpdatePaymentStatusUnknownOrder(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{})

	if err := uc.UpdatePaymentStatus(context.Background(), "missing", "paid"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseAdminUpdateStatus(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	if err := uc.AdminUpdateStatus(context.Background(), 3, "processing", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.UpdateCalls) != 1 || repo.UpdateCalls[0].Status != model.OrderStatusProcessing {
		t.Fatalf("unexpected update calls %+v", repo.UpdateCalls)
	}
}

func TestOrderUseCaseAdminUpdateStatusShippedRequiresTracking(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	if err := uc.AdminUpdateStatus(context.Background(), 3, "shipped", "   "); err != domainErrors.ErrTrackingRequired {
		t.Fatalf("expected tracking required error, got %v", err)
	}
	if len(repo.UpdateCalls) != 0 {
		t.Fatalf("no writes expected without tracking code")
	}

	if err := uc.AdminUpdateStatus(context.Background(), 3, "shipped", " JNE-123 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := repo.UpdateCalls[0]
	if call.Status != model.OrderStatusShipped || call.ResiCode != "JNE-123" {
		t.Fatalf("unexpected shipped call %+v", call)
	}
}

func TestOrderUseCaseAdminUpdateStatusRejectsOutsideSet(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{
		UpdateStatusFn: func(context.Context, int64, model.OrderStatus) error {
			t.Fatal("update should not be called")
			return nil
		},
	})

	for _, raw := range []string{"pending", "delivered", "expired", "bogus"} {
		if err := uc.AdminUpdateStatus(context.Background(), 1, raw, ""); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", raw, err)
		}
	}
}

func TestOrderUseCaseListRestrictsStatusFilterToView(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	if _, _, err := uc.List(context.Background(), ActiveStatuses, "delivered", "", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filter := repo.ListFilters[0]
	if len(filter.Statuses) != len(ActiveStatuses) {
		t.Fatalf("filter outside view must be ignored, got %+v", filter.Statuses)
	}

	if _, _, err := uc.List(context.Background(), ActiveStatuses, "shipped", " query ", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filter = repo.ListFilters[1]
	if len(filter.Statuses) != 1 || filter.Statuses[0] != model.OrderStatusShipped {
		t.Fatalf("expected narrowed filter, got %+v", filter.Statuses)
	}
	if filter.Search != "query" {
		t.Fatalf("expected trimmed search, got %q", filter.Search)
	}
	if filter.Page != 2 || filter.PageSize != ListPageSize {
		t.Fatalf("unexpected paging %+v", filter)
	}
}

func TestOrderUseCaseExpireStale(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{ExpiredIDs: []int64{4, 5}}
	uc := NewOrderUseCase(repo)

	ids, err := uc.ExpireStale(context.Background(), 24*time.Hour, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected two expired orders, got %v", ids)
	}
	call := repo.ExpireCalls[0]
	if call.OlderThanSeconds != 86400 || call.Limit != 50 {
		t.Fatalf("unexpected expire call %+v", call)
	}
}
