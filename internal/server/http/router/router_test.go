package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/pkg/auth"
	"github.com/rizkypra/storefront/internal/server/http/handlers"
	testhelpers "github.com/rizkypra/storefront/internal/test"
)

func newFacade(role model.Role) *testhelpers.StoreFacadeStub {
	return &testhelpers.StoreFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			ParseFn: func(string) (auth.Claims, error) {
				return auth.Claims{UserID: 1, Role: role}, nil
			},
		},
	}
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(newFacade(model.RoleUser), logger)

	body, _ := json.Marshal(map[string]string{"name": "u", "email": "u@example.com", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for logout, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public products, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]string{"order_id": "ord-1", "status": "paid"})
	req = httptest.NewRequest(http.MethodPost, "/payments/update-status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for payment callback, got %d", resp.Code)
	}
}

func TestSetupCheckoutRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(newFacade(model.RoleUser), logger)

	req := httptest.NewRequest(http.MethodPost, "/checkout/process", bytes.NewReader([]byte("{}")))
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestSetupAdminRoutesRequireAdminRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	userEngine := Setup(newFacade(model.RoleUser), logger)
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	userEngine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}

	adminEngine := Setup(newFacade(model.RoleAdmin), logger)
	req = httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	adminEngine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	adminEngine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin user list, got %d", resp.Code)
	}
}

var _ handlers.StoreFacade = (*testhelpers.StoreFacadeStub)(nil)
