package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	pkgAuth "github.com/rizkypra/storefront/internal/pkg/auth"
	testhelpers "github.com/rizkypra/storefront/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64, role model.Role) (string, error) {
			return fmt.Sprintf("token-%d-%s", userID, role), nil
		},
		ParseFn: func(token string) (pkgAuth.Claims, error) {
			var id int64
			var role string
			if _, err := fmt.Sscanf(token, "token-%d-%s", &id, &role); err != nil {
				return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
			}
			return pkgAuth.Claims{UserID: id, Role: model.Role(role)}, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, model.Registration{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "password",
		Phone:    "0811111111",
		Address:  "Jl. Merdeka 1",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleUser {
		t.Fatalf("expected user role, got %q", user.Role)
	}
	if token != "token-1-user" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	input := model.Registration{Name: "Bob", Email: "bob@example.com", Password: "secret"}
	if _, _, err := uc.Register(ctx, input); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, input); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	cases := []model.Registration{
		{Email: "a@b.com", Password: "password"},
		{Name: "user", Password: "password"},
		{Name: "user", Email: "a@b.com"},
	}
	for _, input := range cases {
		if _, _, err := uc.Register(context.Background(), input); err != domainErrors.ErrInvalidCredentials {
			t.Fatalf("expected invalid credentials error for %+v, got %v", input, err)
		}
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())

	if _, _, err := uc.Register(context.Background(), model.Registration{Name: "x", Email: "x@y.z", Password: "p"}); err == nil {
		t.Fatalf("expected hasher error to propagate")
	}
	if len(repo.ByID) != 0 {
		t.Fatalf("no user should be stored on hasher failure")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, model.Registration{Name: "Carol", Email: "carol@example.com", Password: "123456"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@example.com", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "Carol@Example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1-user" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	claims, err := uc.ParseToken("token-42-admin")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != 42 || claims.Role != model.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseUserAdministration(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, _, err := uc.Register(ctx, model.Registration{Name: "Dan", Email: "dan@example.com", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	users, err := uc.Users(ctx)
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}

	if err := uc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := uc.DeleteUser(ctx, user.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
