package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/domain/repository"
	pkgAuth "github.com/rizkypra/storefront/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new customer account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, input model.Registration) (*model.User, string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Role:         model.RoleUser,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts identity claims from the provided token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Users lists registered users for the back office.
func (u *AuthUseCase) Users(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// DeleteUser removes a user account.
func (u *AuthUseCase) DeleteUser(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}
