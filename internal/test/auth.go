package test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rizkypra/storefront/internal/domain/model"
	pkgAuth "github.com/rizkypra/storefront/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64, model.Role) (string, error)
	ParseFn func(string) (pkgAuth.Claims, error)
	NameVal string
}

// IssueToken returns deterministic tokens encoding id and role.
func (s StrategyStub) IssueToken(userID int64, role model.Role) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, role)
	}
	return fmt.Sprintf("token:%d:%s", userID, role), nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	parts := strings.Split(token, ":")
	if len(parts) == 3 && parts[0] == "token" {
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err == nil {
			if role, ok := model.ParseRole(parts[2]); ok {
				return pkgAuth.Claims{UserID: id, Role: role}, nil
			}
		}
	}
	return pkgAuth.Claims{UserID: 1, Role: model.RoleUser}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Claims  pkgAuth.Claims
	Err     error
	ParseFn func(string) (pkgAuth.Claims, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return pkgAuth.Claims{}, s.Err
	}
	return s.Claims, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
