package test

import (
	"context"

	"github.com/rizkypra/storefront/internal/adapter/snap"
)

// GatewayStub answers payment session requests for tests.
type GatewayStub struct {
	CreateFn func(context.Context, snap.Transaction) (string, error)
	Token    string
	Err      error

	Requests []snap.Transaction
}

// CreateTransaction records the request and returns the configured token.
func (s *GatewayStub) CreateTransaction(ctx context.Context, txn snap.Transaction) (string, error) {
	s.Requests = append(s.Requests, txn)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, txn)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.Token != "" {
		return s.Token, nil
	}
	return "snap-token", nil
}

var _ snap.Client = (*GatewayStub)(nil)
