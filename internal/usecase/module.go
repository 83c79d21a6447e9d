package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/rizkypra/storefront/internal/adapter/snap"
	"github.com/rizkypra/storefront/internal/config"
	"github.com/rizkypra/storefront/internal/domain/repository"
)

func newCheckoutUseCase(orders repository.OrderRepository, users repository.UserRepository, gateway snap.Client, cfg *config.Config, logger *slog.Logger) *CheckoutUseCase {
	return NewCheckoutUseCase(orders, users, gateway, cfg.ShippingFee, logger)
}

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewOrderUseCase,
	NewCatalogUseCase,
	newCheckoutUseCase,
)
