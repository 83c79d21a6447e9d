package di

import (
	"github.com/rizkypra/storefront/internal/adapter/snap"
	"github.com/rizkypra/storefront/internal/app"
	"github.com/rizkypra/storefront/internal/config"
	"github.com/rizkypra/storefront/internal/logger"
	"github.com/rizkypra/storefront/internal/pkg/auth"
	"github.com/rizkypra/storefront/internal/server/http/handlers"
	"github.com/rizkypra/storefront/internal/server/http/router"
	"github.com/rizkypra/storefront/internal/storage/postgres"
	"github.com/rizkypra/storefront/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		snap.Module,
		usecase.Module,
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
