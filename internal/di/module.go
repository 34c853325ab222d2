package di

import (
	"go.uber.org/fx"

	"courierpay/internal/app"
	"courierpay/internal/config"
	"courierpay/internal/events"
	"courierpay/internal/logger"
	"courierpay/internal/pkg/auth"
	"courierpay/internal/server/http/handlers"
	"courierpay/internal/server/http/router"
	"courierpay/internal/storage/postgres"
	"courierpay/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(bus *events.Bus) usecase.EventPublisher { return bus }),
		fx.Provide(func(facade *app.LedgerFacade) handlers.LedgerFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
