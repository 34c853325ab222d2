package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"courierpay/internal/config"
	"courierpay/internal/domain/repository"
	"courierpay/internal/events"
	pkgAuth "courierpay/internal/pkg/auth"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewLedgerFacade,
		newHTTPServer,
		newAdministrator,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type administratorParams struct {
	fx.In

	Ctx          context.Context
	Config       *config.Config
	Participants repository.ParticipantRepository
	Hasher       pkgAuth.PasswordHasher
}

// newAdministrator fixes the privileged identity before the service starts
// accepting calls: the configured login is looked up and created when absent.
func newAdministrator(p administratorParams) (*pkgAuth.Administrator, error) {
	hash, err := p.Hasher.Hash(p.Config.AdminPassword)
	if err != nil {
		return nil, err
	}
	admin, err := p.Participants.Ensure(p.Ctx, p.Config.AdminLogin, hash)
	if err != nil {
		return nil, err
	}
	return &pkgAuth.Administrator{ID: admin.ID}, nil
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Bus        *events.Bus
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting courierpay", slog.String("addr", p.Server.Addr))
			p.Bus.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Bus.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("courierpay stopped")
			return nil
		},
	})
}
