package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/catalog"
	"github.com/polkiloo/foodstall/internal/config"
	"github.com/polkiloo/foodstall/internal/metrics"
	"github.com/polkiloo/foodstall/internal/session"
	"github.com/polkiloo/foodstall/internal/storage/postgres"
	"github.com/polkiloo/foodstall/internal/usecase"
)

// Module wires application services, the HTTP server and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newStallFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type facadeParams struct {
	fx.In

	Basket   *usecase.BasketUseCase
	Orders   *usecase.OrderUseCase
	Staff    *usecase.StaffUseCase
	Catalog  *catalog.Catalog
	Sessions session.Store
	Storage  *postgres.Storage
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

func newStallFacade(p facadeParams) *StallFacade {
	return NewStallFacade(Deps{
		Basket:   p.Basket,
		Orders:   p.Orders,
		Staff:    p.Staff,
		Menu:     p.Catalog,
		Sessions: p.Sessions,
		Health:   p.Storage,
		Metrics:  p.Metrics,
		Logger:   p.Logger,
	})
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

const readHeaderTimeout = 5 * time.Second

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting foodstall", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("foodstall stopped")
			return nil
		},
	})
}
