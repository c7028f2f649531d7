package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/adapter/webhook"
	"github.com/polkiloo/foodstall/internal/app"
	"github.com/polkiloo/foodstall/internal/catalog"
	"github.com/polkiloo/foodstall/internal/config"
	"github.com/polkiloo/foodstall/internal/logger"
	"github.com/polkiloo/foodstall/internal/messaging/kafka"
	"github.com/polkiloo/foodstall/internal/metrics"
	"github.com/polkiloo/foodstall/internal/notify"
	"github.com/polkiloo/foodstall/internal/pkg/auth"
	"github.com/polkiloo/foodstall/internal/server/http/handlers"
	"github.com/polkiloo/foodstall/internal/server/http/router"
	"github.com/polkiloo/foodstall/internal/session"
	"github.com/polkiloo/foodstall/internal/storage/postgres"
	"github.com/polkiloo/foodstall/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		catalog.Module,
		postgres.Module,
		session.Module,
		kafka.Module,
		webhook.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(f *app.StallFacade) handlers.StallFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
