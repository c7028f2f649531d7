package session

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/config"
)

// Module provides the session Store: Redis when an address is configured,
// in-process memory otherwise.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStore(p storeParams) Store {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("using in-memory session store")
		return NewMemoryStore(p.Config.SessionTTL)
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	p.Logger.Info("using redis session store", slog.String("addr", p.Config.RedisAddress))
	return NewRedisStore(client, p.Config.SessionTTL)
}
