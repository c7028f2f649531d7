package kafka

import (
	"context"
	"log/slog"

	"github.com/IBM/sarama"
	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/config"
	"github.com/polkiloo/foodstall/internal/notify"
)

// Module contributes the Kafka publisher to the order notifier group when
// brokers are configured.
var Module = fx.Provide(
	fx.Annotate(newNotifier, fx.ResultTags(notify.GroupTag)),
)

var newProducer = func(brokers []string, cfg *sarama.Config) (sarama.SyncProducer, error) {
	return sarama.NewSyncProducer(brokers, cfg)
}

type notifierParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newNotifier(p notifierParams) notify.Notifier {
	if len(p.Config.KafkaBrokers) == 0 {
		return nil
	}

	publisher, err := NewPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic, p.Logger)
	if err != nil {
		p.Logger.Warn("kafka notifier disabled", slog.String("error", err.Error()))
		return nil
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	p.Logger.Info("kafka notifier enabled", slog.String("topic", publisher.Topic()))
	return publisher
}
