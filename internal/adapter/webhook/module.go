package webhook

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/config"
	"github.com/polkiloo/foodstall/internal/notify"
)

// Module contributes the webhook client to the order notifier group.
var Module = fx.Provide(
	fx.Annotate(newNotifier, fx.ResultTags(notify.GroupTag)),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p clientParams) (notify.Notifier, error) {
	if p.Config.WebhookURL == "" {
		return nil, nil
	}
	client, err := NewHTTPClient(p.Config.WebhookURL, p.Logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
