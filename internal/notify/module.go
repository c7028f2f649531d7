package notify

import (
	"log/slog"

	"go.uber.org/fx"
)

// GroupTag collects optional notifiers contributed by transport modules.
const GroupTag = `group:"order_notifiers"`

// Module assembles every contributed notifier plus the log cue into one Notifier.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Logger    *slog.Logger
	Notifiers []Notifier `group:"order_notifiers"`
}

func newNotifier(p notifierParams) Notifier {
	all := append([]Notifier{NewLogNotifier(p.Logger)}, p.Notifiers...)
	multi := NewMulti(all...)
	p.Logger.Info("order notifiers configured", slog.Int("count", multi.Len()))
	return multi
}
