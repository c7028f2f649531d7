package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/polkiloo/foodstall/internal/domain/model"
)

// Notifier delivers order events to an external collaborator.
type Notifier interface {
	Notify(ctx context.Context, event model.OrderEvent) error
}

// Multi fans an event out to every notifier and joins their errors.
type Multi struct {
	notifiers []Notifier
}

// NewMulti drops nil notifiers so disabled collaborators can be passed as is.
func NewMulti(notifiers ...Notifier) *Multi {
	m := &Multi{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Len returns the number of active notifiers.
func (m *Multi) Len() int {
	return len(m.notifiers)
}

func (m *Multi) Notify(ctx context.Context, event model.OrderEvent) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes the confirmation cue to the log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(ctx context.Context, event model.OrderEvent) error {
	attrs := []any{
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	}
	if event.Status != "" {
		attrs = append(attrs, slog.String("status", string(event.Status)))
	}
	if event.PaymentMethod != "" {
		attrs = append(attrs, slog.String("payment_method", event.PaymentMethod))
	}
	if event.Total != nil {
		attrs = append(attrs, slog.String("total", event.Total.StringFixed(2)))
	}
	l.logger.InfoContext(ctx, "order event", attrs...)
	return nil
}
