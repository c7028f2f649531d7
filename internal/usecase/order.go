package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/polkiloo/foodstall/internal/basket"
	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/domain/model"
	"github.com/polkiloo/foodstall/internal/domain/repository"
	"github.com/polkiloo/foodstall/internal/notify"
)

// PaymentFilter narrows staff order listings.
type PaymentFilter string

const (
	PaymentFilterAll    PaymentFilter = ""
	PaymentFilterUnpaid PaymentFilter = "unpaid"
	PaymentFilterPaid   PaymentFilter = "paid"
)

// ParsePaymentFilter accepts "", "all", "unpaid" and "paid".
func ParsePaymentFilter(raw string) (PaymentFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return PaymentFilterAll, true
	case "unpaid":
		return PaymentFilterUnpaid, true
	case "paid":
		return PaymentFilterPaid, true
	}
	return "", false
}

// LifecycleOptions tune transition enforcement.
type LifecycleOptions struct {
	// StrictTransitions rejects backward status moves and repeated payment.
	StrictTransitions bool
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	catalog  MenuCatalog
	notifier notify.Notifier
	logger   *slog.Logger
	opts     LifecycleOptions
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, catalog MenuCatalog, notifier notify.Notifier, logger *slog.Logger, opts LifecycleOptions) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

// Submit persists the basket as a new order. The basket is cleared only when
// the store accepted the order; on any error it is left untouched for retry.
func (u *OrderUseCase) Submit(ctx context.Context, b *basket.Basket, orderID string, dine model.DineOption) (*model.Order, error) {
	if b.IsEmpty() {
		return nil, domainErrors.ErrEmptyOrder
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domainErrors.ErrInvalidOrderID
	}
	if dine != model.DineOptionDineIn && dine != model.DineOptionTakeAway {
		return nil, domainErrors.ErrInvalidDineOption
	}
	for _, line := range b.Lines {
		if _, ok := u.catalog.Lookup(line.Item); !ok {
			return nil, domainErrors.ErrUnknownMenuItem
		}
	}

	order, err := u.orders.Create(ctx, orderID, dine, b.LineItems())
	if err != nil {
		return nil, err
	}

	b.Clear()
	total := order.Total()
	u.publish(ctx, model.OrderEvent{
		Type:          model.OrderEventSubmitted,
		OrderID:       order.ID,
		DineOption:    order.DineOption,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		Total:         &total,
	})
	return order, nil
}

// Get returns the order record without its line items.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// GetWithItems returns the order together with its line items.
func (u *OrderUseCase) GetWithItems(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := u.orders.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// List returns orders newest first, optionally narrowed by payment status.
func (u *OrderUseCase) List(ctx context.Context, filter PaymentFilter) ([]model.Order, error) {
	orders, err := u.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == PaymentFilterAll {
		return orders, nil
	}

	want := model.PaymentStatusUnpaid
	if filter == PaymentFilterPaid {
		want = model.PaymentStatusPaid
	}
	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.PaymentStatus == want {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Outstanding lists unpaid orders for the cashier.
func (u *OrderUseCase) Outstanding(ctx context.Context) ([]model.Order, error) {
	return u.List(ctx, PaymentFilterUnpaid)
}

// UpdateStatus overwrites the kitchen status. Without strict transitions the
// last write wins.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID, rawStatus string) (model.OrderStatus, error) {
	status, ok := model.ParseOrderStatus(rawStatus)
	if !ok {
		return "", domainErrors.ErrInvalidStatus
	}

	if u.opts.StrictTransitions {
		current, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return "", err
		}
		if !current.Status.CanTransitionTo(status) {
			return "", domainErrors.ErrInvalidTransition
		}
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return "", err
	}

	u.publish(ctx, model.OrderEvent{
		Type:    model.OrderEventStatusChanged,
		OrderID: orderID,
		Status:  status,
	})
	return status, nil
}

// UpdatePayment marks the order paid with method. Without strict transitions a
// repeated payment overwrites the method.
func (u *OrderUseCase) UpdatePayment(ctx context.Context, orderID, method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return domainErrors.ErrInvalidPaymentMethod
	}

	if u.opts.StrictTransitions {
		current, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if current.IsPaid() {
			return domainErrors.ErrAlreadyPaid
		}
	}

	if err := u.orders.UpdatePayment(ctx, orderID, method); err != nil {
		return err
	}

	u.publish(ctx, model.OrderEvent{
		Type:          model.OrderEventPaid,
		OrderID:       orderID,
		PaymentStatus: model.PaymentStatusPaid,
		PaymentMethod: method,
	})
	return nil
}

func (u *OrderUseCase) publish(ctx context.Context, event model.OrderEvent) {
	if u.notifier == nil {
		return
	}
	event.OccurredAt = u.now()
	if err := u.notifier.Notify(ctx, event); err != nil {
		u.logger.Warn("order notification failed",
			slog.String("order_id", event.OrderID),
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
	}
}
