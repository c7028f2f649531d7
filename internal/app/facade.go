package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/domain/model"
	"github.com/polkiloo/foodstall/internal/metrics"
	"github.com/polkiloo/foodstall/internal/session"
	"github.com/polkiloo/foodstall/internal/usecase"
)

const (
	tableOrderPrefix    = "MEJA-"
	takeawayOrderPrefix = "BAWA PULANG-"
	takeawayStampLayout = "20060102-150405"
	otherPaymentLabel   = "other"
)

// Menu is the catalog view exposed to customers.
type Menu interface {
	Items() []model.MenuItem
	PaymentMethods() []string
}

// HealthChecker reports whether the order store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps groups the collaborators of StallFacade.
type Deps struct {
	Basket   *usecase.BasketUseCase
	Orders   *usecase.OrderUseCase
	Staff    *usecase.StaffUseCase
	Menu     Menu
	Sessions session.Store
	Health   HealthChecker
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// StallFacade joins session handling with the basket, lifecycle and staff
// use cases for the HTTP layer.
type StallFacade struct {
	basket   *usecase.BasketUseCase
	orders   *usecase.OrderUseCase
	staff    *usecase.StaffUseCase
	menu     Menu
	sessions session.Store
	health   HealthChecker
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

func NewStallFacade(d Deps) *StallFacade {
	return &StallFacade{
		basket:   d.Basket,
		orders:   d.Orders,
		staff:    d.Staff,
		menu:     d.Menu,
		sessions: d.Sessions,
		health:   d.Health,
		metrics:  d.Metrics,
		logger:   d.Logger,
		now:      time.Now,
	}
}

func (f *StallFacade) MenuItems() []model.MenuItem {
	return f.menu.Items()
}

func (f *StallFacade) PaymentMethods() []string {
	return f.menu.PaymentMethods()
}

// Session loads the session id or starts a new one when it is unknown or
// expired. A non-empty table is bound to the session.
func (f *StallFacade) Session(ctx context.Context, id, table string) (*session.Session, error) {
	var sess *session.Session
	if id != "" {
		loaded, err := f.sessions.Load(ctx, id)
		switch {
		case err == nil:
			sess = loaded
		case !errors.Is(err, domainErrors.ErrNotFound):
			return nil, err
		}
	}

	fresh := sess == nil
	if fresh {
		sess = session.New()
	}

	table = strings.TrimSpace(table)
	if table != "" && table != sess.Table {
		sess.Table = table
		return sess, f.save(ctx, sess)
	}
	if fresh {
		return sess, f.save(ctx, sess)
	}
	return sess, nil
}

func (f *StallFacade) AddToBasket(ctx context.Context, sess *session.Session, item string, quantity int) error {
	if err := f.basket.Add(&sess.Basket, item, quantity); err != nil {
		return err
	}
	f.count(func(m *metrics.Metrics) { m.BasketItemAdded() })
	return f.save(ctx, sess)
}

func (f *StallFacade) RemoveFromBasket(ctx context.Context, sess *session.Session, position int) error {
	f.basket.Remove(&sess.Basket, position)
	return f.save(ctx, sess)
}

func (f *StallFacade) ClearBasket(ctx context.Context, sess *session.Session) error {
	f.basket.Clear(&sess.Basket)
	return f.save(ctx, sess)
}

// SubmitOrder turns the session basket into an order. Without an explicit
// order id, table sessions use MEJA-<table> and takeaway sessions use a
// timestamped BAWA PULANG id and are always Take-Away.
func (f *StallFacade) SubmitOrder(ctx context.Context, sess *session.Session, table, dineOption, orderID string) (*model.Order, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		table = sess.Table
	}

	dine := model.DineOptionDineIn
	if table == "" {
		dine = model.DineOptionTakeAway
	}
	if strings.TrimSpace(dineOption) != "" {
		parsed, ok := model.ParseDineOption(dineOption)
		if !ok {
			f.submitFailed(domainErrors.ErrInvalidDineOption)
			return nil, domainErrors.ErrInvalidDineOption
		}
		dine = parsed
	}

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		if table != "" {
			orderID = tableOrderPrefix + table
		} else {
			orderID = takeawayOrderPrefix + f.now().Format(takeawayStampLayout)
			dine = model.DineOptionTakeAway
		}
	}

	order, err := f.orders.Submit(ctx, &sess.Basket, orderID, dine)
	if err != nil {
		f.submitFailed(err)
		return nil, err
	}

	sess.Table = table
	sess.LastOrderID = order.ID
	if err := f.save(ctx, sess); err != nil {
		f.dropSession(ctx, sess, order.ID, err)
	}
	f.count(func(m *metrics.Metrics) { m.OrderSubmitted(string(order.DineOption)) })
	return order, nil
}

func (f *StallFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

// SessionOrder returns the last order submitted from sess.
func (f *StallFacade) SessionOrder(ctx context.Context, sess *session.Session) (*model.Order, error) {
	if sess.LastOrderID == "" {
		return nil, domainErrors.ErrNotFound
	}
	return f.orders.Get(ctx, sess.LastOrderID)
}

func (f *StallFacade) Login(password string) (string, error) {
	return f.staff.Login(password)
}

func (f *StallFacade) ParseToken(token string) (string, error) {
	return f.staff.ParseToken(token)
}

// Orders lists orders with items. filter is "", "unpaid" or "paid".
func (f *StallFacade) Orders(ctx context.Context, filter string) ([]model.Order, error) {
	parsed, ok := usecase.ParsePaymentFilter(filter)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	return f.orders.List(ctx, parsed)
}

// OrderDetail returns one order with its line items for the kitchen view.
func (f *StallFacade) OrderDetail(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.GetWithItems(ctx, orderID)
}

func (f *StallFacade) Outstanding(ctx context.Context) ([]model.Order, error) {
	return f.orders.Outstanding(ctx)
}

func (f *StallFacade) UpdateStatus(ctx context.Context, orderID, status string) (model.OrderStatus, error) {
	updated, err := f.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return "", err
	}
	f.count(func(m *metrics.Metrics) { m.StatusUpdated(string(updated)) })
	return updated, nil
}

func (f *StallFacade) RecordPayment(ctx context.Context, orderID, method string) error {
	if err := f.orders.UpdatePayment(ctx, orderID, method); err != nil {
		return err
	}
	f.count(func(m *metrics.Metrics) { m.PaymentRecorded(f.paymentLabel(method)) })
	return nil
}

// paymentLabel maps method onto a menu payment method, or "other", so free
// text never becomes a metric label.
func (f *StallFacade) paymentLabel(method string) string {
	method = strings.TrimSpace(method)
	for _, known := range f.menu.PaymentMethods() {
		if strings.EqualFold(known, method) {
			return known
		}
	}
	return otherPaymentLabel
}

func (f *StallFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}

func (f *StallFacade) save(ctx context.Context, sess *session.Session) error {
	sess.UpdatedAt = f.now()
	return f.sessions.Save(ctx, sess)
}

// dropSession removes a session whose cleared basket could not be stored, so
// the submitted lines can never be reloaded and sent again.
func (f *StallFacade) dropSession(ctx context.Context, sess *session.Session, orderID string, saveErr error) {
	f.logger.Warn("session save after submit failed, dropping session",
		slog.String("session_id", sess.ID),
		slog.String("order_id", orderID),
		slog.String("error", saveErr.Error()),
	)
	if err := f.sessions.Delete(ctx, sess.ID); err != nil {
		f.logger.Error("stale session could not be dropped",
			slog.String("session_id", sess.ID),
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
	}
}

func (f *StallFacade) count(fn func(*metrics.Metrics)) {
	if f.metrics != nil {
		fn(f.metrics)
	}
}

func (f *StallFacade) submitFailed(err error) {
	f.count(func(m *metrics.Metrics) { m.SubmitFailed(failureReason(err)) })
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrEmptyOrder):
		return "empty"
	case errors.Is(err, domainErrors.ErrDuplicateOrderID):
		return "duplicate"
	case errors.Is(err, domainErrors.ErrUnknownMenuItem):
		return "unknown_item"
	case errors.Is(err, domainErrors.ErrInvalidOrderID), errors.Is(err, domainErrors.ErrInvalidDineOption):
		return "invalid"
	default:
		return "storage"
	}
}
