package handlers

import (
	"context"

	"github.com/polkiloo/foodstall/internal/domain/model"
	"github.com/polkiloo/foodstall/internal/session"
)

// MenuFacade exposes the catalog.
type MenuFacade interface {
	MenuItems() []model.MenuItem
	PaymentMethods() []string
}

// SessionFacade resolves the customer session of a request.
type SessionFacade interface {
	Session(ctx context.Context, id, table string) (*session.Session, error)
}

// BasketFacade edits the session basket.
type BasketFacade interface {
	AddToBasket(ctx context.Context, sess *session.Session, item string, quantity int) error
	RemoveFromBasket(ctx context.Context, sess *session.Session, position int) error
	ClearBasket(ctx context.Context, sess *session.Session) error
}

// OrderFacade covers customer order operations.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, sess *session.Session, table, dineOption, orderID string) (*model.Order, error)
	Order(ctx context.Context, orderID string) (*model.Order, error)
	SessionOrder(ctx context.Context, sess *session.Session) (*model.Order, error)
}

// StaffFacade covers the password gate and staff order management.
type StaffFacade interface {
	Login(password string) (string, error)
	ParseToken(token string) (string, error)
	Orders(ctx context.Context, filter string) ([]model.Order, error)
	OrderDetail(ctx context.Context, orderID string) (*model.Order, error)
	Outstanding(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (model.OrderStatus, error)
	RecordPayment(ctx context.Context, orderID, method string) error
}

// HealthFacade reports store reachability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StallFacade aggregates the full set of operations used across handlers.
type StallFacade interface {
	MenuFacade
	SessionFacade
	BasketFacade
	OrderFacade
	StaffFacade
	HealthFacade
}
