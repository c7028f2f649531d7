package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/domain/model"
	"github.com/polkiloo/foodstall/internal/session"
)

// StallFacadeStub provides controllable behaviour for every HTTP endpoint.
// Without overrides it keeps sessions in memory and answers with fixed data.
type StallFacadeStub struct {
	SessionFn       func(context.Context, string, string) (*session.Session, error)
	AddFn           func(context.Context, *session.Session, string, int) error
	RemoveFn        func(context.Context, *session.Session, int) error
	ClearFn         func(context.Context, *session.Session) error
	SubmitFn        func(context.Context, *session.Session, string, string, string) (*model.Order, error)
	OrderFn         func(context.Context, string) (*model.Order, error)
	SessionOrderFn  func(context.Context, *session.Session) (*model.Order, error)
	LoginFn         func(string) (string, error)
	ParseTokenFn    func(string) (string, error)
	OrdersFn        func(context.Context, string) ([]model.Order, error)
	OrderDetailFn   func(context.Context, string) (*model.Order, error)
	OutstandingFn   func(context.Context) ([]model.Order, error)
	UpdateStatusFn  func(context.Context, string, string) (model.OrderStatus, error)
	RecordPaymentFn func(context.Context, string, string) error
	HealthFn        func(context.Context) error

	mu       sync.Mutex
	sessions map[string]*session.Session
}

// SampleOrder returns an unpaid MEJA-3 order with two lines totalling 25.00.
func SampleOrder() model.Order {
	return model.Order{
		ID:            "MEJA-3",
		DineOption:    model.DineOptionDineIn,
		SubmittedAt:   time.Date(2024, 5, 17, 13, 4, 5, 0, time.UTC),
		Status:        model.OrderStatusInKitchen,
		PaymentStatus: model.PaymentStatusUnpaid,
		Items: []model.LineItem{
			model.NewLineItem("Fries", decimal.RequireFromString("4.00"), 2),
			model.NewLineItem("Lamb Chop", decimal.RequireFromString("17.00"), 1),
		},
	}
}

func (s *StallFacadeStub) MenuItems() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Fries", Price: decimal.RequireFromString("4"), Category: model.MenuCategoryFood},
		{Name: "Teh O Ais", Price: decimal.RequireFromString("3"), Category: model.MenuCategoryDrink},
		{Name: "Lamb Chop", Price: decimal.RequireFromString("17"), Category: model.MenuCategoryFood},
	}
}

func (s *StallFacadeStub) PaymentMethods() []string {
	return []string{"Tunai", "DuitNow QR Pay"}
}

// Session returns the stored session for id or a new one.
func (s *StallFacadeStub) Session(ctx context.Context, id, table string) (*session.Session, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, id, table)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = make(map[string]*session.Session)
	}
	sess, ok := s.sessions[id]
	if !ok {
		sess = session.New()
		s.sessions[sess.ID] = sess
	}
	if table != "" {
		sess.Table = table
	}
	return sess, nil
}

func (s *StallFacadeStub) AddToBasket(ctx context.Context, sess *session.Session, item string, quantity int) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, sess, item, quantity)
	}
	return sess.Basket.Add(item, decimal.RequireFromString("4"), quantity)
}

func (s *StallFacadeStub) RemoveFromBasket(ctx context.Context, sess *session.Session, position int) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, sess, position)
	}
	sess.Basket.RemoveAt(position)
	return nil
}

func (s *StallFacadeStub) ClearBasket(ctx context.Context, sess *session.Session) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, sess)
	}
	sess.Basket.Clear()
	return nil
}

func (s *StallFacadeStub) SubmitOrder(ctx context.Context, sess *session.Session, table, dineOption, orderID string) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, sess, table, dineOption, orderID)
	}
	if sess.Basket.IsEmpty() {
		return nil, domainErrors.ErrEmptyOrder
	}
	order := SampleOrder()
	sess.Basket.Clear()
	sess.LastOrderID = order.ID
	return &order, nil
}

func (s *StallFacadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	order := SampleOrder()
	order.Items = nil
	return &order, nil
}

func (s *StallFacadeStub) OrderDetail(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderDetailFn != nil {
		return s.OrderDetailFn(ctx, orderID)
	}
	order := SampleOrder()
	return &order, nil
}

func (s *StallFacadeStub) SessionOrder(ctx context.Context, sess *session.Session) (*model.Order, error) {
	if s.SessionOrderFn != nil {
		return s.SessionOrderFn(ctx, sess)
	}
	if sess.LastOrderID == "" {
		return nil, domainErrors.ErrNotFound
	}
	return s.Order(ctx, sess.LastOrderID)
}

func (s *StallFacadeStub) Login(password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(password)
	}
	return "token", nil
}

func (s *StallFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return "staff", nil
}

func (s *StallFacadeStub) Orders(ctx context.Context, filter string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{SampleOrder()}, nil
}

func (s *StallFacadeStub) Outstanding(ctx context.Context) ([]model.Order, error) {
	if s.OutstandingFn != nil {
		return s.OutstandingFn(ctx)
	}
	return []model.Order{SampleOrder()}, nil
}

func (s *StallFacadeStub) UpdateStatus(ctx context.Context, orderID, status string) (model.OrderStatus, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	parsed, ok := model.ParseOrderStatus(status)
	if !ok {
		return "", domainErrors.ErrInvalidStatus
	}
	return parsed, nil
}

func (s *StallFacadeStub) RecordPayment(ctx context.Context, orderID, method string) error {
	if s.RecordPaymentFn != nil {
		return s.RecordPaymentFn(ctx, orderID, method)
	}
	return nil
}

func (s *StallFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
