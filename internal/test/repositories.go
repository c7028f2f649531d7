package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory with store-like semantics.
// Any Fn override replaces the default behaviour of its method.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, string, model.DineOption, []model.LineItem) (*model.Order, error)
	GetAllFn        func(context.Context) ([]model.Order, error)
	GetByIDFn       func(context.Context, string) (*model.Order, error)
	ListItemsFn     func(context.Context, string) ([]model.LineItem, error)
	UpdateStatusFn  func(context.Context, string, model.OrderStatus) error
	UpdatePaymentFn func(context.Context, string, string) error

	mu     sync.Mutex
	orders map[string]*model.Order
	nextID int64
	clock  time.Time

	CreateCalls int
}

// NewOrderRepositoryStub constructs an empty in-memory store.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{orders: make(map[string]*model.Order), clock: time.Unix(1700000000, 0)}
}

// Create inserts order and items unless the id is taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, orderID string, dine model.DineOption, items []model.LineItem) (*model.Order, error) {
	s.mu.Lock()
	s.CreateCalls++
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, dine, items)
	}
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders == nil {
		s.orders = make(map[string]*model.Order)
	}
	if _, exists := s.orders[orderID]; exists {
		return nil, domainErrors.ErrDuplicateOrderID
	}

	s.clock = s.clock.Add(time.Second)
	order := &model.Order{
		ID:            orderID,
		DineOption:    dine,
		SubmittedAt:   s.clock,
		Status:        model.OrderStatusInKitchen,
		PaymentStatus: model.PaymentStatusUnpaid,
	}
	for _, item := range items {
		s.nextID++
		row := model.NewLineItem(item.Item, item.UnitPrice, item.Quantity)
		row.ID = s.nextID
		row.OrderID = orderID
		order.Items = append(order.Items, row)
	}
	s.orders[orderID] = order
	return cloneOrder(order, true), nil
}

// GetAll returns every order with items, newest first.
func (s *OrderRepositoryStub) GetAll(ctx context.Context) ([]model.Order, error) {
	if s.GetAllFn != nil {
		return s.GetAllFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, *cloneOrder(o, true))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SubmittedAt.After(result[j].SubmittedAt) })
	return result, nil
}

// GetByID returns the order header without items.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneOrder(o, false), nil
}

// ListItems returns items of orderID.
func (s *OrderRepositoryStub) ListItems(ctx context.Context, orderID string) ([]model.LineItem, error) {
	if s.ListItemsFn != nil {
		return s.ListItemsFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	return append([]model.LineItem(nil), o.Items...), nil
}

// UpdateStatus overwrites status unconditionally.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = status
	return nil
}

// UpdatePayment marks the order paid, overwriting any earlier method.
func (s *OrderRepositoryStub) UpdatePayment(ctx context.Context, orderID, method string) error {
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, orderID, method)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.PaymentStatus = model.PaymentStatusPaid
	o.PaymentMethod = &method
	return nil
}

func cloneOrder(o *model.Order, withItems bool) *model.Order {
	out := *o
	out.Items = nil
	if withItems {
		out.Items = append([]model.LineItem(nil), o.Items...)
	}
	if o.PaymentMethod != nil {
		method := *o.PaymentMethod
		out.PaymentMethod = &method
	}
	return &out
}
