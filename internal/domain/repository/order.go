package repository

import (
	"context"

	"github.com/polkiloo/foodstall/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, orderID string, dine model.DineOption, items []model.LineItem) (*model.Order, error)
	GetAll(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	ListItems(ctx context.Context, orderID string) ([]model.LineItem, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	UpdatePayment(ctx context.Context, orderID, method string) error
}
