package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/catalog"
	"github.com/polkiloo/foodstall/internal/config"
	"github.com/polkiloo/foodstall/internal/domain/repository"
	"github.com/polkiloo/foodstall/internal/notify"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newBasketUseCase,
	newOrderUseCase,
	NewStaffUseCase,
)

func newBasketUseCase(c *catalog.Catalog) *BasketUseCase {
	return NewBasketUseCase(c)
}

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Catalog  *catalog.Catalog
	Notifier notify.Notifier
	Logger   *slog.Logger
	Config   *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Catalog, p.Notifier, p.Logger, LifecycleOptions{
		StrictTransitions: p.Config.StrictTransitions,
	})
}
