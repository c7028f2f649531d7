package usecase

import (
	"strings"

	"github.com/polkiloo/foodstall/internal/basket"
	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/domain/model"
)

// BasketUseCase edits a session basket using catalog prices.
type BasketUseCase struct {
	catalog MenuCatalog
}

// NewBasketUseCase constructs BasketUseCase.
func NewBasketUseCase(catalog MenuCatalog) *BasketUseCase {
	return &BasketUseCase{catalog: catalog}
}

// Add appends quantity of item priced as the menu lists it right now.
func (u *BasketUseCase) Add(b *basket.Basket, item string, quantity int) error {
	if quantity <= 0 || quantity > model.MaxQuantity {
		return domainErrors.ErrInvalidQuantity
	}
	item = strings.TrimSpace(item)
	price, ok := u.catalog.Lookup(item)
	if !ok {
		return domainErrors.ErrUnknownMenuItem
	}
	return b.Add(item, price, quantity)
}

// Remove drops the line at position; out of range is a no-op.
func (u *BasketUseCase) Remove(b *basket.Basket, position int) {
	b.RemoveAt(position)
}

func (u *BasketUseCase) Clear(b *basket.Basket) {
	b.Clear()
}
