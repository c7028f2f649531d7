package usecase

import "github.com/shopspring/decimal"

// MenuCatalog resolves current menu prices.
type MenuCatalog interface {
	Lookup(name string) (decimal.Decimal, bool)
}
