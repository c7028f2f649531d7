package model

import "github.com/shopspring/decimal"

// MenuCategory groups menu entries for display.
type MenuCategory string

const (
	MenuCategoryFood  MenuCategory = "makanan"
	MenuCategoryDrink MenuCategory = "minuman"
)

// MenuItem is a priced catalog entry.
type MenuItem struct {
	Name     string
	Price    decimal.Decimal
	Category MenuCategory
}
