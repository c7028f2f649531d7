package basket

import (
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/domain/model"
)

// Line is a draft entry. The unit price is frozen when the line is added.
type Line struct {
	Item      string          `json:"item"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns quantity times unit price.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Basket holds the lines one client assembles before submitting.
// It is owned by a single session and is not safe for concurrent use.
type Basket struct {
	Lines []Line `json:"lines"`
}

// Add appends a line. Repeated items are kept as separate lines.
// Quantities above model.MaxQuantity, or a subtotal the store cannot hold,
// are rejected as ErrInvalidQuantity.
func (b *Basket) Add(item string, unitPrice decimal.Decimal, quantity int) error {
	if quantity <= 0 || quantity > model.MaxQuantity {
		return domainErrors.ErrInvalidQuantity
	}
	if !model.ValidAmount(unitPrice) {
		return domainErrors.ErrInvalidPrice
	}
	line := Line{Item: item, UnitPrice: unitPrice, Quantity: quantity}
	if !model.ValidAmount(line.Subtotal()) {
		return domainErrors.ErrInvalidQuantity
	}
	b.Lines = append(b.Lines, line)
	return nil
}

// RemoveAt drops the line at position. Out of range positions are ignored.
func (b *Basket) RemoveAt(position int) {
	if position < 0 || position >= len(b.Lines) {
		return
	}
	b.Lines = append(b.Lines[:position], b.Lines[position+1:]...)
}

// Clear empties the basket.
func (b *Basket) Clear() {
	b.Lines = nil
}

// Len returns the number of lines.
func (b *Basket) Len() int {
	return len(b.Lines)
}

// IsEmpty reports whether there is nothing to submit.
func (b *Basket) IsEmpty() bool {
	return len(b.Lines) == 0
}

// Total sums line subtotals; zero for an empty basket.
func (b *Basket) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range b.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Items returns a copy of the lines.
func (b *Basket) Items() []Line {
	out := make([]Line, len(b.Lines))
	copy(out, b.Lines)
	return out
}

// LineItems converts the draft into order rows.
func (b *Basket) LineItems() []model.LineItem {
	items := make([]model.LineItem, 0, len(b.Lines))
	for _, line := range b.Lines {
		items = append(items, model.NewLineItem(line.Item, line.UnitPrice, line.Quantity))
	}
	return items
}
