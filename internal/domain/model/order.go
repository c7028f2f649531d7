package model

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// DineOption tells whether the order is eaten at the stall or carried away.
type DineOption string

const (
	DineOptionDineIn   DineOption = "Dine-In"
	DineOptionTakeAway DineOption = "Take-Away"
)

// ParseDineOption accepts the canonical labels in any case or punctuation.
func ParseDineOption(raw string) (DineOption, bool) {
	switch normalize(raw) {
	case "DINEIN":
		return DineOptionDineIn, true
	case "TAKEAWAY":
		return DineOptionTakeAway, true
	}
	return "", false
}

// OrderStatus describes kitchen preparation progress.
type OrderStatus string

const (
	OrderStatusInKitchen OrderStatus = "IN_KITCHEN"
	OrderStatusInProcess OrderStatus = "IN_PROCESS"
	OrderStatusReady     OrderStatus = "READY"
)

var statusRank = map[OrderStatus]int{
	OrderStatusInKitchen: 0,
	OrderStatusInProcess: 1,
	OrderStatusReady:     2,
}

var statusAliases = map[string]OrderStatus{
	"NEW":             OrderStatusInKitchen,
	"INKITCHEN":       OrderStatusInKitchen,
	"DALAMDAPUR":      OrderStatusInKitchen,
	"INPROCESS":       OrderStatusInProcess,
	"DALAMPROSES":     OrderStatusInProcess,
	"READY":           OrderStatusReady,
	"SIAPDIHIDANGKAN": OrderStatusReady,
}

// ParseOrderStatus resolves a staff-supplied label. "NEW" is an alias of IN_KITCHEN.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status, ok := statusAliases[normalize(raw)]
	return status, ok
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo allows staying put or moving forward, never backwards.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// PaymentStatus is orthogonal to OrderStatus.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// LineItem is one row of a submitted order.
type LineItem struct {
	ID        int64
	OrderID   string
	Item      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Line limits. Prices and subtotals are stored with cent precision in
// NUMERIC(10,2) columns.
const (
	MaxQuantity    = 999
	amountDecimals = 2
)

// MaxAmount is the largest price or subtotal the order store can hold.
var MaxAmount = decimal.RequireFromString("99999999.99")

// ValidAmount reports whether d is a non-negative cent amount within MaxAmount.
func ValidAmount(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThan(MaxAmount) {
		return false
	}
	return d.Equal(d.Round(amountDecimals))
}

// NewLineItem captures the price at add time and derives the subtotal.
func NewLineItem(item string, unitPrice decimal.Decimal, quantity int) LineItem {
	return LineItem{
		Item:      item,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Order is the durable record created at submission.
type Order struct {
	ID            string
	DineOption    DineOption
	SubmittedAt   time.Time
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod *string
	Items         []LineItem
}

// Total sums the stored subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// IsPaid reports whether payment has been recorded.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

func normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
