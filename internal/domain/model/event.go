package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderEventType names a lifecycle notification.
type OrderEventType string

const (
	OrderEventSubmitted     OrderEventType = "order.submitted"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventPaid          OrderEventType = "order.paid"
)

// OrderEvent is published to notifiers after a successful write.
type OrderEvent struct {
	Type          OrderEventType   `json:"type"`
	OrderID       string           `json:"order_id"`
	DineOption    DineOption       `json:"dine_option,omitempty"`
	Status        OrderStatus      `json:"status,omitempty"`
	PaymentStatus PaymentStatus    `json:"payment_status,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
