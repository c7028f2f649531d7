package dto

import "time"

// SubmitOrderRequest submits the session basket. All fields are optional.
type SubmitOrderRequest struct {
	Table      string `json:"table"`
	DineOption string `json:"dine_option"`
	OrderID    string `json:"order_id"`
}

// OrderItemResponse is a stored line item.
type OrderItemResponse struct {
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// OrderResponse represents an order. Items and Total are present only when
// the order was loaded with its lines.
type OrderResponse struct {
	OrderID       string              `json:"order_id"`
	DineOption    string              `json:"dine_option"`
	SubmittedAt   time.Time           `json:"submitted_at"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMethod *string             `json:"payment_method,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	Total         string              `json:"total,omitempty"`
}

// OutstandingResponse is an unpaid order with the amount due.
type OutstandingResponse struct {
	OrderID     string    `json:"order_id"`
	DineOption  string    `json:"dine_option"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
	AmountDue   string    `json:"amount_due"`
}
