package dto

// LoginRequest carries the shared staff password.
type LoginRequest struct {
	Password string `json:"password"`
}

// StatusRequest sets the kitchen status of an order.
type StatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse echoes the stored status.
type StatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// PaymentRequest records payment of an order.
type PaymentRequest struct {
	Method string `json:"method"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
