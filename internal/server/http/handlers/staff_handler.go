package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodstall/internal/server/http/dto"
	"github.com/polkiloo/foodstall/internal/server/http/middleware"
)

// StaffHandler serves the kitchen and cashier endpoints.
type StaffHandler struct {
	facade StaffFacade
}

// NewStaffHandler constructs StaffHandler.
func NewStaffHandler(facade StaffFacade) *StaffHandler {
	return &StaffHandler{facade: facade}
}

// Login handles POST /api/staff/login.
func (h *StaffHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Login(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Orders handles GET /api/staff/orders.
func (h *StaffHandler) Orders(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), c.Query("payment"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Order handles GET /api/staff/orders/:id.
func (h *StaffHandler) Order(c *gin.Context) {
	order, err := h.facade.OrderDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Payments handles GET /api/staff/payments.
func (h *StaffHandler) Payments(c *gin.Context) {
	orders, err := h.facade.Outstanding(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OutstandingResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.OutstandingResponse{
			OrderID:     o.ID,
			DineOption:  string(o.DineOption),
			SubmittedAt: o.SubmittedAt,
			Status:      string(o.Status),
			AmountDue:   o.Total().StringFixed(2),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/staff/orders/:id/status.
func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	orderID := c.Param("id")
	status, err := h.facade.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{OrderID: orderID, Status: string(status)})
}

// RecordPayment handles PATCH /api/staff/orders/:id/payment.
func (h *StaffHandler) RecordPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RecordPayment(c.Request.Context(), c.Param("id"), req.Method); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
