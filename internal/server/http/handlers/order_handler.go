package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodstall/internal/domain/model"
	"github.com/polkiloo/foodstall/internal/server/http/dto"
)

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/orders. An empty body submits with defaults.
func (h *OrderHandler) Submit(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), sess, req.Table, req.DineOption, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Current handles GET /api/session/order.
func (h *OrderHandler) Current(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	order, err := h.facade.SessionOrder(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		OrderID:       order.ID,
		DineOption:    string(order.DineOption),
		SubmittedAt:   order.SubmittedAt,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		PaymentMethod: order.PaymentMethod,
	}
	if len(order.Items) == 0 {
		return resp
	}

	resp.Items = make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			Item:      item.Item,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal.StringFixed(2),
		})
	}
	resp.Total = order.Total().StringFixed(2)
	return resp
}
