package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodstall/internal/basket"
	"github.com/polkiloo/foodstall/internal/server/http/dto"
)

// BasketHandler manages the session basket.
type BasketHandler struct {
	facade BasketFacade
}

// NewBasketHandler constructs BasketHandler.
func NewBasketHandler(facade BasketFacade) *BasketHandler {
	return &BasketHandler{facade: facade}
}

// Get handles GET /api/basket.
func (h *BasketHandler) Get(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toBasketResponse(&sess.Basket))
}

// Add handles POST /api/basket/items.
func (h *BasketHandler) Add(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AddToBasket(c.Request.Context(), sess, req.Item, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBasketResponse(&sess.Basket))
}

// Remove handles DELETE /api/basket/items/:position.
func (h *BasketHandler) Remove(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemoveFromBasket(c.Request.Context(), sess, position); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBasketResponse(&sess.Basket))
}

// Clear handles DELETE /api/basket.
func (h *BasketHandler) Clear(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.facade.ClearBasket(c.Request.Context(), sess); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toBasketResponse(b *basket.Basket) dto.BasketResponse {
	resp := dto.BasketResponse{
		Lines: make([]dto.BasketLineResponse, 0, b.Len()),
		Total: b.Total().StringFixed(2),
	}
	for i, line := range b.Items() {
		resp.Lines = append(resp.Lines, dto.BasketLineResponse{
			Position:  i,
			Item:      line.Item,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return resp
}
