package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodstall/internal/server/http/dto"
)

// MenuHandler serves the catalog.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// Get handles GET /api/menu.
func (h *MenuHandler) Get(c *gin.Context) {
	resp := dto.MenuResponse{
		Categories:     []dto.MenuCategoryResponse{},
		PaymentMethods: h.facade.PaymentMethods(),
	}

	index := make(map[string]int)
	for _, item := range h.facade.MenuItems() {
		category := string(item.Category)
		pos, ok := index[category]
		if !ok {
			pos = len(resp.Categories)
			index[category] = pos
			resp.Categories = append(resp.Categories, dto.MenuCategoryResponse{Category: category})
		}
		resp.Categories[pos].Items = append(resp.Categories[pos].Items, dto.MenuItemResponse{
			Name:  item.Name,
			Price: item.Price.StringFixed(2),
		})
	}

	c.JSON(http.StatusOK, resp)
}
