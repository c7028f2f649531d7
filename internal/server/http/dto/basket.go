package dto

// AddItemRequest adds quantity of a menu item to the basket.
type AddItemRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// BasketLineResponse is one basket line with its position for removal.
type BasketLineResponse struct {
	Position  int    `json:"position"`
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// BasketResponse is the current draft order.
type BasketResponse struct {
	Lines []BasketLineResponse `json:"lines"`
	Total string               `json:"total"`
}
