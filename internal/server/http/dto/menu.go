package dto

// MenuItemResponse is one priced menu entry. Prices are RM with two decimals.
type MenuItemResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// MenuCategoryResponse groups items of one category.
type MenuCategoryResponse struct {
	Category string             `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}

// MenuResponse describes the menu and accepted payment methods.
type MenuResponse struct {
	Categories     []MenuCategoryResponse `json:"categories"`
	PaymentMethods []string               `json:"payment_methods"`
}
