package dto

type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type PlaceOrderRequest struct {
	UserEmail   string     `json:"userEmail" validate:"required"`
	UserName    string     `json:"userName"`
	UserPhone   string     `json:"userPhone"`
	UserAddress string     `json:"userAddress"`
	Cart        []CartItem `json:"cart" validate:"required,min=1"`
	Total       float64    `json:"total"`
}

type PlaceOrderResult struct {
	OrderNumber string
	Message     string
}
