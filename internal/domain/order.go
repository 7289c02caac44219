package domain

import "strconv"

// Customer is a snapshot of the customer's details at order time, copied into
// the order rather than referencing the user record.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem is one cart line as submitted by the client. Price and Subtotal
// are taken verbatim from the request and not recomputed against the catalog.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type Order struct {
	OrderNumber string      `json:"orderNumber"`
	Date        string      `json:"date"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	Status      string      `json:"status"`
}

const (
	OrderStatusPending = "pending"
)

// FormatAmount renders a quantity or currency amount the way the storefront
// displays it: plain decimal, no trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
