package domain

// Product is a static catalog entry. The catalog is fixed at process start;
// nothing mutates products at runtime.
type Product struct {
	Name   string  `json:"name"`
	MinQty float64 `json:"minQty"`
	Price  int     `json:"price"`
	Unit   string  `json:"unit"`
}
