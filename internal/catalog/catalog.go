package catalog

import "fishparque/internal/domain"

// Catalog is the static product list, keyed by stable product identifiers that
// cart line items reference. It is built once at startup and never mutated.
type Catalog map[string]domain.Product

func New() Catalog {
	return Catalog{
		"fish_feed": {Name: "Fish Feed", MinQty: 10, Price: 500, Unit: "kg"},
		"catfish":   {Name: "Catfish", MinQty: 1, Price: 1500, Unit: "kg"},
		"materials": {Name: "Materials", MinQty: 50, Price: 300, Unit: "kg"},
	}
}
