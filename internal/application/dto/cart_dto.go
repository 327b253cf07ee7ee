package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega (o acumula) una línea del carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"` // default 1
}

// SetCartQuantityRequest fija la cantidad de una línea; <= 0 la elimina.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito con el precio vigente del producto.
type CartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse estado completo del carrito de la identidad activa.
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}
