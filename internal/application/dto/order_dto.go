package dto

import "github.com/shopspring/decimal"

// CustomerInfoDTO datos del comprador en el checkout.
type CustomerInfoDTO struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
}

// CheckoutRequest entrada del checkout. Las líneas salen del carrito activo,
// no del request.
type CheckoutRequest struct {
	CustomerInfo CustomerInfoDTO `json:"customer_info"`
}

// UpdateOrderStatusRequest transición de estado (admin).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed processing shipped delivered cancelled"`
}

// OrderItemResponse línea de una orden.
type OrderItemResponse struct {
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

// OrderResponse salida de una orden. Tax y GrandTotal son derivados de
// presentación (8% sobre el subtotal); el registro persistido guarda solo
// el subtotal en Total.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerInfo CustomerInfoDTO     `json:"customer_info"`
	Items        []OrderItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	Tax          decimal.Decimal     `json:"tax"`
	GrandTotal   decimal.Decimal     `json:"grand_total"`
	Status       string              `json:"status"`
	Date         string              `json:"date"`
}

// OrderListResponse lista de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
