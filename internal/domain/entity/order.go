package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecoshop/ecoshop-api/internal/domain"
)

// Estados válidos de una orden. Solo un admin puede transicionar el estado
// después de la creación; el resto de la orden es inmutable.
const (
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatus reporta si s es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CustomerInfo datos del comprador capturados en el checkout.
type CustomerInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
}

// OrderItem línea de una orden. PriceAtPurchase congela el precio al momento
// de la compra; el carrito, en cambio, siempre consulta el precio vigente.
type OrderItem struct {
	ProductID       string          `json:"productId"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

// Order orden creada en el checkout (write-once salvo Status).
type Order struct {
	ID           string          `json:"id"`
	CustomerInfo CustomerInfo    `json:"customerInfo"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"` // Σ quantity × priceAtPurchase, sin impuestos
	Status       string          `json:"status"`
	Date         string          `json:"date"` // RFC3339
}

// Subtotal recalcula el total desde las líneas.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.PriceAtPurchase.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Validate verifica los campos obligatorios antes de persistir.
func (o *Order) Validate() error {
	if o.CustomerInfo.Email == "" {
		return fmt.Errorf("%w: customerInfo.email es requerido", domain.ErrValidation)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: la orden no tiene líneas", domain.ErrValidation)
	}
	if !ValidOrderStatus(o.Status) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidStatus, o.Status)
	}
	return nil
}
