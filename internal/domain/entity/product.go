package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecoshop/ecoshop-api/internal/domain"
)

// Product representa un producto del catálogo.
// Los tags JSON definen el formato persistido en la colección ecoShopProducts
// (camelCase, heredado del formato original del store).
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"` // precio antes de descuento
	Category      string           `json:"category"`
	EcoRating     int              `json:"ecoRating"` // 1–5
	Description   string           `json:"description"`
	Features      []string         `json:"features,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	InStock       bool             `json:"inStock"`
	StockCount    *int             `json:"stockCount,omitempty"`
	CreatedAt     string           `json:"createdAt,omitempty"` // RFC3339
}

// Validate verifica los campos obligatorios antes de persistir.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: category es requerido", domain.ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	// ecoRating es opcional (0 = sin calificar); si viene, debe estar en rango.
	if p.EcoRating != 0 && (p.EcoRating < 1 || p.EcoRating > 5) {
		return fmt.Errorf("%w: ecoRating debe estar entre 1 y 5", domain.ErrValidation)
	}
	return nil
}
