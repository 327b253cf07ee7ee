package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto (admin).
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Category      string           `json:"category" validate:"required"`
	EcoRating     int              `json:"eco_rating" validate:"omitempty,min=1,max=5"`
	Description   string           `json:"description"`
	Features      []string         `json:"features"`
	Images        []string         `json:"images"`
	Tags          []string         `json:"tags"`
	StockCount    *int             `json:"stock_count"`
}

// UpdateProductRequest entrada para actualizar un producto (admin).
// Campos puntero: solo se aplica lo que viene presente (patch explícito).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Category      *string          `json:"category"`
	EcoRating     *int             `json:"eco_rating" validate:"omitempty,min=1,max=5"`
	Description   *string          `json:"description"`
	Features      []string         `json:"features"`
	Images        []string         `json:"images"`
	Tags          []string         `json:"tags"`
	InStock       *bool            `json:"in_stock"`
	StockCount    *int             `json:"stock_count"`
}

// ProductFilter parámetros de búsqueda del catálogo.
type ProductFilter struct {
	Search    string           `query:"search"`
	Category  string           `query:"category"`
	MinPrice  *decimal.Decimal `query:"min_price"`
	MaxPrice  *decimal.Decimal `query:"max_price"`
	MinEco    int              `query:"min_eco"`
	MaxEco    int              `query:"max_eco"`
	SortBy    string           `query:"sort"` // name | price-asc | price-desc | eco-rating
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Category      string           `json:"category"`
	EcoRating     int              `json:"eco_rating"`
	Description   string           `json:"description"`
	Features      []string         `json:"features,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	InStock       bool             `json:"in_stock"`
	StockCount    *int             `json:"stock_count,omitempty"`
	CreatedAt     string           `json:"created_at,omitempty"`
}

// ProductListResponse lista de productos del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
