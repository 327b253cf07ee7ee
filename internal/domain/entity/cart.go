package entity

// CartLine línea del carrito de una identidad. Guarda solo la referencia al
// producto; el precio se consulta en vivo al calcular totales.
// Invariante: dentro de un carrito no hay dos líneas con el mismo ProductID
// y Quantity es siempre >= 1.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
