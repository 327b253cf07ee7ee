// Package storage define el puerto del Record Store: un key-value namespaced
// donde cada clave guarda un arreglo JSON completo. Es el sistema de registro
// de toda la tienda; los repositorios de colecciones se montan encima.
package storage

import "context"

// Claves del namespace ecoShop. Cada una contiene un arreglo JSON.
const (
	KeyProducts   = "ecoShopProducts"
	KeyUsers      = "ecoShopUsers"
	KeyOrders     = "ecoShopOrders"
	cartKeyPrefix = "ecoShopCart_"
)

// CartKey devuelve la clave del carrito de una identidad.
func CartKey(identityID string) string {
	return cartKeyPrefix + identityID
}

// RecordStore es el contrato mínimo de persistencia.
//
// Semántica:
//   - Get devuelve (nil, nil) cuando la clave no existe.
//   - Set reemplaza el valor completo: last write wins, sin merge.
//   - Remove es idempotente.
//
// El store es single-writer en la práctica (un proceso); no ofrece tokens de
// concurrencia optimista. Si se reutiliza con escritores concurrentes hace
// falta una capa de arbitraje externa.
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
