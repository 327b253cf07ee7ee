// Package analytics contiene el agregador de estadísticas del back-office.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
)

// DashboardUseCase calcula los rollups del dashboard admin: conteos de las
// tres colecciones y la suma de ingresos.
//
// Función pura sobre los snapshots actuales de los repositorios; se
// recalcula en cada petición, sin caché (las colecciones son chicas).
type DashboardUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{users: users, products: products, orders: orders}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las tres lecturas van en paralelo; son read-only y el store las serializa.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type usersResult struct {
		list []*entity.User
		err  error
	}
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type ordersResult struct {
		list []*entity.Order
		err  error
	}

	usersCh := make(chan usersResult, 1)
	productsCh := make(chan productsResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		list, err := uc.users.List(ctx)
		usersCh <- usersResult{list, err}
	}()
	go func() {
		list, err := uc.products.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.orders.List(ctx)
		ordersCh <- ordersResult{list, err}
	}()

	users := <-usersCh
	products := <-productsCh
	orders := <-ordersCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuarios: %w", users.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes: %w", orders.err)
	}

	revenue := decimal.Zero
	for _, o := range orders.list {
		revenue = revenue.Add(o.Total)
	}

	return &dto.DashboardSummaryDTO{
		TotalUsers:    len(users.list),
		TotalProducts: len(products.list),
		TotalOrders:   len(orders.list),
		TotalRevenue:  revenue.Round(2),
	}, nil
}
