package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/admin/dashboard/summary.
// Rollups derivados de los snapshots actuales de las tres colecciones;
// se recalculan en cada petición, sin caché.
type DashboardSummaryDTO struct {
	TotalUsers    int             `json:"total_users"`
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"` // Σ order.total
}
