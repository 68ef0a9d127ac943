package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// TotalOnHand viene de un SUM en PostgreSQL (NUMERIC), por eso es decimal.
type DashboardStatsDTO struct {
	ActiveProducts     int64           `json:"active_products"`
	TotalOnHand        decimal.Decimal `json:"total_on_hand"`
	Customers          int64           `json:"customers"`
	Dispatches         int64           `json:"dispatches"`
	SalesOrders        int64           `json:"sales_orders"`
	Opportunities      int64           `json:"opportunities"`
	OverduePayables    int64           `json:"overdue_payables"`
	OverdueReceivables int64           `json:"overdue_receivables"`
	GeneratedAt        time.Time       `json:"generated_at"`
}
