package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas agregadas del panel. Cada método es independiente
// y puede ejecutarse en paralelo.
type StatsRepository interface {
	CountActiveProducts(ctx context.Context) (int64, error)
	// SumOnHand suma de on_hand_quantity de todas las mercaderías (NUMERIC en PostgreSQL).
	SumOnHand(ctx context.Context) (decimal.Decimal, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountDispatches(ctx context.Context) (int64, error)
	CountSalesOrders(ctx context.Context) (int64, error)
	CountOpportunities(ctx context.Context) (int64, error)
	CountOverduePayables(ctx context.Context, now time.Time) (int64, error)
	CountOverdueReceivables(ctx context.Context, now time.Time) (int64, error)
}
