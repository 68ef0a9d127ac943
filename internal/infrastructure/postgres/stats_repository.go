package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas del panel. Se usa con el pool: cada método toma su
// propia conexión, sin transacción entre entidades.
type StatsRepo struct {
	q Querier
}

func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

func countQuery(table string) squirrel.SelectBuilder {
	return psql.Select("COUNT(*)").From(table)
}

func overdueQuery(table string, now time.Time) squirrel.SelectBuilder {
	return countQuery(table).
		Where(squirrel.Eq{"status": entity.StatusOpen}).
		Where(squirrel.LtOrEq{"due_date": now})
}

func (r *StatsRepo) count(ctx context.Context, name string, b squirrel.SelectBuilder) (int64, error) {
	var n int64
	if err := scalar(ctx, r.q, b, &n); err != nil {
		return 0, fmt.Errorf("stats %s: %w", name, err)
	}
	return n, nil
}

// CountActiveProducts solo mercaderías activas.
func (r *StatsRepo) CountActiveProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, "products", countQuery("products").Where(squirrel.Eq{"active": true}))
}

// SumOnHand SUM(bigint) devuelve NUMERIC; se escanea a decimal vía pgx-shopspring-decimal.
func (r *StatsRepo) SumOnHand(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := scalar(ctx, r.q, psql.Select("COALESCE(SUM(on_hand_quantity), 0)").From("products"), &total); err != nil {
		return decimal.Zero, fmt.Errorf("stats on_hand: %w", err)
	}
	return total, nil
}

func (r *StatsRepo) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, "customers", countQuery("customers"))
}

func (r *StatsRepo) CountDispatches(ctx context.Context) (int64, error) {
	return r.count(ctx, "dispatches", countQuery("dispatches"))
}

func (r *StatsRepo) CountSalesOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, "sales_orders", countQuery("sales_orders"))
}

func (r *StatsRepo) CountOpportunities(ctx context.Context) (int64, error) {
	return r.count(ctx, "opportunities", countQuery("opportunities"))
}

// CountOverduePayables cuentas por pagar abiertas con vencimiento <= now.
func (r *StatsRepo) CountOverduePayables(ctx context.Context, now time.Time) (int64, error) {
	return r.count(ctx, "payables", overdueQuery("payables", now))
}

// CountOverdueReceivables cuentas por cobrar abiertas con vencimiento <= now.
func (r *StatsRepo) CountOverdueReceivables(ctx context.Context, now time.Time) (int64, error) {
	return r.count(ctx, "receivables", overdueQuery("receivables", now))
}
