package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/despachosys-api/internal/application/inventory"
	"github.com/jhoicas/despachosys-api/internal/application/sales"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ sales.TxRunner     = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn y hace Commit; cualquier error provoca Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapError(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapError(err))
	}
	return nil
}

// RunStock ejecuta fn con los repos de existencia, movimientos y despachos atados a la tx.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	dispatchRepo repository.DispatchRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewStockRepository(tx), NewStockMovementRepository(tx), NewDispatchRepository(tx))
	})
}

// RunSales ejecuta fn con el repo de pedidos (cabecera + ítems) atado a la tx.
func (r *TxRunner) RunSales(ctx context.Context, fn func(orderRepo repository.SalesOrderRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewSalesOrderRepository(tx))
	})
}
