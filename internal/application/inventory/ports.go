package inventory

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback ante cualquier error.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		dispatchRepo repository.DispatchRepository,
	) error) error
}

// Metrics contadores de negocio del motor de inventario.
type Metrics interface {
	DispatchCreated()
	MovementRegistered(direction string)
	StockRejected(operation string)
}

type nopMetrics struct{}

func (nopMetrics) DispatchCreated()          {}
func (nopMetrics) MovementRegistered(string) {}
func (nopMetrics) StockRejected(string)      {}

func orNop(m Metrics) Metrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
