package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

var movementColumns = []string{"id", "product_id", "direction", "quantity", "reason", "note", "user_id", "created_at"}

// StockMovementRepo libro de movimientos sobre PostgreSQL. No expone Update ni Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el repositorio. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega un movimiento al libro.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	return insert(ctx, r.q, "stock_movements", map[string]interface{}{
		"id":         m.ID,
		"product_id": m.ProductID,
		"direction":  m.Direction,
		"quantity":   m.Quantity,
		"reason":     m.Reason,
		"note":       m.Note,
		"user_id":    m.UserID,
		"created_at": m.CreatedAt,
	})
}

func movementListQuery(f repository.MovementFilter) squirrel.SelectBuilder {
	cols := append(prefixed("m", movementColumns),
		"COALESCE(p.name, '') AS product_name",
		"COALESCE(p.sku, '') AS product_sku",
		"COALESCE(u.name, '') AS user_name",
	)
	b := psql.Select(cols...).
		From("stock_movements m").
		LeftJoin("products p ON p.id = m.product_id").
		LeftJoin("users u ON u.id = m.user_id")
	if f.ProductID != "" {
		b = b.Where(squirrel.Eq{"m.product_id": f.ProductID})
	}
	if f.Direction != "" {
		b = b.Where(squirrel.Eq{"m.direction": f.Direction})
	}
	return b.OrderBy("m.created_at DESC")
}

// List movimientos más recientes primero, con producto y usuario.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovementView, error) {
	return selectAll[entity.StockMovementView](ctx, r.q, movementListQuery(f))
}
