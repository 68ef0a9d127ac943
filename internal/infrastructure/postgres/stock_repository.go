package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo ajusta products.on_hand_quantity con una escritura condicional.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el repositorio. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// adjustQuery UPDATE ... WHERE on_hand_quantity + delta >= 0 RETURNING on_hand_quantity.
// El UPDATE toma el lock de la fila y el WHERE se reevalúa sobre la versión más reciente,
// así dos decrementos concurrentes nunca dejan la existencia negativa.
func adjustQuery(productID string, delta int64) squirrel.UpdateBuilder {
	return psql.Update("products").
		Set("on_hand_quantity", squirrel.Expr("on_hand_quantity + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": productID}).
		Where("on_hand_quantity + ? >= 0", delta).
		Suffix("RETURNING on_hand_quantity")
}

// Adjust aplica delta a la existencia y devuelve el nuevo valor.
func (r *StockRepo) Adjust(ctx context.Context, productID string, delta int64) (int64, error) {
	query, args, err := adjustQuery(productID, delta).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var onHand int64
	err = r.q.QueryRow(ctx, query, args...).Scan(&onHand)
	if err == nil {
		return onHand, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("adjust stock: %w", mapError(err))
	}

	// Ninguna fila: o la mercadería no existe o la existencia no alcanza.
	var exists bool
	if err := scalar(ctx, r.q,
		psql.Select().Column("EXISTS (SELECT 1 FROM products WHERE id = ?)", productID),
		&exists); err != nil {
		return 0, fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return 0, domain.ErrNotFound
	}
	return 0, domain.ErrInsufficientStock
}
