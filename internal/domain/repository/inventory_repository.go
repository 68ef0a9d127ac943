package repository

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

// StockRepository ajusta la existencia física de una mercadería.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Adjust suma delta (positivo o negativo) a on_hand_quantity en una única escritura
	// condicional: la fila solo cambia si el resultado es >= 0. Devuelve la nueva
	// existencia, domain.ErrNotFound si la mercadería no existe o
	// domain.ErrInsufficientStock si el resultado sería negativo.
	Adjust(ctx context.Context, productID string, delta int64) (int64, error)
}

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID string
	Direction string
}

// StockMovementRepository libro de movimientos: solo inserción y lectura.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	List(ctx context.Context, f MovementFilter) ([]*entity.StockMovementView, error)
}

// DispatchFilter filtros opcionales para listar despachos.
type DispatchFilter struct {
	Status     string
	CustomerID string
	CarrierID  string
}

// DispatchRepository puerto de persistencia para despachos.
type DispatchRepository interface {
	Create(ctx context.Context, d *entity.Dispatch) error
	GetByID(ctx context.Context, id string) (*entity.Dispatch, error)
	// GetForUpdate como GetByID pero bloquea la fila (solo dentro de una transacción).
	GetForUpdate(ctx context.Context, id string) (*entity.Dispatch, error)
	GetView(ctx context.Context, id string) (*entity.DispatchView, error)
	GetByTrackingCode(ctx context.Context, code string) (*entity.DispatchView, error)
	List(ctx context.Context, f DispatchFilter) ([]*entity.DispatchView, error)
	Update(ctx context.Context, d *entity.Dispatch) error
	Delete(ctx context.Context, id string) error
}
