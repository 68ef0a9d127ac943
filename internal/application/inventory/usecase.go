package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/validation"
	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
	"github.com/jhoicas/despachosys-api/pkg/logger"
)

// MsgMovementsImmutable respuesta fija del borrado de movimientos.
const MsgMovementsImmutable = "movimientos no pueden eliminarse"

// MovementUseCase registra entradas y salidas manuales de stock.
// Cada registro ajusta la existencia y agrega una fila al libro en la misma transacción.
type MovementUseCase struct {
	txRunner  TxRunner
	movements repository.StockMovementRepository
	log       *logger.Logger
	metrics   Metrics
}

// NewMovementUseCase construye el caso de uso. metrics puede ser nil.
func NewMovementUseCase(
	txRunner TxRunner,
	movements repository.StockMovementRepository,
	log *logger.Logger,
	metrics Metrics,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		log:       log.Named("stock"),
		metrics:   orNop(metrics),
	}
}

// Register aplica el delta con signo sobre la existencia (condicional: nunca queda negativa)
// e inserta el movimiento. Devuelve el id del movimiento.
func (uc *MovementUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovementRequest) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Direction: in.Direction,
		Quantity:  in.Quantity,
		Reason:    strings.TrimSpace(in.Reason),
		Note:      strings.TrimSpace(in.Note),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	var onHand int64
	err := uc.txRunner.RunStock(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		_ repository.DispatchRepository,
	) error {
		n, err := stockRepo.Adjust(ctx, mov.ProductID, entity.SignedDelta(mov.Direction, mov.Quantity))
		if err != nil {
			return err
		}
		onHand = n
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.metrics.StockRejected("movement")
			uc.log.Warn().Str("product_id", mov.ProductID).Int64("quantity", mov.Quantity).
				Msg("salida rechazada por stock insuficiente")
		}
		return "", fmt.Errorf("registrar movimiento: %w", err)
	}

	uc.metrics.MovementRegistered(mov.Direction)
	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("product_id", mov.ProductID).
		Str("direction", mov.Direction).
		Int64("quantity", mov.Quantity).
		Int64("on_hand", onHand).
		Msg("movimiento registrado")
	return mov.ID, nil
}

// List movimientos más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context, f dto.MovementFilter) ([]dto.MovementResponse, error) {
	if err := validation.Struct(f); err != nil {
		return nil, err
	}
	list, err := uc.movements.List(ctx, repository.MovementFilter{ProductID: f.ProductID, Direction: f.Direction})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// Delete el libro es de solo inserción: nunca borra y lo informa sin error.
func (uc *MovementUseCase) Delete(_ context.Context, _ string) dto.MutationResponse {
	return dto.MutationResponse{Success: false, Message: MsgMovementsImmutable}
}

func toMovementResponse(m *entity.StockMovementView) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		ProductSKU:  m.ProductSKU,
		Direction:   m.Direction,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		Note:        m.Note,
		UserID:      m.UserID,
		UserName:    m.UserName,
		CreatedAt:   m.CreatedAt,
	}
}
