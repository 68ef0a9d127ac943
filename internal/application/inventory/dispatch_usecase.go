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

// DispatchUseCase despachos de mercadería a clientes.
// Crear un despacho descuenta stock y registra la salida en el libro, todo en una transacción.
type DispatchUseCase struct {
	txRunner   TxRunner
	dispatches repository.DispatchRepository
	log        *logger.Logger
	metrics    Metrics
}

// NewDispatchUseCase construye el caso de uso. metrics puede ser nil.
func NewDispatchUseCase(
	txRunner TxRunner,
	dispatches repository.DispatchRepository,
	log *logger.Logger,
	metrics Metrics,
) *DispatchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DispatchUseCase{
		txRunner:   txRunner,
		dispatches: dispatches,
		log:        log.Named("dispatch"),
		metrics:    orNop(metrics),
	}
}

// Create descuenta la cantidad de la existencia, inserta el despacho y su movimiento de
// salida. Si el stock no alcanza devuelve domain.ErrInsufficientStock y no persiste nada.
func (uc *DispatchUseCase) Create(ctx context.Context, userID string, in dto.CreateDispatchRequest) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}
	now := time.Now()
	d := &entity.Dispatch{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		TrackingCode: strings.TrimSpace(in.TrackingCode),
		CarrierID:    in.CarrierID,
		Status:       in.Status,
		Note:         strings.TrimSpace(in.Note),
		UserID:       userID,
		DispatchedAt: now,
		DeliveredAt:  in.DeliveredAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if d.Status == "" {
		d.Status = entity.DispatchPending
	}
	if in.DispatchedAt != nil {
		d.DispatchedAt = *in.DispatchedAt
	}

	err := uc.txRunner.RunStock(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		dispatchRepo repository.DispatchRepository,
	) error {
		if _, err := stockRepo.Adjust(ctx, d.ProductID, -d.Quantity); err != nil {
			return err
		}
		if err := dispatchRepo.Create(ctx, d); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: d.ProductID,
			Direction: entity.DirectionOutbound,
			Quantity:  d.Quantity,
			Reason:    entity.ReasonDispatch,
			Note:      dispatchNote(d),
			UserID:    userID,
			CreatedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.metrics.StockRejected("dispatch")
			uc.log.Warn().Str("product_id", d.ProductID).Int64("quantity", d.Quantity).
				Msg("despacho rechazado por stock insuficiente")
		}
		return "", fmt.Errorf("crear despacho: %w", err)
	}

	uc.metrics.DispatchCreated()
	uc.log.Info().
		Str("dispatch_id", d.ID).
		Str("product_id", d.ProductID).
		Int64("quantity", d.Quantity).
		Str("user_id", userID).
		Msg("despacho creado")
	return d.ID, nil
}

// Update aplica cambios parciales. Mercadería y cantidad no se modifican después de crear.
// Pasar a cancelled devuelve la cantidad al stock con un movimiento de entrada en la misma
// transacción; un despacho cancelado no puede reactivarse.
func (uc *DispatchUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateDispatchRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	var restored int64
	err := uc.txRunner.RunStock(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		dispatchRepo repository.DispatchRepository,
	) error {
		d, err := dispatchRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if in.ProductID != nil && *in.ProductID != d.ProductID {
			return domain.NewValidationError("product_id", "la mercadería de un despacho no puede cambiarse")
		}
		if in.Quantity != nil && *in.Quantity != d.Quantity {
			return domain.NewValidationError("quantity", "la cantidad de un despacho no puede cambiarse")
		}

		wasCancelled := d.Status == entity.DispatchCancelled
		if err := applyDispatchUpdate(d, in); err != nil {
			return err
		}
		if wasCancelled && d.Status != entity.DispatchCancelled {
			return domain.NewValidationError("status", "un despacho cancelado no puede reactivarse")
		}

		if !wasCancelled && d.Status == entity.DispatchCancelled {
			if _, err := stockRepo.Adjust(ctx, d.ProductID, d.Quantity); err != nil {
				return err
			}
			if err := movRepo.Create(ctx, &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: d.ProductID,
				Direction: entity.DirectionInbound,
				Quantity:  d.Quantity,
				Reason:    entity.ReasonDispatchCancellation,
				Note:      dispatchNote(d),
				UserID:    userID,
				CreatedAt: time.Now(),
			}); err != nil {
				return err
			}
			restored = d.Quantity
		}
		return dispatchRepo.Update(ctx, d)
	})
	if err != nil {
		return fmt.Errorf("actualizar despacho: %w", err)
	}
	if restored > 0 {
		uc.metrics.MovementRegistered(entity.DirectionInbound)
		uc.log.Info().Str("dispatch_id", id).Int64("quantity", restored).Msg("despacho cancelado, stock devuelto")
	}
	return nil
}

func applyDispatchUpdate(d *entity.Dispatch, in dto.UpdateDispatchRequest) error {
	if in.CustomerID != nil {
		d.CustomerID = *in.CustomerID
	}
	if in.TrackingCode != nil {
		d.TrackingCode = strings.TrimSpace(*in.TrackingCode)
	}
	if in.CarrierID != nil {
		if *in.CarrierID == "" {
			d.CarrierID = nil
		} else {
			v := *in.CarrierID
			d.CarrierID = &v
		}
	}
	if in.Note != nil {
		d.Note = strings.TrimSpace(*in.Note)
	}
	if in.DispatchedAt != nil {
		d.DispatchedAt = *in.DispatchedAt
	}
	if in.DeliveredAt != nil {
		d.DeliveredAt = in.DeliveredAt
	}
	if in.Status != nil {
		if !entity.IsValidDispatchStatus(*in.Status) {
			return domain.NewValidationError("status", "estado desconocido")
		}
		d.Status = *in.Status
		if d.Status == entity.DispatchDelivered && d.DeliveredAt == nil {
			now := time.Now()
			d.DeliveredAt = &now
		}
	}
	return nil
}

// Delete borra el despacho. La existencia y el libro de movimientos no cambian.
func (uc *DispatchUseCase) Delete(ctx context.Context, id string) error {
	return uc.dispatches.Delete(ctx, id)
}

// Get despacho con nombres relacionados.
func (uc *DispatchUseCase) Get(ctx context.Context, id string) (*dto.DispatchResponse, error) {
	v, err := uc.dispatches.GetView(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	out := toDispatchResponse(v)
	return &out, nil
}

// List despachos más recientes primero, con filtros opcionales.
func (uc *DispatchUseCase) List(ctx context.Context, f dto.DispatchFilter) ([]dto.DispatchResponse, error) {
	if err := validation.Struct(f); err != nil {
		return nil, err
	}
	list, err := uc.dispatches.List(ctx, repository.DispatchFilter{
		Status:     f.Status,
		CustomerID: f.CustomerID,
		CarrierID:  f.CarrierID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.DispatchResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toDispatchResponse(v))
	}
	return out, nil
}

// Track consulta pública por código de rastreo.
func (uc *DispatchUseCase) Track(ctx context.Context, code string) (*dto.TrackingResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("tracking_code", "es obligatorio")
	}
	v, err := uc.dispatches.GetByTrackingCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TrackingResponse{
		TrackingCode: v.TrackingCode,
		CustomerName: v.CustomerDisplayName(),
		ProductName:  v.ProductName,
		Quantity:     v.Quantity,
		CarrierName:  v.CarrierName,
		Status:       v.Status,
		DispatchedAt: v.DispatchedAt,
		DeliveredAt:  v.DeliveredAt,
	}, nil
}

func dispatchNote(d *entity.Dispatch) string {
	if d.TrackingCode != "" {
		return "despacho " + d.ID + " (" + d.TrackingCode + ")"
	}
	return "despacho " + d.ID
}

func toDispatchResponse(v *entity.DispatchView) dto.DispatchResponse {
	return dto.DispatchResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		CustomerName: v.CustomerDisplayName(),
		ProductID:    v.ProductID,
		ProductName:  v.ProductName,
		ProductSKU:   v.ProductSKU,
		Quantity:     v.Quantity,
		TrackingCode: v.TrackingCode,
		CarrierID:    v.CarrierID,
		CarrierName:  v.CarrierName,
		Status:       v.Status,
		Note:         v.Note,
		UserID:       v.UserID,
		UserName:     v.UserName,
		DispatchedAt: v.DispatchedAt,
		DeliveredAt:  v.DeliveredAt,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
