// Package sales contiene los casos de uso de pedidos de venta.
package sales

import (
	"context"
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

// OrderUseCase pedidos de venta con sus líneas.
// Los totales siempre se recalculan en el servidor; el cliente no los envía.
type OrderUseCase struct {
	txRunner  TxRunner
	orders    repository.SalesOrderRepository
	generator OrderPDFGenerator
	log       *logger.Logger
	metrics   Metrics
}

// NewOrderUseCase construye el caso de uso. generator y metrics pueden ser nil.
func NewOrderUseCase(
	txRunner TxRunner,
	orders repository.SalesOrderRepository,
	generator OrderPDFGenerator,
	log *logger.Logger,
	metrics Metrics,
) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &OrderUseCase{
		txRunner:  txRunner,
		orders:    orders,
		generator: generator,
		log:       log.Named("sales"),
		metrics:   metrics,
	}
}

// Create inserta la cabecera y todas las líneas en una transacción. Devuelve el id.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateSalesOrderRequest) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}
	now := time.Now()
	o := &entity.SalesOrder{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Number:     strings.TrimSpace(in.Number),
		Status:     in.Status,
		Discount:   in.Discount,
		Note:       strings.TrimSpace(in.Note),
		UserID:     userID,
		IssuedAt:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if o.Status == "" {
		o.Status = entity.OrderDraft
	}
	if in.IssuedAt != nil {
		o.IssuedAt = *in.IssuedAt
	}
	if o.Status == entity.OrderApproved {
		o.ApprovedAt = &now
	}
	o.Items = buildItems(o.ID, in.Items, now)
	if err := o.Recalculate(); err != nil {
		return "", domain.NewValidationError("total", err.Error())
	}

	err := uc.txRunner.RunSales(ctx, func(orderRepo repository.SalesOrderRepository) error {
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}
		return orderRepo.CreateItems(ctx, o.Items)
	})
	if err != nil {
		return "", fmt.Errorf("crear pedido: %w", err)
	}

	uc.metrics.OrderSaved("create")
	uc.log.Info().
		Str("order_id", o.ID).
		Str("number", o.Number).
		Int("items", len(o.Items)).
		Int64("total", o.Total).
		Msg("pedido creado")
	return o.ID, nil
}

// Update aplica cambios parciales a la cabecera. Si in.Items no es nil reemplaza todas
// las líneas; en ambos casos el total se recalcula sobre las líneas vigentes.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateSalesOrderRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if in.Items != nil && len(in.Items) == 0 {
		return domain.NewValidationError("items", "debe tener al menos 1 elemento(s)")
	}
	replace := in.Items != nil
	err := uc.txRunner.RunSales(ctx, func(orderRepo repository.SalesOrderRepository) error {
		o, err := orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		applyOrderUpdate(o, in, now)

		if replace {
			o.Items = buildItems(o.ID, in.Items, now)
		} else {
			current, err := orderRepo.ListItems(ctx, o.ID)
			if err != nil {
				return err
			}
			o.Items = make([]entity.SalesOrderItem, 0, len(current))
			for _, it := range current {
				o.Items = append(o.Items, it.SalesOrderItem)
			}
		}
		if err := o.Recalculate(); err != nil {
			return domain.NewValidationError("total", err.Error())
		}

		if replace {
			if err := orderRepo.DeleteItems(ctx, o.ID); err != nil {
				return err
			}
			if err := orderRepo.CreateItems(ctx, o.Items); err != nil {
				return err
			}
		}
		return orderRepo.Update(ctx, o)
	})
	if err != nil {
		return fmt.Errorf("actualizar pedido: %w", err)
	}
	uc.metrics.OrderSaved("update")
	uc.log.Info().Str("order_id", id).Bool("items_replaced", replace).Msg("pedido actualizado")
	return nil
}

func applyOrderUpdate(o *entity.SalesOrder, in dto.UpdateSalesOrderRequest, now time.Time) {
	if in.CustomerID != nil {
		o.CustomerID = *in.CustomerID
	}
	if in.Number != nil {
		o.Number = strings.TrimSpace(*in.Number)
	}
	if in.Discount != nil {
		o.Discount = *in.Discount
	}
	if in.Note != nil {
		o.Note = strings.TrimSpace(*in.Note)
	}
	if in.IssuedAt != nil {
		o.IssuedAt = *in.IssuedAt
	}
	if in.Status != nil {
		o.Status = *in.Status
		if o.Status == entity.OrderApproved && o.ApprovedAt == nil {
			o.ApprovedAt = &now
		}
	}
}

// buildItems arma las líneas con ids nuevos. created_at crece en el orden recibido
// para que ListItems las devuelva en el mismo orden.
func buildItems(orderID string, in []dto.OrderItemRequest, now time.Time) []entity.SalesOrderItem {
	items := make([]entity.SalesOrderItem, 0, len(in))
	for i, it := range in {
		items = append(items, entity.SalesOrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	return items
}

// Delete borra líneas y cabecera en una transacción.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	err := uc.txRunner.RunSales(ctx, func(orderRepo repository.SalesOrderRepository) error {
		if err := orderRepo.DeleteItems(ctx, id); err != nil {
			return err
		}
		return orderRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("eliminar pedido: %w", err)
	}
	uc.metrics.OrderSaved("delete")
	return nil
}

// Get cabecera con sus líneas.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.SalesOrderResponse, error) {
	v, items, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(v)
	out.Items = make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Total:       it.Total,
		})
	}
	return &out, nil
}

func (uc *OrderUseCase) load(ctx context.Context, id string) (*entity.SalesOrderView, []*entity.SalesOrderItemView, error) {
	v, err := uc.orders.GetView(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if v == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.orders.ListItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return v, items, nil
}

// List pedidos más recientes primero (sin líneas).
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.SalesOrderResponse, error) {
	list, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesOrderResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toOrderResponse(v))
	}
	return out, nil
}

// PDF genera el pedido imprimible. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *OrderUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", domain.ErrNotSupported
	}
	v, items, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.generator.GenerateOrderPDF(v, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar pedido %s: %w", v.Number, err)
	}
	return b, fmt.Sprintf("pedido-%s.pdf", fileSafe(v.Number)), nil
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}

func toOrderResponse(v *entity.SalesOrderView) dto.SalesOrderResponse {
	return dto.SalesOrderResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		CustomerName: v.CustomerDisplayName(),
		Number:       v.Number,
		Status:       v.Status,
		Total:        v.Total,
		Discount:     v.Discount,
		Note:         v.Note,
		UserID:       v.UserID,
		UserName:     v.UserName,
		IssuedAt:     v.IssuedAt,
		ApprovedAt:   v.ApprovedAt,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
