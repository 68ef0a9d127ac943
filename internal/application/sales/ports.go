package sales

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

// TxRunner ejecuta fn con el repositorio de pedidos atado a una transacción.
// Cabecera e ítems se escriben juntos o no se escriben.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(orderRepo repository.SalesOrderRepository) error) error
}

// OrderPDFGenerator genera la representación imprimible de un pedido.
type OrderPDFGenerator interface {
	GenerateOrderPDF(order *entity.SalesOrderView, items []*entity.SalesOrderItemView) ([]byte, error)
}

// Metrics contador de pedidos guardados por acción (create, update, delete).
type Metrics interface {
	OrderSaved(action string)
}

type nopMetrics struct{}

func (nopMetrics) OrderSaved(string) {}
