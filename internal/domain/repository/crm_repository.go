package repository

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
}

// OpportunityRepository puerto de persistencia para oportunidades.
type OpportunityRepository interface {
	Create(ctx context.Context, o *entity.Opportunity) error
	GetByID(ctx context.Context, id string) (*entity.Opportunity, error)
	GetView(ctx context.Context, id string) (*entity.OpportunityView, error)
	List(ctx context.Context) ([]*entity.OpportunityView, error)
	Update(ctx context.Context, o *entity.Opportunity) error
	Delete(ctx context.Context, id string) error
}

// SalesOrderRepository puerto de persistencia para pedidos de venta y sus ítems.
type SalesOrderRepository interface {
	Create(ctx context.Context, o *entity.SalesOrder) error
	GetByID(ctx context.Context, id string) (*entity.SalesOrder, error)
	GetView(ctx context.Context, id string) (*entity.SalesOrderView, error)
	List(ctx context.Context) ([]*entity.SalesOrderView, error)
	Update(ctx context.Context, o *entity.SalesOrder) error
	Delete(ctx context.Context, id string) error

	CreateItems(ctx context.Context, items []entity.SalesOrderItem) error
	ListItems(ctx context.Context, orderID string) ([]*entity.SalesOrderItemView, error)
	DeleteItems(ctx context.Context, orderID string) error
}
