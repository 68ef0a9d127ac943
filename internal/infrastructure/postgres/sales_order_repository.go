package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

var (
	orderColumns = []string{
		"id", "customer_id", "number", "status", "total", "discount", "note", "user_id",
		"issued_at", "approved_at", "created_at", "updated_at",
	}
	orderItemColumns = []string{
		"id", "order_id", "product_id", "quantity", "unit_price", "discount", "total", "created_at",
	}
)

// SalesOrderRepo pedidos de venta (cabecera + ítems) sobre PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el repositorio. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// Create inserta solo la cabecera; los ítems van con CreateItems en la misma tx.
func (r *SalesOrderRepo) Create(ctx context.Context, o *entity.SalesOrder) error {
	return insert(ctx, r.q, "sales_orders", map[string]interface{}{
		"id":          o.ID,
		"customer_id": o.CustomerID,
		"number":      o.Number,
		"status":      o.Status,
		"total":       o.Total,
		"discount":    o.Discount,
		"note":        o.Note,
		"user_id":     o.UserID,
		"issued_at":   o.IssuedAt,
		"approved_at": o.ApprovedAt,
		"created_at":  o.CreatedAt,
		"updated_at":  o.UpdatedAt,
	})
}

func (r *SalesOrderRepo) GetByID(ctx context.Context, id string) (*entity.SalesOrder, error) {
	return getOne[entity.SalesOrder](ctx, r.q,
		psql.Select(orderColumns...).From("sales_orders").Where(squirrel.Eq{"id": id}))
}

func orderViewQuery() squirrel.SelectBuilder {
	cols := prefixed("o", orderColumns)
	cols = append(cols, customerRefColumns("c")...)
	cols = append(cols, "COALESCE(u.name, '') AS user_name")
	return psql.Select(cols...).
		From("sales_orders o").
		LeftJoin("customers c ON c.id = o.customer_id").
		LeftJoin("users u ON u.id = o.user_id")
}

func (r *SalesOrderRepo) GetView(ctx context.Context, id string) (*entity.SalesOrderView, error) {
	return getOne[entity.SalesOrderView](ctx, r.q, orderViewQuery().Where(squirrel.Eq{"o.id": id}))
}

// List pedidos más recientes primero.
func (r *SalesOrderRepo) List(ctx context.Context) ([]*entity.SalesOrderView, error) {
	return selectAll[entity.SalesOrderView](ctx, r.q, orderViewQuery().OrderBy("o.created_at DESC"))
}

func (r *SalesOrderRepo) Update(ctx context.Context, o *entity.SalesOrder) error {
	return updateByID(ctx, r.q, "sales_orders", o.ID, map[string]interface{}{
		"customer_id": o.CustomerID,
		"number":      o.Number,
		"status":      o.Status,
		"total":       o.Total,
		"discount":    o.Discount,
		"note":        o.Note,
		"issued_at":   o.IssuedAt,
		"approved_at": o.ApprovedAt,
	})
}

// Delete borra la cabecera. Los ítems deben borrarse antes con DeleteItems.
func (r *SalesOrderRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "sales_orders", id)
}

func itemsInsertQuery(items []entity.SalesOrderItem) squirrel.InsertBuilder {
	b := psql.Insert("sales_order_items").Columns(orderItemColumns...)
	for _, it := range items {
		b = b.Values(it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Discount, it.Total, it.CreatedAt)
	}
	return b
}

// CreateItems inserta todas las líneas en una única sentencia.
func (r *SalesOrderRepo) CreateItems(ctx context.Context, items []entity.SalesOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if _, err := exec(ctx, r.q, itemsInsertQuery(items)); err != nil {
		return fmt.Errorf("insert sales_order_items: %w", mapError(err))
	}
	return nil
}

// ListItems líneas del pedido con nombre de la mercadería, en orden de carga.
func (r *SalesOrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.SalesOrderItemView, error) {
	cols := append(prefixed("i", orderItemColumns),
		"COALESCE(p.name, '') AS product_name",
		"COALESCE(p.sku, '') AS product_sku",
	)
	return selectAll[entity.SalesOrderItemView](ctx, r.q,
		psql.Select(cols...).
			From("sales_order_items i").
			LeftJoin("products p ON p.id = i.product_id").
			Where(squirrel.Eq{"i.order_id": orderID}).
			OrderBy("i.created_at", "i.id"))
}

// DeleteItems borra todas las líneas del pedido.
func (r *SalesOrderRepo) DeleteItems(ctx context.Context, orderID string) error {
	if _, err := exec(ctx, r.q, psql.Delete("sales_order_items").Where(squirrel.Eq{"order_id": orderID})); err != nil {
		return fmt.Errorf("delete sales_order_items: %w", mapError(err))
	}
	return nil
}
