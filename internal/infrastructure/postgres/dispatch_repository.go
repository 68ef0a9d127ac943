package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.DispatchRepository = (*DispatchRepo)(nil)

var dispatchColumns = []string{
	"id", "customer_id", "product_id", "quantity", "tracking_code", "carrier_id", "status",
	"note", "user_id", "dispatched_at", "delivered_at", "created_at", "updated_at",
}

// DispatchRepo despachos sobre PostgreSQL.
type DispatchRepo struct {
	q Querier
}

// NewDispatchRepository construye el repositorio. Pasar pool o tx (Querier).
func NewDispatchRepository(q Querier) *DispatchRepo {
	return &DispatchRepo{q: q}
}

func (r *DispatchRepo) Create(ctx context.Context, d *entity.Dispatch) error {
	return insert(ctx, r.q, "dispatches", map[string]interface{}{
		"id":            d.ID,
		"customer_id":   d.CustomerID,
		"product_id":    d.ProductID,
		"quantity":      d.Quantity,
		"tracking_code": d.TrackingCode,
		"carrier_id":    d.CarrierID,
		"status":        d.Status,
		"note":          d.Note,
		"user_id":       d.UserID,
		"dispatched_at": d.DispatchedAt,
		"delivered_at":  d.DeliveredAt,
		"created_at":    d.CreatedAt,
		"updated_at":    d.UpdatedAt,
	})
}

func (r *DispatchRepo) GetByID(ctx context.Context, id string) (*entity.Dispatch, error) {
	return getOne[entity.Dispatch](ctx, r.q,
		psql.Select(dispatchColumns...).From("dispatches").Where(squirrel.Eq{"id": id}))
}

// GetForUpdate lee el despacho bloqueando la fila hasta el fin de la transacción.
func (r *DispatchRepo) GetForUpdate(ctx context.Context, id string) (*entity.Dispatch, error) {
	return getOne[entity.Dispatch](ctx, r.q,
		psql.Select(dispatchColumns...).From("dispatches").Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func dispatchViewQuery() squirrel.SelectBuilder {
	cols := prefixed("d", dispatchColumns)
	cols = append(cols, customerRefColumns("c")...)
	cols = append(cols,
		"COALESCE(p.name, '') AS product_name",
		"COALESCE(p.sku, '') AS product_sku",
		"COALESCE(t.name, '') AS carrier_name",
		"COALESCE(u.name, '') AS user_name",
	)
	return psql.Select(cols...).
		From("dispatches d").
		LeftJoin("customers c ON c.id = d.customer_id").
		LeftJoin("products p ON p.id = d.product_id").
		LeftJoin("carriers t ON t.id = d.carrier_id").
		LeftJoin("users u ON u.id = d.user_id")
}

func (r *DispatchRepo) GetView(ctx context.Context, id string) (*entity.DispatchView, error) {
	return getOne[entity.DispatchView](ctx, r.q, dispatchViewQuery().Where(squirrel.Eq{"d.id": id}))
}

// GetByTrackingCode despacho más reciente con ese código de rastreo.
func (r *DispatchRepo) GetByTrackingCode(ctx context.Context, code string) (*entity.DispatchView, error) {
	return getOne[entity.DispatchView](ctx, r.q,
		dispatchViewQuery().Where(squirrel.Eq{"d.tracking_code": code}).OrderBy("d.created_at DESC").Limit(1))
}

func dispatchListQuery(f repository.DispatchFilter) squirrel.SelectBuilder {
	b := dispatchViewQuery()
	if f.Status != "" {
		b = b.Where(squirrel.Eq{"d.status": f.Status})
	}
	if f.CustomerID != "" {
		b = b.Where(squirrel.Eq{"d.customer_id": f.CustomerID})
	}
	if f.CarrierID != "" {
		b = b.Where(squirrel.Eq{"d.carrier_id": f.CarrierID})
	}
	return b.OrderBy("d.created_at DESC")
}

// List despachos más recientes primero.
func (r *DispatchRepo) List(ctx context.Context, f repository.DispatchFilter) ([]*entity.DispatchView, error) {
	return selectAll[entity.DispatchView](ctx, r.q, dispatchListQuery(f))
}

// Update actualiza los campos logísticos. Mercadería y cantidad no cambian después de crear.
func (r *DispatchRepo) Update(ctx context.Context, d *entity.Dispatch) error {
	return updateByID(ctx, r.q, "dispatches", d.ID, map[string]interface{}{
		"customer_id":   d.CustomerID,
		"tracking_code": d.TrackingCode,
		"carrier_id":    d.CarrierID,
		"status":        d.Status,
		"note":          d.Note,
		"dispatched_at": d.DispatchedAt,
		"delivered_at":  d.DeliveredAt,
	})
}

// Delete borra solo la fila del despacho; el libro de movimientos no se toca.
func (r *DispatchRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "dispatches", id)
}
