package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.CarrierRepository = (*CarrierRepo)(nil)

var carrierColumns = []string{"id", "name", "tax_id", "phone", "email", "address", "active", "created_at", "updated_at"}

// CarrierRepo transportadoras sobre PostgreSQL.
type CarrierRepo struct {
	q Querier
}

func NewCarrierRepository(q Querier) *CarrierRepo {
	return &CarrierRepo{q: q}
}

func (r *CarrierRepo) Create(ctx context.Context, c *entity.Carrier) error {
	return insert(ctx, r.q, "carriers", map[string]interface{}{
		"id":         c.ID,
		"name":       c.Name,
		"tax_id":     c.TaxID,
		"phone":      c.Phone,
		"email":      c.Email,
		"address":    c.Address,
		"active":     c.Active,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	})
}

func (r *CarrierRepo) GetByID(ctx context.Context, id string) (*entity.Carrier, error) {
	return getOne[entity.Carrier](ctx, r.q,
		psql.Select(carrierColumns...).From("carriers").Where(squirrel.Eq{"id": id}))
}

func (r *CarrierRepo) List(ctx context.Context) ([]*entity.Carrier, error) {
	return selectAll[entity.Carrier](ctx, r.q,
		psql.Select(carrierColumns...).From("carriers").OrderBy("name"))
}

func (r *CarrierRepo) Update(ctx context.Context, c *entity.Carrier) error {
	return updateByID(ctx, r.q, "carriers", c.ID, map[string]interface{}{
		"name":    c.Name,
		"tax_id":  c.TaxID,
		"phone":   c.Phone,
		"email":   c.Email,
		"address": c.Address,
		"active":  c.Active,
	})
}

func (r *CarrierRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "carriers", id)
}
