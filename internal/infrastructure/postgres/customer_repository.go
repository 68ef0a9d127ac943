package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

var customerColumns = []string{
	"id", "kind", "name", "legal_name", "trade_name", "tax_id", "email", "phone", "mobile",
	"address", "city", "state", "zip_code", "potential", "active", "note", "created_at", "updated_at",
}

// CustomerRepo clientes sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el repositorio. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func customerValues(c *entity.Customer) map[string]interface{} {
	return map[string]interface{}{
		"kind":       c.Kind,
		"name":       c.Name,
		"legal_name": c.LegalName,
		"trade_name": c.TradeName,
		"tax_id":     c.TaxID,
		"email":      c.Email,
		"phone":      c.Phone,
		"mobile":     c.Mobile,
		"address":    c.Address,
		"city":       c.City,
		"state":      c.State,
		"zip_code":   c.ZipCode,
		"potential":  c.Potential,
		"active":     c.Active,
		"note":       c.Note,
	}
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	values := customerValues(c)
	values["id"] = c.ID
	values["created_at"] = c.CreatedAt
	values["updated_at"] = c.UpdatedAt
	return insert(ctx, r.q, "customers", values)
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return getOne[entity.Customer](ctx, r.q,
		psql.Select(customerColumns...).From("customers").Where(squirrel.Eq{"id": id}))
}

// List clientes ordenados por el mismo criterio que el nombre a mostrar.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	return selectAll[entity.Customer](ctx, r.q,
		psql.Select(customerColumns...).From("customers").
			OrderBy("COALESCE(NULLIF(name, ''), NULLIF(legal_name, ''), NULLIF(trade_name, ''), '')"))
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	return updateByID(ctx, r.q, "customers", c.ID, customerValues(c))
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "customers", id)
}
