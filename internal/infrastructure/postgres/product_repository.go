package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productColumns = []string{
	"id", "name", "sku", "category_id", "description", "cost_price", "sale_price",
	"on_hand_quantity", "unit", "active", "created_at", "updated_at",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para mercaderías.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste una mercadería con su existencia inicial.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return insert(ctx, r.q, "products", map[string]interface{}{
		"id":               p.ID,
		"name":             p.Name,
		"sku":              p.SKU,
		"category_id":      p.CategoryID,
		"description":      p.Description,
		"cost_price":       p.CostPrice,
		"sale_price":       p.SalePrice,
		"on_hand_quantity": p.OnHandQuantity,
		"unit":             p.Unit,
		"active":           p.Active,
		"created_at":       p.CreatedAt,
		"updated_at":       p.UpdatedAt,
	})
}

// GetByID obtiene una mercadería por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return getOne[entity.Product](ctx, r.q,
		psql.Select(productColumns...).From("products").Where(squirrel.Eq{"id": id}))
}

func (r *ProductRepo) viewQuery() squirrel.SelectBuilder {
	cols := append(prefixed("p", productColumns), "COALESCE(c.name, '') AS category_name")
	return psql.Select(cols...).
		From("products p").
		LeftJoin("categories c ON c.id = p.category_id")
}

// GetView mercadería con el nombre de su categoría.
func (r *ProductRepo) GetView(ctx context.Context, id string) (*entity.ProductView, error) {
	return getOne[entity.ProductView](ctx, r.q, r.viewQuery().Where(squirrel.Eq{"p.id": id}))
}

// List mercaderías ordenadas por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.ProductView, error) {
	return selectAll[entity.ProductView](ctx, r.q, r.viewQuery().OrderBy("p.name"))
}

// Update actualiza los datos de catálogo. No toca on_hand_quantity (se maneja vía movimientos).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return updateByID(ctx, r.q, "products", p.ID, map[string]interface{}{
		"name":        p.Name,
		"sku":         p.SKU,
		"category_id": p.CategoryID,
		"description": p.Description,
		"cost_price":  p.CostPrice,
		"sale_price":  p.SalePrice,
		"unit":        p.Unit,
		"active":      p.Active,
	})
}

// Delete elimina una mercadería por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "products", id)
}
