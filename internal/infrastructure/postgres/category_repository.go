package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

var categoryColumns = []string{"id", "name", "description", "created_at", "updated_at"}

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el repositorio. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return insert(ctx, r.q, "categories", map[string]interface{}{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"created_at":  c.CreatedAt,
		"updated_at":  c.UpdatedAt,
	})
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return getOne[entity.Category](ctx, r.q,
		psql.Select(categoryColumns...).From("categories").Where(squirrel.Eq{"id": id}))
}

// List categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return selectAll[entity.Category](ctx, r.q,
		psql.Select(categoryColumns...).From("categories").OrderBy("name"))
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return updateByID(ctx, r.q, "categories", c.ID, map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
	})
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "categories", id)
}
