package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.OpportunityRepository = (*OpportunityRepo)(nil)

var opportunityColumns = []string{
	"id", "customer_id", "title", "description", "estimated_value", "status", "probability",
	"expected_close_at", "closed_at", "user_id", "created_at", "updated_at",
}

// OpportunityRepo oportunidades sobre PostgreSQL.
type OpportunityRepo struct {
	q Querier
}

func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

func (r *OpportunityRepo) Create(ctx context.Context, o *entity.Opportunity) error {
	return insert(ctx, r.q, "opportunities", map[string]interface{}{
		"id":                o.ID,
		"customer_id":       o.CustomerID,
		"title":             o.Title,
		"description":       o.Description,
		"estimated_value":   o.EstimatedValue,
		"status":            o.Status,
		"probability":       o.Probability,
		"expected_close_at": o.ExpectedCloseAt,
		"closed_at":         o.ClosedAt,
		"user_id":           o.UserID,
		"created_at":        o.CreatedAt,
		"updated_at":        o.UpdatedAt,
	})
}

func (r *OpportunityRepo) GetByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	return getOne[entity.Opportunity](ctx, r.q,
		psql.Select(opportunityColumns...).From("opportunities").Where(squirrel.Eq{"id": id}))
}

func opportunityViewQuery() squirrel.SelectBuilder {
	cols := prefixed("o", opportunityColumns)
	cols = append(cols, customerRefColumns("c")...)
	cols = append(cols, "COALESCE(u.name, '') AS user_name")
	return psql.Select(cols...).
		From("opportunities o").
		LeftJoin("customers c ON c.id = o.customer_id").
		LeftJoin("users u ON u.id = o.user_id")
}

func (r *OpportunityRepo) GetView(ctx context.Context, id string) (*entity.OpportunityView, error) {
	return getOne[entity.OpportunityView](ctx, r.q, opportunityViewQuery().Where(squirrel.Eq{"o.id": id}))
}

// List oportunidades más recientes primero.
func (r *OpportunityRepo) List(ctx context.Context) ([]*entity.OpportunityView, error) {
	return selectAll[entity.OpportunityView](ctx, r.q, opportunityViewQuery().OrderBy("o.created_at DESC"))
}

func (r *OpportunityRepo) Update(ctx context.Context, o *entity.Opportunity) error {
	return updateByID(ctx, r.q, "opportunities", o.ID, map[string]interface{}{
		"customer_id":       o.CustomerID,
		"title":             o.Title,
		"description":       o.Description,
		"estimated_value":   o.EstimatedValue,
		"status":            o.Status,
		"probability":       o.Probability,
		"expected_close_at": o.ExpectedCloseAt,
		"closed_at":         o.ClosedAt,
	})
}

func (r *OpportunityRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "opportunities", id)
}
