package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var (
	_ repository.AccountRepository    = (*AccountRepo)(nil)
	_ repository.PayableRepository    = (*PayableRepo)(nil)
	_ repository.ReceivableRepository = (*ReceivableRepo)(nil)
)

var (
	accountColumns = []string{"id", "code", "name", "kind", "parent_id", "active", "created_at", "updated_at"}
	payableColumns = []string{
		"id", "description", "amount", "due_date", "paid_at", "status", "supplier_name",
		"account_id", "note", "user_id", "created_at", "updated_at",
	}
	receivableColumns = []string{
		"id", "description", "amount", "due_date", "received_at", "status", "customer_id",
		"account_id", "note", "user_id", "created_at", "updated_at",
	}
)

// AccountRepo plan de cuentas sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	return insert(ctx, r.q, "accounts", map[string]interface{}{
		"id":         a.ID,
		"code":       a.Code,
		"name":       a.Name,
		"kind":       a.Kind,
		"parent_id":  a.ParentID,
		"active":     a.Active,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	})
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return getOne[entity.Account](ctx, r.q,
		psql.Select(accountColumns...).From("accounts").Where(squirrel.Eq{"id": id}))
}

// List cuentas ordenadas por código.
func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	return selectAll[entity.Account](ctx, r.q,
		psql.Select(accountColumns...).From("accounts").OrderBy("code"))
}

func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	return updateByID(ctx, r.q, "accounts", a.ID, map[string]interface{}{
		"code":      a.Code,
		"name":      a.Name,
		"kind":      a.Kind,
		"parent_id": a.ParentID,
		"active":    a.Active,
	})
}

func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "accounts", id)
}

// PayableRepo cuentas por pagar sobre PostgreSQL.
type PayableRepo struct {
	q Querier
}

func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

func (r *PayableRepo) Create(ctx context.Context, p *entity.Payable) error {
	return insert(ctx, r.q, "payables", map[string]interface{}{
		"id":            p.ID,
		"description":   p.Description,
		"amount":        p.Amount,
		"due_date":      p.DueDate,
		"paid_at":       p.PaidAt,
		"status":        p.Status,
		"supplier_name": p.SupplierName,
		"account_id":    p.AccountID,
		"note":          p.Note,
		"user_id":       p.UserID,
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	})
}

func (r *PayableRepo) GetByID(ctx context.Context, id string) (*entity.Payable, error) {
	return getOne[entity.Payable](ctx, r.q,
		psql.Select(payableColumns...).From("payables").Where(squirrel.Eq{"id": id}))
}

func payableViewQuery() squirrel.SelectBuilder {
	cols := append(prefixed("p", payableColumns),
		"COALESCE(a.name, '') AS account_name",
		"COALESCE(u.name, '') AS user_name",
	)
	return psql.Select(cols...).
		From("payables p").
		LeftJoin("accounts a ON a.id = p.account_id").
		LeftJoin("users u ON u.id = p.user_id")
}

func (r *PayableRepo) GetView(ctx context.Context, id string) (*entity.PayableView, error) {
	return getOne[entity.PayableView](ctx, r.q, payableViewQuery().Where(squirrel.Eq{"p.id": id}))
}

// List cuentas por pagar por vencimiento descendente.
func (r *PayableRepo) List(ctx context.Context) ([]*entity.PayableView, error) {
	return selectAll[entity.PayableView](ctx, r.q, payableViewQuery().OrderBy("p.due_date DESC"))
}

func (r *PayableRepo) Update(ctx context.Context, p *entity.Payable) error {
	return updateByID(ctx, r.q, "payables", p.ID, map[string]interface{}{
		"description":   p.Description,
		"amount":        p.Amount,
		"due_date":      p.DueDate,
		"paid_at":       p.PaidAt,
		"status":        p.Status,
		"supplier_name": p.SupplierName,
		"account_id":    p.AccountID,
		"note":          p.Note,
	})
}

func (r *PayableRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "payables", id)
}

// ReceivableRepo cuentas por cobrar sobre PostgreSQL.
type ReceivableRepo struct {
	q Querier
}

func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

func (r *ReceivableRepo) Create(ctx context.Context, rc *entity.Receivable) error {
	return insert(ctx, r.q, "receivables", map[string]interface{}{
		"id":          rc.ID,
		"description": rc.Description,
		"amount":      rc.Amount,
		"due_date":    rc.DueDate,
		"received_at": rc.ReceivedAt,
		"status":      rc.Status,
		"customer_id": rc.CustomerID,
		"account_id":  rc.AccountID,
		"note":        rc.Note,
		"user_id":     rc.UserID,
		"created_at":  rc.CreatedAt,
		"updated_at":  rc.UpdatedAt,
	})
}

func (r *ReceivableRepo) GetByID(ctx context.Context, id string) (*entity.Receivable, error) {
	return getOne[entity.Receivable](ctx, r.q,
		psql.Select(receivableColumns...).From("receivables").Where(squirrel.Eq{"id": id}))
}

func receivableViewQuery() squirrel.SelectBuilder {
	cols := prefixed("r", receivableColumns)
	cols = append(cols, customerRefColumns("c")...)
	cols = append(cols,
		"COALESCE(a.name, '') AS account_name",
		"COALESCE(u.name, '') AS user_name",
	)
	return psql.Select(cols...).
		From("receivables r").
		LeftJoin("customers c ON c.id = r.customer_id").
		LeftJoin("accounts a ON a.id = r.account_id").
		LeftJoin("users u ON u.id = r.user_id")
}

func (r *ReceivableRepo) GetView(ctx context.Context, id string) (*entity.ReceivableView, error) {
	return getOne[entity.ReceivableView](ctx, r.q, receivableViewQuery().Where(squirrel.Eq{"r.id": id}))
}

// List cuentas por cobrar por vencimiento descendente.
func (r *ReceivableRepo) List(ctx context.Context) ([]*entity.ReceivableView, error) {
	return selectAll[entity.ReceivableView](ctx, r.q, receivableViewQuery().OrderBy("r.due_date DESC"))
}

func (r *ReceivableRepo) Update(ctx context.Context, rc *entity.Receivable) error {
	return updateByID(ctx, r.q, "receivables", rc.ID, map[string]interface{}{
		"description": rc.Description,
		"amount":      rc.Amount,
		"due_date":    rc.DueDate,
		"received_at": rc.ReceivedAt,
		"status":      rc.Status,
		"customer_id": rc.CustomerID,
		"account_id":  rc.AccountID,
		"note":        rc.Note,
	})
}

func (r *ReceivableRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "receivables", id)
}
