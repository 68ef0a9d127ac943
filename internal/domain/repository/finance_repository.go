package repository

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

// AccountRepository plan de cuentas.
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, a *entity.Account) error
	Delete(ctx context.Context, id string) error
}

// PayableRepository cuentas por pagar.
type PayableRepository interface {
	Create(ctx context.Context, p *entity.Payable) error
	GetByID(ctx context.Context, id string) (*entity.Payable, error)
	GetView(ctx context.Context, id string) (*entity.PayableView, error)
	List(ctx context.Context) ([]*entity.PayableView, error)
	Update(ctx context.Context, p *entity.Payable) error
	Delete(ctx context.Context, id string) error
}

// ReceivableRepository cuentas por cobrar.
type ReceivableRepository interface {
	Create(ctx context.Context, r *entity.Receivable) error
	GetByID(ctx context.Context, id string) (*entity.Receivable, error)
	GetView(ctx context.Context, id string) (*entity.ReceivableView, error)
	List(ctx context.Context) ([]*entity.ReceivableView, error)
	Update(ctx context.Context, r *entity.Receivable) error
	Delete(ctx context.Context, id string) error
}
