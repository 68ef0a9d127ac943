package repository

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByOpenID(ctx context.Context, openID string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Upsert crea el usuario o actualiza nombre, email, método de login y último acceso
	// si ya existe uno con el mismo open_id. El rol existente no se pisa.
	Upsert(ctx context.Context, u *entity.User) (*entity.User, error)
	UpdateRole(ctx context.Context, id, role string) error
}
