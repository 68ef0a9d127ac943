package usecase

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/validation"
	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List usuarios más recientes primero.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUserResponse(u))
	}
	return out, nil
}

// Me devuelve el usuario del token.
func (uc *UserUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := found(uc.repo.GetByID(ctx, userID))
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// UpdateRole cambia el rol de targetID. Solo un actor admin puede hacerlo.
func (uc *UserUseCase) UpdateRole(ctx context.Context, actorRole, targetID string, in dto.UpdateRoleRequest) error {
	if actorRole != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := validation.Struct(in); err != nil {
		return err
	}
	if _, err := found(uc.repo.GetByID(ctx, targetID)); err != nil {
		return err
	}
	return uc.repo.UpdateRole(ctx, targetID, in.Role)
}

// ToUserResponse mapea la entidad a su salida HTTP.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		OpenID:         u.OpenID,
		Name:           u.Name,
		Email:          u.Email,
		LoginMethod:    u.LoginMethod,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		LastSignedInAt: u.LastSignedInAt,
	}
}
