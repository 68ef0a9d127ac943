package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/usecase"
	"github.com/jhoicas/despachosys-api/internal/application/validation"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
	"github.com/jhoicas/despachosys-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase emite tokens para identidades del proveedor externo.
// La API no maneja contraseñas: solo consume el token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// IssueToken registra (o actualiza) al usuario por open_id y firma un token con su rol.
// Si in.Role viene informado se fija ese rol; si no, se conserva el que tenga.
func (uc *AuthUseCase) IssueToken(ctx context.Context, in dto.IssueTokenRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	user, err := uc.userRepo.Upsert(ctx, &entity.User{
		ID:             uuid.New().String(),
		OpenID:         strings.TrimSpace(in.OpenID),
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		LoginMethod:    in.LoginMethod,
		Role:           entity.RoleUser,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastSignedInAt: &now,
	})
	if err != nil {
		return nil, err
	}
	if in.Role != "" && in.Role != user.Role {
		if err := uc.userRepo.UpdateRole(ctx, user.ID, in.Role); err != nil {
			return nil, err
		}
		user.Role = in.Role
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, User: usecase.ToUserResponse(user)}, nil
}
