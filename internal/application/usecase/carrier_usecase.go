package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/validation"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

// CarrierUseCase CRUD de transportadoras.
type CarrierUseCase struct {
	repo repository.CarrierRepository
}

// NewCarrierUseCase construye el caso de uso.
func NewCarrierUseCase(repo repository.CarrierRepository) *CarrierUseCase {
	return &CarrierUseCase{repo: repo}
}

func (uc *CarrierUseCase) Create(ctx context.Context, in dto.CreateCarrierRequest) (*dto.CarrierResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Carrier{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		TaxID:     strings.TrimSpace(in.TaxID),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		Active:    boolOr(in.Active, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCarrierResponse(c), nil
}

func (uc *CarrierUseCase) GetByID(ctx context.Context, id string) (*dto.CarrierResponse, error) {
	c, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toCarrierResponse(c), nil
}

func (uc *CarrierUseCase) List(ctx context.Context) ([]dto.CarrierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CarrierResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCarrierResponse(c))
	}
	return out, nil
}

func (uc *CarrierUseCase) Update(ctx context.Context, id string, in dto.UpdateCarrierRequest) (*dto.CarrierResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	setString(&c.Name, in.Name)
	setString(&c.TaxID, in.TaxID)
	setString(&c.Phone, in.Phone)
	setString(&c.Email, in.Email)
	setString(&c.Address, in.Address)
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCarrierResponse(c), nil
}

// Delete los despachos de la transportadora quedan sin transportadora.
func (uc *CarrierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCarrierResponse(c *entity.Carrier) *dto.CarrierResponse {
	return &dto.CarrierResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
