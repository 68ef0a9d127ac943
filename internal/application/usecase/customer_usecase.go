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

// CustomerUseCase CRUD de clientes. Toda respuesta incluye display_name.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Name:      strings.TrimSpace(in.Name),
		LegalName: strings.TrimSpace(in.LegalName),
		TradeName: strings.TrimSpace(in.TradeName),
		TaxID:     strings.TrimSpace(in.TaxID),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Mobile:    strings.TrimSpace(in.Mobile),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		State:     strings.ToUpper(strings.TrimSpace(in.State)),
		ZipCode:   strings.TrimSpace(in.ZipCode),
		Potential: in.Potential,
		Active:    boolOr(in.Active, true),
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.Kind == "" {
		c.Kind = entity.CustomerKindIndividual
	}
	if c.Potential == "" {
		c.Potential = entity.PotentialMedium
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List clientes ordenados por nombre a mostrar.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	setString(&c.Kind, in.Kind)
	setString(&c.Name, in.Name)
	setString(&c.LegalName, in.LegalName)
	setString(&c.TradeName, in.TradeName)
	setString(&c.TaxID, in.TaxID)
	setString(&c.Email, in.Email)
	setString(&c.Phone, in.Phone)
	setString(&c.Mobile, in.Mobile)
	setString(&c.Address, in.Address)
	setString(&c.City, in.City)
	setString(&c.State, in.State)
	c.State = strings.ToUpper(c.State)
	setString(&c.ZipCode, in.ZipCode)
	setString(&c.Potential, in.Potential)
	setString(&c.Note, in.Note)
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete domain.ErrConflict si el cliente tiene despachos, oportunidades o pedidos.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		DisplayName: c.DisplayName(),
		Kind:        c.Kind,
		Name:        c.Name,
		LegalName:   c.LegalName,
		TradeName:   c.TradeName,
		TaxID:       c.TaxID,
		Email:       c.Email,
		Phone:       c.Phone,
		Mobile:      c.Mobile,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		ZipCode:     c.ZipCode,
		Potential:   c.Potential,
		Active:      c.Active,
		Note:        c.Note,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
