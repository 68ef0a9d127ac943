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

// ProductUseCase casos de uso CRUD para mercaderías. La existencia se maneja vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea una mercadería con su existencia inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		SKU:            strings.TrimSpace(in.SKU),
		Description:    strings.TrimSpace(in.Description),
		CostPrice:      in.CostPrice,
		SalePrice:      in.SalePrice,
		OnHandQuantity: in.OnHandQuantity,
		Unit:           strings.TrimSpace(in.Unit),
		Active:         boolOr(in.Active, true),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	setRef(&p.CategoryID, in.CategoryID)
	if p.Unit == "" {
		p.Unit = entity.DefaultUnit
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(&entity.ProductView{Product: *p}), nil
}

// GetByID obtiene una mercadería con el nombre de su categoría.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	v, err := found(uc.repo.GetView(ctx, id))
	if err != nil {
		return nil, err
	}
	return toProductResponse(v), nil
}

// Update actualiza una mercadería. No permite modificar la existencia.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	setString(&p.Name, in.Name)
	setString(&p.SKU, in.SKU)
	setRef(&p.CategoryID, in.CategoryID)
	setString(&p.Description, in.Description)
	setString(&p.Unit, in.Unit)
	if in.CostPrice != nil {
		p.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		p.SalePrice = *in.SalePrice
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(&entity.ProductView{Product: *p}), nil
}

// List mercaderías ordenadas por nombre, con el nombre de la categoría.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina una mercadería. domain.ErrConflict si tiene despachos o movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.ProductView) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		CategoryID:     p.CategoryID,
		CategoryName:   p.CategoryName,
		Description:    p.Description,
		CostPrice:      p.CostPrice,
		SalePrice:      p.SalePrice,
		OnHandQuantity: p.OnHandQuantity,
		Unit:           p.Unit,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
