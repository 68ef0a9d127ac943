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

// OpportunityUseCase embudo de ventas.
type OpportunityUseCase struct {
	repo repository.OpportunityRepository
}

// NewOpportunityUseCase construye el caso de uso.
func NewOpportunityUseCase(repo repository.OpportunityRepository) *OpportunityUseCase {
	return &OpportunityUseCase{repo: repo}
}

// Create registra la oportunidad con el actor como responsable.
func (uc *OpportunityUseCase) Create(ctx context.Context, userID string, in dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	o := &entity.Opportunity{
		ID:              uuid.New().String(),
		CustomerID:      in.CustomerID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		EstimatedValue:  in.EstimatedValue,
		Status:          in.Status,
		Probability:     in.Probability,
		ExpectedCloseAt: in.ExpectedCloseAt,
		UserID:          userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if o.Status == "" {
		o.Status = entity.OpportunityProspecting
	}
	if o.IsClosed() {
		o.ClosedAt = &now
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return toOpportunityResponse(&entity.OpportunityView{Opportunity: *o}), nil
}

func (uc *OpportunityUseCase) GetByID(ctx context.Context, id string) (*dto.OpportunityResponse, error) {
	v, err := found(uc.repo.GetView(ctx, id))
	if err != nil {
		return nil, err
	}
	return toOpportunityResponse(v), nil
}

// List oportunidades más recientes primero.
func (uc *OpportunityUseCase) List(ctx context.Context) ([]dto.OpportunityResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpportunityResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toOpportunityResponse(v))
	}
	return out, nil
}

// Update al pasar a won/lost sin closed_at se sella con la hora actual.
func (uc *OpportunityUseCase) Update(ctx context.Context, id string, in dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	o, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	if in.CustomerID != nil {
		o.CustomerID = *in.CustomerID
	}
	setString(&o.Title, in.Title)
	setString(&o.Description, in.Description)
	setString(&o.Status, in.Status)
	if in.EstimatedValue != nil {
		o.EstimatedValue = *in.EstimatedValue
	}
	if in.Probability != nil {
		o.Probability = *in.Probability
	}
	if in.ExpectedCloseAt != nil {
		o.ExpectedCloseAt = in.ExpectedCloseAt
	}
	if in.ClosedAt != nil {
		o.ClosedAt = in.ClosedAt
	}
	now := time.Now()
	if o.IsClosed() && o.ClosedAt == nil {
		o.ClosedAt = &now
	}
	o.UpdatedAt = now
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOpportunityResponse(&entity.OpportunityView{Opportunity: *o}), nil
}

func (uc *OpportunityUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toOpportunityResponse(v *entity.OpportunityView) *dto.OpportunityResponse {
	return &dto.OpportunityResponse{
		ID:              v.ID,
		CustomerID:      v.CustomerID,
		CustomerName:    v.CustomerDisplayName(),
		Title:           v.Title,
		Description:     v.Description,
		EstimatedValue:  v.EstimatedValue,
		Status:          v.Status,
		Probability:     v.Probability,
		ExpectedCloseAt: v.ExpectedCloseAt,
		ClosedAt:        v.ClosedAt,
		UserID:          v.UserID,
		UserName:        v.UserName,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
