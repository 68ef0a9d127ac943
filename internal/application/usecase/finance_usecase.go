package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/validation"
	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

// AccountUseCase plan de cuentas.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	a := &entity.Account{
		ID:        uuid.New().String(),
		Code:      strings.TrimSpace(in.Code),
		Name:      strings.TrimSpace(in.Name),
		Kind:      in.Kind,
		Active:    boolOr(in.Active, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	setRef(&a.ParentID, in.ParentID)
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

func (uc *AccountUseCase) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	a, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// List cuentas ordenadas por código.
func (uc *AccountUseCase) List(ctx context.Context) ([]dto.AccountResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	a, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	setString(&a.Code, in.Code)
	setString(&a.Name, in.Name)
	setString(&a.Kind, in.Kind)
	setRef(&a.ParentID, in.ParentID)
	if a.ParentID != nil && *a.ParentID == a.ID {
		return nil, domain.NewValidationError("parent_id", "una cuenta no puede ser su propia cuenta padre")
	}
	if in.Active != nil {
		a.Active = *in.Active
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Kind:      a.Kind,
		ParentID:  a.ParentID,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// PayableUseCase cuentas por pagar.
type PayableUseCase struct {
	repo repository.PayableRepository
	now  func() time.Time
}

// NewPayableUseCase construye el caso de uso.
func NewPayableUseCase(repo repository.PayableRepository) *PayableUseCase {
	return &PayableUseCase{repo: repo, now: time.Now}
}

// Create registra la cuenta con el actor como responsable.
func (uc *PayableUseCase) Create(ctx context.Context, userID string, in dto.CreatePayableRequest) (*dto.PayableResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	p := &entity.Payable{
		ID:           uuid.New().String(),
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		DueDate:      in.DueDate,
		PaidAt:       in.PaidAt,
		Status:       in.Status,
		SupplierName: strings.TrimSpace(in.SupplierName),
		Note:         strings.TrimSpace(in.Note),
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	setRef(&p.AccountID, in.AccountID)
	if p.Status == "" {
		p.Status = entity.StatusOpen
	}
	if p.Status == entity.StatusPaid && p.PaidAt == nil {
		p.PaidAt = &now
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.toResponse(&entity.PayableView{Payable: *p}), nil
}

func (uc *PayableUseCase) GetByID(ctx context.Context, id string) (*dto.PayableResponse, error) {
	v, err := found(uc.repo.GetView(ctx, id))
	if err != nil {
		return nil, err
	}
	return uc.toResponse(v), nil
}

// List por vencimiento descendente.
func (uc *PayableUseCase) List(ctx context.Context) ([]dto.PayableResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayableResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *uc.toResponse(v))
	}
	return out, nil
}

func (uc *PayableUseCase) Update(ctx context.Context, id string, in dto.UpdatePayableRequest) (*dto.PayableResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	setString(&p.Description, in.Description)
	setString(&p.SupplierName, in.SupplierName)
	setString(&p.Note, in.Note)
	setString(&p.Status, in.Status)
	setRef(&p.AccountID, in.AccountID)
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if in.DueDate != nil {
		p.DueDate = *in.DueDate
	}
	if in.PaidAt != nil {
		p.PaidAt = in.PaidAt
	}
	now := uc.now()
	if p.Status == entity.StatusPaid && p.PaidAt == nil {
		p.PaidAt = &now
	}
	p.UpdatedAt = now
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.toResponse(&entity.PayableView{Payable: *p}), nil
}

func (uc *PayableUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *PayableUseCase) toResponse(v *entity.PayableView) *dto.PayableResponse {
	return &dto.PayableResponse{
		ID:           v.ID,
		Description:  v.Description,
		Amount:       v.Amount,
		DueDate:      v.DueDate,
		PaidAt:       v.PaidAt,
		Status:       v.Status,
		Overdue:      entity.IsOverdue(v.Status, v.DueDate, uc.now()),
		SupplierName: v.SupplierName,
		AccountID:    v.AccountID,
		AccountName:  v.AccountName,
		Note:         v.Note,
		UserID:       v.UserID,
		UserName:     v.UserName,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// ReceivableUseCase cuentas por cobrar.
type ReceivableUseCase struct {
	repo repository.ReceivableRepository
	now  func() time.Time
}

// NewReceivableUseCase construye el caso de uso.
func NewReceivableUseCase(repo repository.ReceivableRepository) *ReceivableUseCase {
	return &ReceivableUseCase{repo: repo, now: time.Now}
}

// Create registra la cuenta con el actor como responsable.
func (uc *ReceivableUseCase) Create(ctx context.Context, userID string, in dto.CreateReceivableRequest) (*dto.ReceivableResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	r := &entity.Receivable{
		ID:          uuid.New().String(),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		ReceivedAt:  in.ReceivedAt,
		Status:      in.Status,
		Note:        strings.TrimSpace(in.Note),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	setRef(&r.CustomerID, in.CustomerID)
	setRef(&r.AccountID, in.AccountID)
	if r.Status == "" {
		r.Status = entity.StatusOpen
	}
	if r.Status == entity.StatusReceived && r.ReceivedAt == nil {
		r.ReceivedAt = &now
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return uc.toResponse(&entity.ReceivableView{Receivable: *r}), nil
}

func (uc *ReceivableUseCase) GetByID(ctx context.Context, id string) (*dto.ReceivableResponse, error) {
	v, err := found(uc.repo.GetView(ctx, id))
	if err != nil {
		return nil, err
	}
	return uc.toResponse(v), nil
}

// List por vencimiento descendente.
func (uc *ReceivableUseCase) List(ctx context.Context) ([]dto.ReceivableResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceivableResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *uc.toResponse(v))
	}
	return out, nil
}

func (uc *ReceivableUseCase) Update(ctx context.Context, id string, in dto.UpdateReceivableRequest) (*dto.ReceivableResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	r, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	setString(&r.Description, in.Description)
	setString(&r.Note, in.Note)
	setString(&r.Status, in.Status)
	setRef(&r.CustomerID, in.CustomerID)
	setRef(&r.AccountID, in.AccountID)
	if in.Amount != nil {
		r.Amount = *in.Amount
	}
	if in.DueDate != nil {
		r.DueDate = *in.DueDate
	}
	if in.ReceivedAt != nil {
		r.ReceivedAt = in.ReceivedAt
	}
	now := uc.now()
	if r.Status == entity.StatusReceived && r.ReceivedAt == nil {
		r.ReceivedAt = &now
	}
	r.UpdatedAt = now
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return uc.toResponse(&entity.ReceivableView{Receivable: *r}), nil
}

func (uc *ReceivableUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ReceivableUseCase) toResponse(v *entity.ReceivableView) *dto.ReceivableResponse {
	out := &dto.ReceivableResponse{
		ID:          v.ID,
		Description: v.Description,
		Amount:      v.Amount,
		DueDate:     v.DueDate,
		ReceivedAt:  v.ReceivedAt,
		Status:      v.Status,
		Overdue:     entity.IsOverdue(v.Status, v.DueDate, uc.now()),
		CustomerID:  v.CustomerID,
		AccountID:   v.AccountID,
		AccountName: v.AccountName,
		Note:        v.Note,
		UserID:      v.UserID,
		UserName:    v.UserName,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if v.CustomerID != nil {
		out.CustomerName = v.CustomerDisplayName()
	}
	return out
}
