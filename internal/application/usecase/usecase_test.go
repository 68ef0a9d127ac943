package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

const categoryID = "3e2d1c0b-9a8f-4e7d-8c6b-5a4f3e2d1c0b"

type memProducts struct{ rows map[string]entity.Product }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.rows[p.ID] = *p
	return nil
}
func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (m *memProducts) GetView(ctx context.Context, id string) (*entity.ProductView, error) {
	p, err := m.GetByID(ctx, id)
	if p == nil || err != nil {
		return nil, err
	}
	return &entity.ProductView{Product: *p, CategoryName: "Embalagens"}, nil
}
func (m *memProducts) List(context.Context) ([]*entity.ProductView, error) { return nil, nil }
func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	cur, ok := m.rows[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	p.OnHandQuantity = cur.OnHandQuantity
	m.rows[p.ID] = *p
	return nil
}
func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

func TestProduct_CreateDefaultsYUpdateParcial(t *testing.T) {
	ctx := context.Background()
	repo := &memProducts{rows: map[string]entity.Product{}}
	uc := NewProductUseCase(repo)

	cat := categoryID
	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: " Caixa 40x40 ", CategoryID: &cat, OnHandQuantity: 10, SalePrice: 1250})
	require.NoError(t, err)
	assert.Equal(t, "Caixa 40x40", created.Name)
	assert.Equal(t, entity.DefaultUnit, created.Unit)
	assert.True(t, created.Active)
	assert.Equal(t, int64(10), created.OnHandQuantity)

	empty := ""
	price := int64(1500)
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{CategoryID: &empty, SalePrice: &price})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)
	assert.Equal(t, int64(1500), updated.SalePrice)
	assert.Equal(t, int64(10), updated.OnHandQuantity)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Embalagens", got.CategoryName)

	_, err = uc.GetByID(ctx, "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProduct_CreateRechazaNegativos(t *testing.T) {
	uc := NewProductUseCase(&memProducts{rows: map[string]entity.Product{}})
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "X", OnHandQuantity: -1})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "on_hand_quantity")
}

type memCustomers struct{ rows map[string]entity.Customer }

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	m.rows[c.ID] = *c
	return nil
}
func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
func (m *memCustomers) List(context.Context) ([]*entity.Customer, error) { return nil, nil }
func (m *memCustomers) Update(_ context.Context, c *entity.Customer) error {
	m.rows[c.ID] = *c
	return nil
}
func (m *memCustomers) Delete(context.Context, string) error { return nil }

func TestCustomer_DisplayNameYDefaults(t *testing.T) {
	ctx := context.Background()
	uc := NewCustomerUseCase(&memCustomers{rows: map[string]entity.Customer{}})

	c, err := uc.Create(ctx, dto.CreateCustomerRequest{TradeName: "Mercado Bom Preço", State: "sp"})
	require.NoError(t, err)
	assert.Equal(t, "Mercado Bom Preço", c.DisplayName)
	assert.Equal(t, entity.CustomerKindIndividual, c.Kind)
	assert.Equal(t, entity.PotentialMedium, c.Potential)
	assert.Equal(t, "SP", c.State)

	anon, err := uc.Create(ctx, dto.CreateCustomerRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.UnknownCustomerName, anon.DisplayName)

	legal := "Mercado Bom Preço Ltda"
	name := "Carlos"
	up, err := uc.Update(ctx, c.ID, dto.UpdateCustomerRequest{LegalName: &legal, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Carlos", up.DisplayName)
}

type memUsers struct {
	rows map[string]entity.User
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
func (m *memUsers) GetByOpenID(context.Context, string) (*entity.User, error) { return nil, nil }
func (m *memUsers) List(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.rows))
	for _, u := range m.rows {
		u := u
		out = append(out, &u)
	}
	return out, nil
}
func (m *memUsers) Upsert(_ context.Context, u *entity.User) (*entity.User, error) {
	m.rows[u.ID] = *u
	return u, nil
}
func (m *memUsers) UpdateRole(_ context.Context, id, role string) error {
	u, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Role = role
	m.rows[id] = u
	return nil
}

func TestUser_UpdateRoleSoloAdmin(t *testing.T) {
	ctx := context.Background()
	repo := &memUsers{rows: map[string]entity.User{"u1": {ID: "u1", Role: entity.RoleUser}}}
	uc := NewUserUseCase(repo)

	err := uc.UpdateRole(ctx, entity.RoleDispatcher, "u1", dto.UpdateRoleRequest{Role: entity.RoleAdmin})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.Equal(t, entity.RoleUser, repo.rows["u1"].Role)

	err = uc.UpdateRole(ctx, entity.RoleAdmin, "u1", dto.UpdateRoleRequest{Role: "superuser"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	err = uc.UpdateRole(ctx, entity.RoleAdmin, "ghost", dto.UpdateRoleRequest{Role: entity.RoleViewer})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, uc.UpdateRole(ctx, entity.RoleAdmin, "u1", dto.UpdateRoleRequest{Role: entity.RoleDispatcher}))
	assert.Equal(t, entity.RoleDispatcher, repo.rows["u1"].Role)

	me, err := uc.Me(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDispatcher, me.Role)
}

type memPayables struct{ rows map[string]entity.Payable }

func (m *memPayables) Create(_ context.Context, p *entity.Payable) error {
	m.rows[p.ID] = *p
	return nil
}
func (m *memPayables) GetByID(_ context.Context, id string) (*entity.Payable, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (m *memPayables) GetView(ctx context.Context, id string) (*entity.PayableView, error) {
	p, err := m.GetByID(ctx, id)
	if p == nil || err != nil {
		return nil, err
	}
	return &entity.PayableView{Payable: *p}, nil
}
func (m *memPayables) List(context.Context) ([]*entity.PayableView, error) { return nil, nil }
func (m *memPayables) Update(_ context.Context, p *entity.Payable) error {
	m.rows[p.ID] = *p
	return nil
}
func (m *memPayables) Delete(context.Context, string) error { return nil }

func TestPayable_VencidaYPagada(t *testing.T) {
	ctx := context.Background()
	uc := NewPayableUseCase(&memPayables{rows: map[string]entity.Payable{}})
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	p, err := uc.Create(ctx, "user-1", dto.CreatePayableRequest{
		Description: "Frete abril",
		Amount:      150000,
		DueDate:     now.AddDate(0, 0, -2),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOpen, p.Status)
	assert.True(t, p.Overdue)
	assert.Equal(t, "user-1", p.UserID)

	paid := entity.StatusPaid
	up, err := uc.Update(ctx, p.ID, dto.UpdatePayableRequest{Status: &paid})
	require.NoError(t, err)
	assert.False(t, up.Overdue)
	require.NotNil(t, up.PaidAt)
	assert.Equal(t, now, *up.PaidAt)
}

func TestPayable_SinVencimientoEsValidacion(t *testing.T) {
	uc := NewPayableUseCase(&memPayables{rows: map[string]entity.Payable{}})
	_, err := uc.Create(context.Background(), "u", dto.CreatePayableRequest{Description: "x", Amount: 1})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "due_date")
}
