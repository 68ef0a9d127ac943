package sales

import (
	"context"
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
	"github.com/jhoicas/despachosys-api/pkg/logger"
)

const (
	customerID = "5d1e3c7a-1f2b-4c3d-8e9f-a0b1c2d3e4f5"
	productA   = "0b7f6a52-55c8-4d0e-9d8e-0a4f3f1c2b10"
	productB   = "1c8a7b63-66d9-4e1f-8e9f-1b5a4a2d3c21"
	userID     = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

// memOrders repositorio de pedidos en memoria.
type memOrders struct {
	orders    map[string]entity.SalesOrder
	items     map[string][]entity.SalesOrderItem
	failItems error
}

func newMemOrders() *memOrders {
	return &memOrders{orders: map[string]entity.SalesOrder{}, items: map[string][]entity.SalesOrderItem{}}
}

var _ repository.SalesOrderRepository = (*memOrders)(nil)

func (m *memOrders) Create(_ context.Context, o *entity.SalesOrder) error {
	cp := *o
	cp.Items = nil
	m.orders[o.ID] = cp
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.SalesOrder, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *memOrders) GetView(_ context.Context, id string) (*entity.SalesOrderView, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &entity.SalesOrderView{SalesOrder: o, CustomerRef: entity.CustomerRef{CustomerTradeName: "Loja Azul"}}, nil
}

func (m *memOrders) List(_ context.Context) ([]*entity.SalesOrderView, error) {
	out := make([]*entity.SalesOrderView, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, &entity.SalesOrderView{SalesOrder: o})
	}
	return out, nil
}

func (m *memOrders) Update(_ context.Context, o *entity.SalesOrder) error {
	if _, ok := m.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	cp.Items = nil
	m.orders[o.ID] = cp
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	if _, ok := m.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *memOrders) CreateItems(_ context.Context, items []entity.SalesOrderItem) error {
	if m.failItems != nil {
		return m.failItems
	}
	for _, it := range items {
		m.items[it.OrderID] = append(m.items[it.OrderID], it)
	}
	return nil
}

func (m *memOrders) ListItems(_ context.Context, orderID string) ([]*entity.SalesOrderItemView, error) {
	src := append([]entity.SalesOrderItem(nil), m.items[orderID]...)
	sort.SliceStable(src, func(i, j int) bool { return src[i].CreatedAt.Before(src[j].CreatedAt) })
	out := make([]*entity.SalesOrderItemView, 0, len(src))
	for _, it := range src {
		out = append(out, &entity.SalesOrderItemView{SalesOrderItem: it})
	}
	return out, nil
}

func (m *memOrders) DeleteItems(_ context.Context, orderID string) error {
	delete(m.items, orderID)
	return nil
}

func (m *memOrders) snapshot() (map[string]entity.SalesOrder, map[string][]entity.SalesOrderItem) {
	o := make(map[string]entity.SalesOrder, len(m.orders))
	for k, v := range m.orders {
		o[k] = v
	}
	it := make(map[string][]entity.SalesOrderItem, len(m.items))
	for k, v := range m.items {
		it[k] = append([]entity.SalesOrderItem(nil), v...)
	}
	return o, it
}

// fakeTx restaura el estado anterior si fn falla.
type fakeTx struct{ m *memOrders }

func (f fakeTx) RunSales(_ context.Context, fn func(repository.SalesOrderRepository) error) error {
	orders, items := f.m.snapshot()
	if err := fn(f.m); err != nil {
		f.m.orders, f.m.items = orders, items
		return err
	}
	return nil
}

type fakePDF struct{ called bool }

func (g *fakePDF) GenerateOrderPDF(_ *entity.SalesOrderView, _ []*entity.SalesOrderItemView) ([]byte, error) {
	g.called = true
	return []byte("%PDF-1.4"), nil
}

func newOrderUC(m *memOrders, pdf OrderPDFGenerator) *OrderUseCase {
	return NewOrderUseCase(fakeTx{m}, m, pdf, logger.Nop(), nil)
}

func twoItems() dto.CreateSalesOrderRequest {
	return dto.CreateSalesOrderRequest{
		CustomerID: customerID,
		Number:     "PV-0001",
		Items: []dto.OrderItemRequest{
			{ProductID: productA, Quantity: 2, UnitPrice: 500, Discount: 0},
			{ProductID: productB, Quantity: 1, UnitPrice: 1000, Discount: 100},
		},
	}
}

func TestCreate_RecalculaLineasYTotal(t *testing.T) {
	ctx := context.Background()
	m := newMemOrders()
	uc := newOrderUC(m, nil)

	id, err := uc.Create(ctx, userID, twoItems())
	require.NoError(t, err)

	o := m.orders[id]
	assert.Equal(t, int64(1900), o.Total)
	assert.Equal(t, entity.OrderDraft, o.Status)
	assert.Equal(t, userID, o.UserID)
	assert.Nil(t, o.ApprovedAt)

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(1000), got.Items[0].Total)
	assert.Equal(t, int64(900), got.Items[1].Total)
	assert.Equal(t, productA, got.Items[0].ProductID)
	assert.Equal(t, "Loja Azul", got.CustomerName)
	for _, it := range m.items[id] {
		assert.Equal(t, id, it.OrderID)
	}
}

func TestCreate_SinItemsEsValidacion(t *testing.T) {
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	in := twoItems()
	in.Items = nil

	_, err := uc.Create(context.Background(), userID, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, m.orders)
}

func TestCreate_DescuentoMayorQueLineaEsValidacion(t *testing.T) {
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	in := twoItems()
	in.Items[0].Discount = 5000

	_, err := uc.Create(context.Background(), userID, in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, m.orders)
}

func TestCreate_TotalFueraDeRangoEsValidacion(t *testing.T) {
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	in := twoItems()
	in.Items = []dto.OrderItemRequest{{ProductID: productA, Quantity: 1<<62 + 1, UnitPrice: 4}}

	_, err := uc.Create(context.Background(), userID, in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, m.orders)
	assert.Empty(t, m.items)
}

func TestUpdate_TotalFueraDeRangoNoModifica(t *testing.T) {
	ctx := context.Background()
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	id, err := uc.Create(ctx, userID, twoItems())
	require.NoError(t, err)

	err = uc.Update(ctx, id, dto.UpdateSalesOrderRequest{Items: []dto.OrderItemRequest{
		{ProductID: productA, Quantity: 2, UnitPrice: math.MaxInt64 / 2},
		{ProductID: productB, Quantity: 1, UnitPrice: 10},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(1900), m.orders[id].Total)
	assert.Len(t, m.items[id], 2)
}

func TestCreate_FalloEnItemsNoDejaCabecera(t *testing.T) {
	m := newMemOrders()
	m.failItems = domain.ErrNotFound
	uc := newOrderUC(m, nil)

	_, err := uc.Create(context.Background(), userID, twoItems())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, m.orders)
	assert.Empty(t, m.items)
}

func TestUpdate_ReemplazaItems(t *testing.T) {
	ctx := context.Background()
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	id, err := uc.Create(ctx, userID, twoItems())
	require.NoError(t, err)

	err = uc.Update(ctx, id, dto.UpdateSalesOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: productB, Quantity: 3, UnitPrice: 200}},
	})
	require.NoError(t, err)

	require.Len(t, m.items[id], 1)
	assert.Equal(t, productB, m.items[id][0].ProductID)
	assert.Equal(t, int64(600), m.items[id][0].Total)
	assert.Equal(t, int64(600), m.orders[id].Total)
}

func TestUpdate_SinItemsRecalculaConLosVigentes(t *testing.T) {
	ctx := context.Background()
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	id, err := uc.Create(ctx, userID, twoItems())
	require.NoError(t, err)

	discount := int64(400)
	approved := entity.OrderApproved
	require.NoError(t, uc.Update(ctx, id, dto.UpdateSalesOrderRequest{Discount: &discount, Status: &approved}))

	o := m.orders[id]
	assert.Equal(t, int64(1500), o.Total)
	assert.NotNil(t, o.ApprovedAt)
	assert.Len(t, m.items[id], 2)
}

func TestUpdate_ItemsVaciosRechazados(t *testing.T) {
	ctx := context.Background()
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	id, err := uc.Create(ctx, userID, twoItems())
	require.NoError(t, err)

	err = uc.Update(ctx, id, dto.UpdateSalesOrderRequest{Items: []dto.OrderItemRequest{}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Len(t, m.items[id], 2)
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := newOrderUC(newMemOrders(), nil)
	note := "x"
	err := uc.Update(context.Background(), "nope", dto.UpdateSalesOrderRequest{Note: &note})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDelete_BorraItemsYCabecera(t *testing.T) {
	ctx := context.Background()
	m := newMemOrders()
	uc := newOrderUC(m, nil)
	id, err := uc.Create(ctx, userID, twoItems())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, id))
	assert.Empty(t, m.orders)
	assert.Empty(t, m.items)

	err = uc.Delete(ctx, id)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPDF(t *testing.T) {
	ctx := context.Background()
	m := newMemOrders()
	gen := &fakePDF{}
	uc := newOrderUC(m, gen)
	in := twoItems()
	in.Number = "PV 7/2026"
	id, err := uc.Create(ctx, userID, in)
	require.NoError(t, err)

	b, name, err := uc.PDF(ctx, id)
	require.NoError(t, err)
	assert.True(t, gen.called)
	assert.Equal(t, "pedido-PV_7_2026.pdf", name)
	assert.NotEmpty(t, b)

	_, _, err = newOrderUC(m, nil).PDF(ctx, id)
	assert.True(t, errors.Is(err, domain.ErrNotSupported))
}
