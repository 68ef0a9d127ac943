package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

func TestGenerateOrderPDF(t *testing.T) {
	order := &entity.SalesOrderView{
		SalesOrder: entity.SalesOrder{
			ID:       "7f0c1a2b-3c4d-4e5f-8a9b-0c1d2e3f4a5b",
			Number:   "PV-0001",
			Status:   entity.OrderApproved,
			Total:    1900,
			IssuedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		CustomerRef: entity.CustomerRef{CustomerTradeName: "Loja Azul"},
		UserName:    "Ana",
	}
	items := []*entity.SalesOrderItemView{
		{SalesOrderItem: entity.SalesOrderItem{Quantity: 2, UnitPrice: 500, Total: 1000}, ProductName: "Caixa 40x40"},
		{SalesOrderItem: entity.SalesOrderItem{Quantity: 1, UnitPrice: 1000, Discount: 100, Total: 900}, ProductName: "Fita"},
	}

	b, err := NewMarotoPDFGenerator("").GenerateOrderPDF(order, items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Aprovado", statusLabel(entity.OrderApproved))
	assert.Equal(t, "otro", statusLabel("otro"))
}
