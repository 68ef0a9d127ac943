package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/domain"
)

func TestStruct_Valido(t *testing.T) {
	in := dto.RegisterMovementRequest{
		ProductID: "6f1c1f0e-8d43-4a55-9b8e-3c6a4f0f7a11",
		Direction: "inbound",
		Quantity:  5,
	}
	assert.NoError(t, Struct(in))
}

func TestStruct_ReportaCamposPorNombreJSON(t *testing.T) {
	in := dto.RegisterMovementRequest{ProductID: "no-es-uuid", Direction: "adjust", Quantity: 0}
	err := Struct(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "product_id")
	assert.Contains(t, verr.Fields, "direction")
	assert.Contains(t, verr.Fields, "quantity")
}

func TestStruct_PedidoSinItems(t *testing.T) {
	in := dto.CreateSalesOrderRequest{
		CustomerID: "6f1c1f0e-8d43-4a55-9b8e-3c6a4f0f7a11",
		Number:     "PV-1",
		Items:      []dto.OrderItemRequest{},
	}
	err := Struct(in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "items")
}

func TestStruct_ItemsAnidados(t *testing.T) {
	in := dto.CreateSalesOrderRequest{
		CustomerID: "6f1c1f0e-8d43-4a55-9b8e-3c6a4f0f7a11",
		Number:     "PV-1",
		Items: []dto.OrderItemRequest{
			{ProductID: "6f1c1f0e-8d43-4a55-9b8e-3c6a4f0f7a11", Quantity: 1, UnitPrice: 100},
			{ProductID: "6f1c1f0e-8d43-4a55-9b8e-3c6a4f0f7a11", Quantity: 0, UnitPrice: 100},
		},
	}
	err := Struct(in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "debe ser mayor que 0", verr.Fields["items[1].quantity"])
}

func TestStruct_UpdateParcialPermiteLimpiarReferencia(t *testing.T) {
	empty := ""
	assert.NoError(t, Struct(dto.UpdateDispatchRequest{CarrierID: &empty}))

	bad := "x"
	assert.Error(t, Struct(dto.UpdateDispatchRequest{CarrierID: &bad}))

	blank := ""
	assert.Error(t, Struct(dto.UpdateCategoryRequest{Name: &blank}))
}
