package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName_PrimerValorNoVacio(t *testing.T) {
	assert.Equal(t, "Ana", DisplayName("Ana", "Ana Ltda", "AnaShop"))
	assert.Equal(t, "Ana Ltda", DisplayName("", "Ana Ltda", "AnaShop"))
	assert.Equal(t, "AnaShop", DisplayName("  ", "", "AnaShop"))
	assert.Equal(t, UnknownCustomerName, DisplayName("", "", ""))

	c := &Customer{LegalName: "Transportes Sul SA"}
	assert.Equal(t, "Transportes Sul SA", c.DisplayName())

	ref := CustomerRef{}
	assert.Equal(t, UnknownCustomerName, ref.CustomerDisplayName())
}

func TestSignedDelta(t *testing.T) {
	assert.Equal(t, int64(5), SignedDelta(DirectionInbound, 5))
	assert.Equal(t, int64(-5), SignedDelta(DirectionOutbound, 5))
	assert.True(t, IsValidDirection(DirectionOutbound))
	assert.False(t, IsValidDirection("adjust"))
}

func TestSalesOrder_RecalculaTotales(t *testing.T) {
	o := &SalesOrder{Items: []SalesOrderItem{
		{Quantity: 2, UnitPrice: 500, Discount: 0},
		{Quantity: 1, UnitPrice: 1000, Discount: 100},
	}}
	require.NoError(t, o.Recalculate())

	assert.Equal(t, int64(1000), o.Items[0].Total)
	assert.Equal(t, int64(900), o.Items[1].Total)
	assert.Equal(t, int64(1900), o.Total)

	o.Discount = 400
	require.NoError(t, o.Recalculate())
	assert.Equal(t, int64(1500), o.Total)
}

func TestSalesOrder_DescuentosNegativosRechazados(t *testing.T) {
	o := &SalesOrder{Items: []SalesOrderItem{{Quantity: 1, UnitPrice: 100, Discount: 200}}}
	assert.Error(t, o.Recalculate())

	o = &SalesOrder{Discount: 1000, Items: []SalesOrderItem{{Quantity: 1, UnitPrice: 100}}}
	assert.Error(t, o.Recalculate())
}

func TestSalesOrder_TotalesFueraDeRango(t *testing.T) {
	o := &SalesOrder{Items: []SalesOrderItem{{Quantity: 1<<62 + 1, UnitPrice: 4}}}
	assert.ErrorIs(t, o.Recalculate(), ErrAmountOverflow)
	assert.Zero(t, o.Total)

	o = &SalesOrder{Items: []SalesOrderItem{
		{Quantity: 1, UnitPrice: math.MaxInt64},
		{Quantity: 1, UnitPrice: 1},
	}}
	assert.ErrorIs(t, o.Recalculate(), ErrAmountOverflow)

	total, err := LineTotal(3, math.MaxInt64/3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3*(math.MaxInt64/3)), total)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.True(t, IsOverdue(StatusOpen, now.AddDate(0, 0, -1), now))
	assert.True(t, IsOverdue(StatusOpen, now, now))
	assert.False(t, IsOverdue(StatusOpen, now.AddDate(0, 0, 1), now))
	assert.False(t, IsOverdue(StatusPaid, now.AddDate(0, 0, -1), now))
}

func TestIsValidRoleYEstados(t *testing.T) {
	assert.True(t, IsValidRole(RoleDispatcher))
	assert.False(t, IsValidRole("bodeguero"))
	assert.True(t, IsValidDispatchStatus(DispatchInTransit))
	assert.False(t, IsValidDispatchStatus("lost"))
}
