package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/domain"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

func TestAdjustQuery_EscrituraCondicional(t *testing.T) {
	sql, args, err := adjustQuery("p-1", -30).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE products SET on_hand_quantity = on_hand_quantity + $1, updated_at = now() "+
			"WHERE id = $2 AND on_hand_quantity + $3 >= 0 RETURNING on_hand_quantity",
		sql)
	assert.Equal(t, []interface{}{int64(-30), "p-1", int64(-30)}, args)
}

func TestOverdueQuery_SoloAbiertasVencidas(t *testing.T) {
	now := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	sql, args, err := overdueQuery("payables", now).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM payables WHERE status = $1 AND due_date <= $2", sql)
	assert.Equal(t, []interface{}{entity.StatusOpen, now}, args)
}

func TestDispatchListQuery_Filtros(t *testing.T) {
	sql, args, err := dispatchListQuery(repository.DispatchFilter{Status: entity.DispatchPending}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "COALESCE(c.legal_name, '') AS customer_legal_name")
	assert.Contains(t, sql, "LEFT JOIN customers c ON c.id = d.customer_id")
	assert.Contains(t, sql, "LEFT JOIN carriers t ON t.id = d.carrier_id")
	assert.Contains(t, sql, "WHERE d.status = $1")
	assert.Contains(t, sql, "ORDER BY d.created_at DESC")
	assert.Equal(t, []interface{}{entity.DispatchPending}, args)
}

func TestMovementListQuery_SinFiltros(t *testing.T) {
	sql, args, err := movementListQuery(repository.MovementFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "FROM stock_movements m")
	assert.Contains(t, sql, "ORDER BY m.created_at DESC")
	assert.Empty(t, args)
}

func TestItemsInsertQuery_UnaSentenciaPorPedido(t *testing.T) {
	now := time.Now()
	items := []entity.SalesOrderItem{
		{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 2, UnitPrice: 500, Total: 1000, CreatedAt: now},
		{ID: "i2", OrderID: "o1", ProductID: "p2", Quantity: 1, UnitPrice: 1000, Discount: 100, Total: 900, CreatedAt: now},
	}
	sql, args, err := itemsInsertQuery(items).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO sales_order_items")
	assert.Contains(t, sql, "$16")
	assert.Len(t, args, 16)
}

func TestUpsertUserQuery_ConflictoPorOpenID(t *testing.T) {
	sql, _, err := upsertUserQuery(&entity.User{ID: "u1", OpenID: "oid", Role: entity.RoleUser}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "ON CONFLICT (open_id) DO UPDATE SET")
	assert.NotContains(t, sql, "role = EXCLUDED.role")
	assert.Contains(t, sql, "RETURNING id, open_id")
}

func TestMapError_TraduceSQLState(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{codeUniqueViolation, domain.ErrDuplicate},
		{codeForeignKeyViolation, domain.ErrNotFound},
		{codeCheckViolation, domain.ErrInvalidInput},
		{codeInvalidText, domain.ErrInvalidInput},
		{codeOutOfRange, domain.ErrInvalidInput},
		{"08006", domain.ErrUnavailable},
		{"57P01", domain.ErrUnavailable},
	}
	for _, tc := range cases {
		err := mapError(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: tc.code}))
		assert.ErrorIs(t, err, tc.want, tc.code)
	}

	assert.Nil(t, mapError(nil))
	assert.ErrorIs(t, mapError(context.DeadlineExceeded), domain.ErrUnavailable)

	plain := errors.New("boom")
	assert.Equal(t, plain, mapError(plain))
}

func TestMapError_ExistenciaFueraDeRangoEsEntradaInvalida(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22003", Message: "bigint out of range"}
	err := mapError(fmt.Errorf("adjust stock: %w", pgErr))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrUnavailable)
	assert.Contains(t, err.Error(), "bigint out of range")
}

func TestMapDeleteError_FKEsConflicto(t *testing.T) {
	err := mapDeleteError(&pgconn.PgError{Code: codeForeignKeyViolation})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
