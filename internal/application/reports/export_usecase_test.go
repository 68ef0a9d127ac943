package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

type captureWriter struct {
	sheet  string
	header []string
	rows   [][]interface{}
}

func (w *captureWriter) Write(sheet string, header []string, rows [][]interface{}) ([]byte, error) {
	w.sheet, w.header, w.rows = sheet, header, rows
	return []byte("xlsx"), nil
}

type listMovements struct{ rows []*entity.StockMovementView }

func (l listMovements) Create(context.Context, *entity.StockMovement) error { return nil }
func (l listMovements) List(context.Context, repository.MovementFilter) ([]*entity.StockMovementView, error) {
	return l.rows, nil
}

func TestMovements_FilasConSigno(t *testing.T) {
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	movs := listMovements{rows: []*entity.StockMovementView{
		{StockMovement: entity.StockMovement{Direction: entity.DirectionOutbound, Quantity: 30, Reason: entity.ReasonDispatch, CreatedAt: at}, ProductName: "Caixa"},
		{StockMovement: entity.StockMovement{Direction: entity.DirectionInbound, Quantity: 100, CreatedAt: at}, ProductName: "Caixa"},
	}}
	w := &captureWriter{}
	uc := NewExportUseCase(nil, movs, w)
	uc.now = func() time.Time { return at }

	b, name, err := uc.Movements(context.Background(), dto.MovementFilter{})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), b)
	assert.Equal(t, "movimientos_20260402_093000.xlsx", name)
	assert.Equal(t, "Movimientos", w.sheet)
	require.Len(t, w.rows, 2)
	assert.Equal(t, "02/04/2026 09:30", w.rows[0][0])
	assert.Equal(t, "Salida", w.rows[0][3])
	assert.Equal(t, int64(-30), w.rows[0][4])
	assert.Equal(t, int64(100), w.rows[1][4])
}

func TestMovements_FiltroInvalido(t *testing.T) {
	uc := NewExportUseCase(nil, listMovements{}, &captureWriter{})
	_, _, err := uc.Movements(context.Background(), dto.MovementFilter{Direction: "sideways"})
	assert.Error(t, err)
}
