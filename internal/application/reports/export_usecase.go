// Package reports exporta listados a planilla.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/validation"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

const dateLayout = "02/01/2006 15:04"

// SpreadsheetWriter arma un libro de una hoja con encabezado y filas.
type SpreadsheetWriter interface {
	Write(sheet string, header []string, rows [][]interface{}) ([]byte, error)
}

// ExportUseCase exportaciones XLSX de despachos y movimientos.
type ExportUseCase struct {
	dispatches repository.DispatchRepository
	movements  repository.StockMovementRepository
	writer     SpreadsheetWriter
	now        func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	dispatches repository.DispatchRepository,
	movements repository.StockMovementRepository,
	writer SpreadsheetWriter,
) *ExportUseCase {
	return &ExportUseCase{dispatches: dispatches, movements: movements, writer: writer, now: time.Now}
}

// Dispatches planilla de despachos con los mismos filtros del listado.
func (uc *ExportUseCase) Dispatches(ctx context.Context, f dto.DispatchFilter) ([]byte, string, error) {
	if err := validation.Struct(f); err != nil {
		return nil, "", err
	}
	list, err := uc.dispatches.List(ctx, repository.DispatchFilter{
		Status:     f.Status,
		CustomerID: f.CustomerID,
		CarrierID:  f.CarrierID,
	})
	if err != nil {
		return nil, "", err
	}
	header := []string{
		"Código de rastreo", "Cliente", "Mercadería", "SKU", "Cantidad",
		"Transportadora", "Estado", "Despachado", "Entregado", "Usuario", "Observación",
	}
	rows := make([][]interface{}, 0, len(list))
	for _, d := range list {
		rows = append(rows, []interface{}{
			d.TrackingCode,
			d.CustomerDisplayName(),
			d.ProductName,
			d.ProductSKU,
			d.Quantity,
			d.CarrierName,
			d.Status,
			d.DispatchedAt.Format(dateLayout),
			formatOptional(d.DeliveredAt),
			d.UserName,
			d.Note,
		})
	}
	b, err := uc.writer.Write("Despachos", header, rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar despachos: %w", err)
	}
	return b, uc.filename("despachos"), nil
}

// Movements planilla del libro de movimientos.
func (uc *ExportUseCase) Movements(ctx context.Context, f dto.MovementFilter) ([]byte, string, error) {
	if err := validation.Struct(f); err != nil {
		return nil, "", err
	}
	list, err := uc.movements.List(ctx, repository.MovementFilter{ProductID: f.ProductID, Direction: f.Direction})
	if err != nil {
		return nil, "", err
	}
	header := []string{"Fecha", "Mercadería", "SKU", "Dirección", "Cantidad", "Motivo", "Observación", "Usuario"}
	rows := make([][]interface{}, 0, len(list))
	for _, m := range list {
		rows = append(rows, []interface{}{
			m.CreatedAt.Format(dateLayout),
			m.ProductName,
			m.ProductSKU,
			directionLabel(m.Direction),
			entity.SignedDelta(m.Direction, m.Quantity),
			m.Reason,
			m.Note,
			m.UserName,
		})
	}
	b, err := uc.writer.Write("Movimientos", header, rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar movimientos: %w", err)
	}
	return b, uc.filename("movimientos"), nil
}

func (uc *ExportUseCase) filename(prefix string) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, uc.now().Format("20060102_150405"))
}

func directionLabel(d string) string {
	if d == entity.DirectionOutbound {
		return "Salida"
	}
	return "Entrada"
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
