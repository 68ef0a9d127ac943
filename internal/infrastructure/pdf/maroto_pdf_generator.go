// Package pdf genera el pedido de venta imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: DespachoSys Pro       │  N° Pedido + Fecha + Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre a mostrar / responsable                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Mercadería | SKU | P.Unit | Desc. | Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Suma líneas / Descuento / TOTAL                   │
//	│  FOOTER: QR con el id del pedido + observación              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var statusLabels = map[string]string{
	entity.OrderDraft:     "Rascunho",
	entity.OrderApproved:  "Aprovado",
	entity.OrderInvoiced:  "Faturado",
	entity.OrderCancelled: "Cancelado",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa sales.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company string
}

// NewMarotoPDFGenerator construye el generador. company aparece en el encabezado.
func NewMarotoPDFGenerator(company string) *MarotoPDFGenerator {
	if company == "" {
		company = "DespachoSys Pro"
	}
	return &MarotoPDFGenerator{company: company}
}

// GenerateOrderPDF genera el PDF del pedido y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(order *entity.SalesOrderView, items []*entity.SalesOrderItemView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido de venda "+order.Number, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	var subtotal int64
	for _, it := range items {
		m.AddRows(itemRow(it))
		subtotal += it.Total
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(subtotal, order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, o *entity.SalesOrderView) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedido de venda", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° "+nonEmpty(o.Number, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Emissão: "+o.IssuedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Status: "+statusLabel(o.Status), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func customerRow(o *entity.SalesOrderView) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(o.CustomerDisplayName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Responsável: "+nonEmpty(o.UserName, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Qtd.", 1, align.Center),
		h("Mercadoria", 4, align.Left),
		h("SKU", 2, align.Left),
		h("Preço unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

func itemRow(it *entity.SalesOrderItemView) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(fmt.Sprintf("%d", it.Quantity), 1, align.Center),
		cell(nonEmpty(it.ProductName, "—"), 4, align.Left),
		cell(it.ProductSKU, 2, align.Left),
		cell(money.Format(it.UnitPrice), 2, align.Right),
		cell(money.Format(it.Discount), 1, align.Right),
		cell(money.Format(it.Total), 2, align.Right),
	)
}

func totalsRow(subtotal int64, o *entity.SalesOrderView) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 10,
		})
	}

	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Soma dos itens:"),
			text.New("Desconto:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 10,
			}),
		),
		col.New(3).Add(
			value(money.Format(subtotal)),
			text.New(money.Format(o.Discount), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			grand(money.Format(o.Total)),
		),
	)
}

// footerRow QR con el id del pedido para conferencia en el depósito.
func footerRow(o *entity.SalesOrderView) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(o.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Observações", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 3,
			}),
			text.New(nonEmpty(o.Note, "—"), props.Text{
				Size: 8, Top: 8, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func statusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s
}
