// Package pdf implementa la cotización imprimible de un pedido en composición.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + NIT         │  COTIZACIÓN + Ref + Fecha    │
//	│  CLIENTE                                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Observaciones | Importe   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Peso estimado / TOTAL                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/ventas-api/internal/application/salesorder"
	"github.com/jhoicas/ventas-api/internal/domain/packing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Separadores de miles y decimales colombianos: 1.234.567,89
var moneyPrinter = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuoteGenerator implementa salesorder.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct{}

var _ salesorder.QuotePDFGenerator = (*MarotoQuoteGenerator)(nil)

// NewMarotoQuoteGenerator construye el generador.
func NewMarotoQuoteGenerator() *MarotoQuoteGenerator { return &MarotoQuoteGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(_ context.Context, q salesorder.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización", true).
		WithAuthor(nonEmpty(q.IssuerName, "ventas-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q))
	m.AddRows(customerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(lineRows(q.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(q))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Precios sujetos a disponibilidad de inventario. El peso es estimado.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor + NIT (izq) y referencia + fecha (der).
func headerRow(q salesorder.Quote) core.Row {
	right := []core.Component{
		text.New("COTIZACIÓN", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
	}
	if q.Reference != "" {
		right = append(right, text.New(q.Reference, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
		}))
	}
	right = append(right, text.New("Fecha: "+q.Date.Format("02/01/2006"), props.Text{
		Size: 8, Align: align.Right, Top: 14, Color: colorGray,
	}))

	left := []core.Component{
		text.New(nonEmpty(q.IssuerName, "—"), props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	}
	if q.IssuerTaxID != "" {
		left = append(left, text.New("NIT: "+q.IssuerTaxID, props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}))
	}

	return row.New(18).Add(col.New(7).Add(left...), col.New(5).Add(right...))
}

func customerRow(q salesorder.Quote) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(q.CustomerName, "—"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Observaciones", 2, align.Left),
		h("Importe", 2, align.Right),
	)
}

// lineRows: una fila por línea; cantidad y precio en la unidad mostrada al usuario.
func lineRows(lines []salesorder.QuoteLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, ql := range lines {
		l := ql.Line
		name := l.ProductID
		if ql.Product != nil {
			name = ql.Product.SKU + " " + ql.Product.Name
			if ql.Product.Specification != "" {
				name += " (" + ql.Product.Specification + ")"
			}
		}
		qty := ""
		if l.DisplayQuantity.Valid {
			qty = l.DisplayQuantity.Decimal.String() + " " + unitLabel(l.DisplayUnit, l.Labels())
		}
		price := ""
		if l.UnitPrice.Valid {
			price = formatMoney(l.UnitPrice.Decimal)
		}

		result = append(result, row.New(8).Add(
			col.New(2).Add(text.New(qty, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(price, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.Remarks, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(formatMoney(l.Amount()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(q salesorder.Quote) core.Row {
	label := func(s string, size float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("Peso estimado:", 9),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6,
			}),
		),
		col.New(3).Add(
			text.New(packing.FormatWeight(q.Totals.Weight), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(formatMoney(q.Totals.Amount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func unitLabel(u packing.DisplayUnit, labels packing.Labels) string {
	if u == packing.Unit {
		return nonEmpty(labels.Unit, packing.DefaultLabels.Unit)
	}
	return nonEmpty(labels.Piece, packing.DefaultLabels.Piece)
}

// formatMoney importe con dos decimales y separador de miles: "$1.234,50".
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("$%.2f", f)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
