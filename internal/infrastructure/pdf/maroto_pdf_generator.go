// Package pdf implementa la generación del recibo de compra en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: EcoShop  │  N° Orden + Fecha + Estado               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRADOR: Nombre + Email + Dirección de envío              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Precio Unit. | Subtotal            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto (8%) / TOTAL                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de compra sostenible                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 120, Blue: 64}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var taxRate = decimal.NewFromFloat(0.08)

// moneyPrinter agrupa miles con coma: 1234.50 → 1,234.50
var moneyPrinter = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceiptPDF genera el recibo y devuelve sus bytes. productNames
// resuelve cada línea a su nombre actual; una línea sin nombre (producto ya
// eliminado del catálogo) se imprime con su ID.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	order *entity.Order,
	productNames map[string]string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de compra EcoShop", true).
		WithAuthor("EcoShop", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order, productNames) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y N° de orden + fecha + estado (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.Date
	if t, err := time.Parse(time.RFC3339, order.Date); err == nil {
		fecha = t.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("EcoShop", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Productos sostenibles", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Orden "+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", fecha, order.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// buyerRow: datos del comprador y dirección de envío.
func buyerRow(order *entity.Order) core.Row {
	ci := order.CustomerInfo
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(ci.FirstName+" "+ci.LastName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Envío: %s, %s %s",
				ci.Email, ci.Address, ci.City, ci.ZipCode,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la orden, al precio congelado.
func tableItemRows(order *entity.Order, productNames map[string]string) []core.Row {
	result := make([]core.Row, 0, len(order.Items))
	for _, it := range order.Items {
		name := productNames[it.ProductID]
		if name == "" {
			name = "Producto " + it.ProductID
		}
		lineTotal := it.PriceAtPurchase.Mul(decimal.NewFromInt(int64(it.Quantity)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(it.PriceAtPurchase),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(lineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. El impuesto es de
// presentación: el total persistido de la orden es el subtotal.
func totalsRow(order *entity.Order) core.Row {
	tax := order.Total.Mul(taxRate).Round(2)
	grand := order.Total.Add(tax)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label("Impuesto (8%):"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(formatMoney(order.Total)),
			value(formatMoney(tax)),
			grandValue(formatMoney(grand)),
		),
		col.New(1),
	)
}

// footerRow: leyenda de cierre.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Gracias por tu compra sostenible. Cada producto de este recibo "+
				"fue seleccionado por su bajo impacto ambiental.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney imprime el monto con separador de miles y dos decimales.
// Ej: 1234.5 → "$1,234.50"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("$%.2f", f)
}
