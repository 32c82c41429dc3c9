// Package pdf genera la representación imprimible de una factura de venta
// en campo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Factura + Fecha                                 │
//	│  LOCAL: Nombre + CI/RIF + ubicación                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal neto / IVA 16% / TOTAL                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// FacturaPDFGenerator genera el PDF de una factura usando Maroto v2.
type FacturaPDFGenerator struct{}

// NewFacturaPDFGenerator construye el generador.
func NewFacturaPDFGenerator() *FacturaPDFGenerator { return &FacturaPDFGenerator{} }

// Generate genera el PDF de la factura y devuelve sus bytes.
func (g *FacturaPDFGenerator) Generate(
	factura *entity.Factura,
	local *entity.Local,
	lineas []*entity.FacturaLineaDetalle,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de Venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(factura))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(localRow(local))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, l := range lineas {
		m.AddRows(lineaRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(factura)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y N° de factura + fecha (der).
func headerRow(factura *entity.Factura) core.Row {
	fecha := factura.FechaFactura.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("N° %d", factura.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// localRow: datos del local facturado.
func localRow(local *entity.Local) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(local.NombreLocal, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New("CI/RIF: "+local.CIRif, props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(local.UbicacionTexto, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", bold)),
		col.New(6).Add(text.New("Producto", bold)),
		col.New(2).Add(text.New("P. Unit", boldRight)),
		col.New(2).Add(text.New("Subtotal", boldRight)),
	)
}

func lineaRow(l *entity.FacturaLineaDetalle) core.Row {
	subtotal := l.PrecioUnitario.Mul(decimal.NewFromInt(l.Cantidad))
	right := props.Text{Size: 9, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", l.Cantidad), props.Text{Size: 9})),
		col.New(6).Add(text.New(l.NombreProducto, props.Text{Size: 9})),
		col.New(2).Add(text.New(l.PrecioUnitario.StringFixed(2), right)),
		col.New(2).Add(text.New(subtotal.StringFixed(2), right)),
	)
}

func totalsRows(factura *entity.Factura) []core.Row {
	impuesto := factura.TotalBruto.Sub(factura.TotalNeto)
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	value := props.Text{Size: 9, Align: align.Right}
	totalLabel := props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary}
	totalValue := props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right}
	return []core.Row{
		row.New(6).Add(
			col.New(10).Add(text.New("Subtotal neto", label)),
			col.New(2).Add(text.New(factura.TotalNeto.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(10).Add(text.New("IVA (16%)", label)),
			col.New(2).Add(text.New(impuesto.StringFixed(2), value)),
		),
		row.New(8).Add(
			col.New(10).Add(text.New("TOTAL A PAGAR", totalLabel)),
			col.New(2).Add(text.New(factura.TotalBruto.StringFixed(2), totalValue)),
		),
	}
}
