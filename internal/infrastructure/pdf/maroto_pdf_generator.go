// Package pdf genera la representación imprimible de una factura del servicio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cyberlink  │  N° Factura + Fecha de emisión        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ABONADO: Nombre + DNI + contacto                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Plan | Periodo | Vencimiento                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR + estado de la factura                       │
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

	appbilling "github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	companyName string
}

// NewMarotoPDFGenerator construye el generador con el nombre comercial a mostrar.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{companyName: companyName}
}

// Render genera el PDF y devuelve sus bytes. El plan puede ser nil.
func (g *MarotoPDFGenerator) Render(invoice *entity.Invoice, client *entity.Client, plan *entity.Plan) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de servicio", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(invoice, plan)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre comercial (izq) y número + fecha de emisión (der).
func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Servicio de internet", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Emisión: "+invoice.IssueDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del abonado.
func clientRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ABONADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("DNI: %s   |   Tel: %s   |   Dirección: %s",
				client.DNI,
				nonEmpty(client.Phone, "—"),
				nonEmpty(client.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// detailRows: concepto facturado, periodo y vencimiento.
func detailRows(invoice *entity.Invoice, plan *entity.Plan) []core.Row {
	concepto := "Servicio de internet"
	if plan != nil {
		concepto = fmt.Sprintf("%s (%s)", plan.Name, plan.Speed)
	}
	periodo := fmt.Sprintf("%s al %s",
		invoice.PeriodFrom.Format("02/01/2006"),
		invoice.PeriodTo.Format("02/01/2006"),
	)
	return []core.Row{
		row.New(8).Add(
			col.New(6).Add(text.New("Concepto", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2, Left: 1,
			})),
			col.New(4).Add(text.New("Periodo", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2,
			})),
			col.New(2).Add(text.New("Vence", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 1,
			})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(concepto, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(periodo, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(
				invoice.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		),
	}
}

// totalRow: monto y estado de la factura.
func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Estado: "+invoice.Status, props.Text{
				Size: 9, Top: 3, Left: 1, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL A PAGAR: S/ "+invoice.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
