// Package pdf implementa la generación del estado de cuenta en PDF de una
// venta a crédito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ventas Pro  │  N° Crédito + Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                 │
//	│  CRÉDITO: Producto / Plan / Estado                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cuota | Vencimiento | Monto                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Cuota inicial / SALDO PENDIENTE           │
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

	appsales "github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa sales.StatementPDFGenerator usando
// Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator {
	return &MarotoStatementGenerator{}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	data *appsales.StatementData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Credit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data.Credit))
	m.AddRows(creditRow(data.Credit, data.ItemName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(scheduleHeaderRow())
	for _, r := range scheduleRows(data.Schedule) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Credit))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y N° crédito + fecha (der).
func headerRow(credit *entity.CreditSale) core.Row {
	fecha := credit.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Ventas Pro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de ventas a crédito", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Crédito "+shortID(credit.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(credit *entity.CreditSale) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(credit.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(credit.CustomerEmail, "—"),
				nonEmpty(credit.CustomerPhone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// creditRow: producto, plan de pago y estado.
func creditRow(credit *entity.CreditSale, itemName string) core.Row {
	plan := fmt.Sprintf("%d cuotas mensuales de $%s",
		credit.EMIPeriods, credit.MonthlyEMI.StringFixed(2))
	if credit.PaymentType == entity.PaymentTypePayLater {
		plan = "pago único diferido"
		if credit.DueDate != nil {
			plan += " (vence " + credit.DueDate.Format("02/01/2006") + ")"
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CRÉDITO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Producto: %s   |   Plan: %s   |   Estado: %s",
				itemName, plan, credit.Status,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// scheduleHeaderRow: cabecera de la tabla del cronograma.
func scheduleHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cuota", 2, align.Center),
		h("Vencimiento", 5, align.Left),
		h("Monto", 5, align.Right),
	)
}

// scheduleRows: una fila por cuota programada.
func scheduleRows(schedule []entity.CreditPayment) []core.Row {
	result := make([]core.Row, 0, len(schedule))
	for _, p := range schedule {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", p.InstallmentNo),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				p.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				"$"+p.AmountDue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(credit *entity.CreditSale) core.Row {
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
			label("Precio total:"),
			label("Cuota inicial:"),
			grandLabel("SALDO PENDIENTE:"),
		),
		col.New(4).Add(
			value("$"+credit.TotalPrice.StringFixed(2)),
			value("$"+credit.DownPayment.StringFixed(2)),
			grandValue("$"+credit.PendingBalance.StringFixed(2)),
		),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID recorta un UUID a su primer bloque para mostrarlo como referencia.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
