// Package pdf implementa la generación del reporte de vencimientos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la organización │ Fecha de generación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: Garantías de dispositivos                          │
//	│  TABLA: Recurso | Estado | Días restantes                    │
//	│  SECCIÓN: Contratos AMC                                      │
//	│  SECCIÓN: Licencias de software                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/tu-usuario/activos-pro/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateExpiryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateExpiryReport(_ context.Context, data reports.ExpiryReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Vencimientos", true).
		WithAuthor(data.OrgName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range data.Sections {
		m.AddRows(sectionTitleRow(section.Title))
		if len(section.Items) == 0 {
			m.AddRows(row.New(6).Add(
				col.New(12).Add(text.New("Sin vencimientos en los próximos 30 días.", props.Text{
					Size: 8, Color: colorGray, Top: 1,
				})),
			))
			continue
		}
		m.AddRows(tableHeaderRow())
		for _, item := range section.Items {
			m.AddRows(itemRow(item))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data reports.ExpiryReportData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(data.OrgName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de vencimientos · "+data.OrgSlug, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(7).Add(text.New("Recurso", header)),
		col.New(3).Add(text.New("Estado", header)),
		col.New(2).Add(text.New("Días", props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right,
		})),
	)
}

func itemRow(item reports.Item) core.Row {
	days := "-"
	if item.DaysRemaining != nil {
		days = strconv.Itoa(*item.DaysRemaining)
	}
	stateColor := colorGray
	if item.Bucket == "expired" {
		stateColor = colorRed
	}
	return row.New(5).Add(
		col.New(7).Add(text.New(item.Label, props.Text{Size: 8})),
		col.New(3).Add(text.New(item.Bucket, props.Text{Size: 8, Color: stateColor})),
		col.New(2).Add(text.New(days, props.Text{Size: 8, Align: align.Right})),
	)
}
