// Package pdf implementa la generación del reporte de inventario imprimible
// que el almacén entrega en los cortes físicos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller  │  Fecha de corte               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Clave | Descripción | Unidad | Existencia            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Piezas en almacén / Refacciones en catálogo        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/tu-usuario/taller-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera reportes de inventario usando Maroto v2.
type MarotoPDFGenerator struct {
	tallerName string
}

// NewMarotoPDFGenerator construye el generador con el nombre a imprimir en el encabezado.
func NewMarotoPDFGenerator(tallerName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{tallerName: tallerName}
}

// GenerateInventoryPDF genera el reporte de inventario y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(
	_ context.Context,
	rows []dto.InventoryDetailDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.tallerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.tallerName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del taller (izq) y fecha de corte (der).
func headerRow(tallerName string, generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(7).Add(
			text.New(tallerName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Almacén de refacciones", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de existencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Clave", 2, align.Left),
		h("Descripción", 6, align.Left),
		h("Unidad", 2, align.Center),
		h("Existencia", 2, align.Right),
	)
}

// tableDetailRows: una fila por refacción del catálogo.
func tableDetailRows(rows []dto.InventoryDetailDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, d := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				d.Clave,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(6).Add(text.New(
				d.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				d.UnidadMedida,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				strconv.FormatInt(d.Existencia, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: piezas totales en almacén y refacciones en catálogo.
func totalsRow(rows []dto.InventoryDetailDTO) core.Row {
	var piezas int64
	for _, d := range rows {
		piezas += d.Existencia
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(14).Add(
		col.New(6), // espacio izquierdo
		col.New(4).Add(
			label("Refacciones en catálogo:"),
			label("Piezas en almacén:"),
		),
		col.New(2).Add(
			value(strconv.Itoa(len(rows))),
			value(strconv.FormatInt(piezas, 10)),
		),
	)
}
