// Package pdf implementa la generación del reporte de stock en PDF con
// Maroto v2: tabla con el stock actual por código y sección con los
// últimos movimientos registrados.
package pdf

import (
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

	"github.com/tu-usuario/relojes/internal/application/report"
	"github.com/tu-usuario/relojes/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 128, Blue: 64}
	colorRed     = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.StockReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(
	items []entity.Item,
	lastMovements []entity.HistoryEntry,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tabla de stock actual
	m.AddRows(stockHeaderRow())
	total := 0
	for _, it := range items {
		total += it.Quantity
		m.AddRows(stockRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	// Últimos movimientos
	if len(lastMovements) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(movementsTitleRow(len(lastMovements)))
		m.AddRows(movementsHeaderRow())
		for _, h := range lastMovements {
			m.AddRows(movementRow(h))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha de generación y cantidad de modelos.
func headerRow(generatedAt time.Time, modelCount int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("INVENTARIO DE RELOJES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de stock actual", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Modelos: %d", modelCount), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// stockHeaderRow: cabecera de la tabla de stock.
func stockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 8, align.Left),
		h("Cantidad", 4, align.Right),
	)
}

// stockRow: una fila por modelo.
func stockRow(it entity.Item) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(
			it.Code,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			strconv.Itoa(it.Quantity),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total de unidades en stock.
func totalRow(total int) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("TOTAL UNIDADES", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Left, Left: 1,
			Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New(strconv.Itoa(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1,
			Color: colorPrimary, Top: 1,
		})),
	)
}

// movementsTitleRow: título de la sección de movimientos.
func movementsTitleRow(n int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("ÚLTIMOS MOVIMIENTOS (%d)", n),
			props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1},
		)),
	)
}

// movementsHeaderRow: cabecera de la tabla de movimientos.
func movementsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 4, align.Left),
		h("Operación", 3, align.Left),
		h("Código", 3, align.Left),
		h("Cant.", 2, align.Right),
	)
}

// movementRow: una fila por movimiento, coloreada por tipo.
func movementRow(h entity.HistoryEntry) core.Row {
	c := colorGray
	switch h.Kind {
	case entity.KindPurchase:
		c = colorGreen
	case entity.KindSale:
		c = colorRed
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(
			h.Timestamp.Format("2006-01-02 15:04:05"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			h.Kind.Label(),
			props.Text{Size: 8, Align: align.Left, Top: 1, Color: c},
		)),
		col.New(3).Add(text.New(
			h.Code,
			props.Text{Size: 8, Align: align.Left, Top: 1},
		)),
		col.New(2).Add(text.New(
			strconv.Itoa(h.Quantity),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}
