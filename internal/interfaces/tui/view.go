package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tu-usuario/relojes/internal/domain/entity"
	dominv "github.com/tu-usuario/relojes/internal/domain/inventory"
)

const (
	visibleRows    = 10 // filas visibles en tablas con selección
	visibleLogs    = 5
	chartBarHeight = 8
)

const logo = `   ____       _       _
  |  _ \ ___ | | ___ (_) ___  ___
  | |_) / _ \| |/ _ \| |/ _ \/ __|
  |  _ < (_) | | (_) | |  __/\__ \
  |_| \_\___/|_|\___// |\___||___/
                   |__/`

// View compone la pantalla completa: logo, panel principal según modo,
// barra lateral de hotkeys y pie de mensajes. Función pura del estado.
func (m Model) View() string {
	var main string
	switch m.mode {
	case modeInventory:
		main = m.viewInventory()
	case modeRegistration:
		main = m.viewRegistration()
	case modeSearch:
		main = m.viewSearch()
	case modeHistory:
		main = m.viewHistory()
	case modeChart:
		main = m.viewChart()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		stylePanel.Render(main),
		stylePanel.Render(m.viewHotkeys()),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		styleLogo.Render(logo),
		body,
		stylePanel.Render(m.viewMessages()),
	)
}

// ── Paneles ───────────────────────────────────────────────────────────────────

func (m Model) viewInventory() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Stock") + "\n")
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-20s %6s", "CÓDIGO", "QTD")) + "\n")

	items := m.uc.Items()
	if len(items) == 0 {
		b.WriteString(styleDim.Render("Sin modelos registrados. C para registrar."))
		return b.String()
	}

	start, end := window(m.invSelected, len(items), visibleRows)
	for i := start; i < end; i++ {
		line := fmt.Sprintf("%-20s %6d", items[i].Code, items[i].Quantity)
		if i == m.invSelected {
			line = styleSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if m.pending != opNone {
		verb := "comprar"
		if m.pending == opSell {
			verb = "vender"
		}
		b.WriteString("\n" + fmt.Sprintf("Cantidad a %s para %s: %s", verb, m.pendingCode, m.amountInput.View()))
	}
	return b.String()
}

func (m Model) viewRegistration() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Registrar reloj") + "\n")
	b.WriteString("CODIGO CANTIDAD y Enter; Esc cancela.\n\n")
	b.WriteString(m.regInput.View() + "\n")
	if m.regErr != "" {
		b.WriteString(styleError.Render("✗ "+m.regErr) + "\n")
	}

	b.WriteString("\n" + styleHeader.Render(fmt.Sprintf("%-20s %6s", "CÓDIGO", "QTD")) + "\n")
	items := m.uc.Items()
	if len(items) == 0 {
		b.WriteString(styleDim.Render("Todavía no hay modelos."))
		return b.String()
	}
	for i, it := range items {
		if i >= visibleRows {
			b.WriteString(styleDim.Render(fmt.Sprintf("… y %d más", len(items)-visibleRows)))
			break
		}
		b.WriteString(fmt.Sprintf("%-20s %6d\n", it.Code, it.Quantity))
	}
	return b.String()
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Buscar reloj") + "\n")
	b.WriteString("Escriba para buscar; Enter selecciona, Esc cancela.\n\n")
	b.WriteString(m.searchInput.View() + "\n\n")

	if len(m.results) == 0 {
		b.WriteString(styleDim.Render("Sin resultados."))
		return b.String()
	}

	b.WriteString(styleHeader.Render(fmt.Sprintf("%-20s %6s %6s", "CÓDIGO", "QTD", "DIST")) + "\n")
	start, end := window(m.searchSelected, len(m.results), visibleRows)
	for i := start; i < end; i++ {
		r := m.results[i]
		line := fmt.Sprintf("%-20s %6d %6d", r.Item.Code, r.Item.Quantity, r.Distance)
		if i == m.searchSelected {
			line = styleSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder

	// Pestañas
	var tabs []string
	for i, t := range dominv.TabTitles() {
		if dominv.Tab(i) == m.histTab {
			tabs = append(tabs, styleTabActive.Render("["+t+"]"))
		} else {
			tabs = append(tabs, styleDim.Render(" "+t+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")

	if m.histFiltering {
		b.WriteString("Filtrar por código: " + m.histInput.View() + "\n")
		for i, s := range m.suggestions {
			if i >= 5 {
				break
			}
			line := fmt.Sprintf("%s (dist=%d)", s.Item.Code, s.Distance)
			if i == m.sugSelected {
				line = styleSelected.Render(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	} else if m.histCode != "" {
		b.WriteString(styleDim.Render("Filtro: "+m.histCode) + "\n")
	} else {
		b.WriteString(styleDim.Render("P filtra por código") + "\n")
	}

	entries := m.visibleHistory()
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-19s %-9s %5s  %s", "FECHA", "OPERACIÓN", "QTD", "CÓDIGO")) + "\n")
	if len(entries) == 0 {
		b.WriteString(styleDim.Render("Sin movimientos."))
		return b.String()
	}

	start, end := window(m.histSelected, len(entries), visibleRows)
	for i := start; i < end; i++ {
		h := entries[i]
		line := fmt.Sprintf("%-19s %-9s %5d  %s",
			h.Timestamp.Format("2006-01-02 15:04:05"), h.Kind.Label(), h.Quantity, h.Code)
		switch {
		case i == m.histSelected:
			line = styleSelected.Render(line)
		case h.Kind == entity.KindPurchase:
			line = stylePurchase.Render(line)
		case h.Kind == entity.KindSale:
			line = styleSale.Render(line)
		default:
			line = styleRegister.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewChart() string {
	points := m.uc.ChartData(m.chartDays)
	purchases := barChart("Compras", points, func(p dominv.ChartPoint) int { return p.Purchases }, stylePurchase)
	sales := barChart("Ventas", points, func(p dominv.ChartPoint) int { return p.Sales }, styleSale)
	title := styleTitle.Render(fmt.Sprintf("Movimientos de los últimos %d días", m.chartDays))
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, purchases, "   ", sales)
}

// barChart dibuja barras verticales de ancho fijo, una por día, escaladas
// al máximo de la serie. Días sin movimientos quedan como columna vacía.
func barChart(title string, points []dominv.ChartPoint, value func(dominv.ChartPoint) int, style lipgloss.Style) string {
	max := 0
	for _, p := range points {
		if v := value(p); v > max {
			max = v
		}
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(title) + "\n")
	for level := chartBarHeight; level >= 1; level-- {
		for _, p := range points {
			bar := "      "
			if max > 0 && value(p)*chartBarHeight >= level*max {
				bar = style.Render("████") + "  "
			}
			b.WriteString(bar)
		}
		b.WriteString("\n")
	}
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%-6s", p.Label))
	}
	b.WriteString("\n")
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%-6d", value(p)))
	}
	return b.String()
}

func (m Model) viewHotkeys() string {
	keys := []string{
		styleHeader.Render("Hotkeys"),
		" [C] Registrar",
		" [B] Buscar",
		" [H] Historial (↑/↓, ←/→ pestañas)",
		" [G] Gráfico",
		" [A] Comprar (item seleccionado)",
		" [V] Vender (item seleccionado)",
		" [E] Exportar reporte PDF",
		" [ESC] Volver / cancelar",
		" [X] Salir",
	}
	if m.mode == modeHistory {
		keys = append(keys, " [P] Filtrar historial")
	}
	return strings.Join(keys, "\n")
}

func (m Model) viewMessages() string {
	start := 0
	if len(m.messages) > visibleLogs {
		start = len(m.messages) - visibleLogs
	}
	return styleHeader.Render("Mensajes") + "\n" + strings.Join(m.messages[start:], "\n")
}

// window devuelve el rango [start, end) de filas visibles manteniendo la
// selección dentro de la ventana.
func window(selected, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := selected - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
