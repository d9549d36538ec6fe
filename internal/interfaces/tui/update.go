package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tu-usuario/relojes/internal/domain"
	"github.com/tu-usuario/relojes/internal/domain/entity"
	dominv "github.com/tu-usuario/relojes/internal/domain/inventory"
)

// Update es la función de transición: (estado, tecla) → (estado', efecto).
// Toda mutación de dominio pasa por el caso de uso; los fallos de
// validación se muestran como mensaje y conservan el input para corregir.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeInventory:
			return m.updateInventory(msg)
		case modeRegistration:
			return m.updateRegistration(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeHistory:
			return m.updateHistory(msg)
		case modeChart:
			return m.updateChart(msg)
		}
	}
	return m, nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

func (m Model) updateInventory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Sub-modo: cantidad para la compra/venta pendiente.
	if m.pending != opNone {
		switch msg.Type {
		case tea.KeyEsc:
			m.pushMessage("Operación cancelada.")
			m.resetPending()
			return m, nil
		case tea.KeyEnter:
			qty, err := strconv.Atoi(strings.TrimSpace(m.amountInput.Value()))
			if err != nil {
				m.pushMessage("Cantidad inválida.")
				return m, nil
			}
			m.confirmPending(qty)
			return m, nil
		}
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m, cmd
	}

	items := m.uc.Items()
	switch msg.String() {
	case "x", "X":
		return m, tea.Quit
	case "c", "C":
		return m.enterRegistration()
	case "b", "B":
		return m.enterSearch()
	case "h", "H":
		return m.enterHistory()
	case "g", "G":
		m.mode = modeChart
		return m, nil
	case "e", "E":
		m.exportReport()
		return m, nil
	case "a", "A":
		return m.startPending(opBuy, items)
	case "v", "V":
		return m.startPending(opSell, items)
	case "up":
		if m.invSelected > 0 {
			m.invSelected--
		}
		return m, nil
	case "down":
		if m.invSelected+1 < len(items) {
			m.invSelected++
		}
		return m, nil
	}
	return m, nil
}

func (m Model) startPending(op pendingOp, items []entity.Item) (tea.Model, tea.Cmd) {
	if len(items) == 0 || m.invSelected >= len(items) {
		m.pushMessage("No hay item seleccionado.")
		return m, nil
	}
	m.pending = op
	m.pendingCode = items[m.invSelected].Code
	m.amountInput.SetValue("")
	verb := "comprar"
	if op == opSell {
		verb = "vender"
	}
	m.pushMessage(fmt.Sprintf("Cantidad a %s para %s; Enter confirma, Esc cancela.", verb, m.pendingCode))
	return m, m.amountInput.Focus()
}

func (m *Model) confirmPending(qty int) {
	code := m.pendingCode
	var err error
	var done string
	if m.pending == opBuy {
		err = m.uc.Buy(code, qty)
		done = fmt.Sprintf("Compradas %d unidades de %s.", qty, code)
	} else {
		err = m.uc.Sell(code, qty)
		done = fmt.Sprintf("Vendidas %d unidades de %s.", qty, code)
	}
	switch {
	case err == nil:
		m.pushMessage(done)
	case isPersistence(err):
		// La mutación quedó en memoria; solo falló el guardado.
		m.pushMessage(done)
		m.pushMessage("Advertencia: " + err.Error())
	default:
		m.pushMessage("Error: " + err.Error())
		return // input conservado para corregir
	}
	m.resetPending()
}

func (m *Model) resetPending() {
	m.pending = opNone
	m.pendingCode = ""
	m.amountInput.SetValue("")
	m.amountInput.Blur()
}

func (m *Model) exportReport() {
	path, err := m.report.Export()
	if err != nil {
		m.pushMessage("Error al exportar: " + err.Error())
		return
	}
	m.pushMessage("Reporte exportado: " + path)
}

// ── Registro ──────────────────────────────────────────────────────────────────

func (m Model) enterRegistration() (tea.Model, tea.Cmd) {
	m.mode = modeRegistration
	m.regInput.SetValue("")
	m.regErr = ""
	return m, m.regInput.Focus()
}

func (m Model) updateRegistration(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.backToInventory()
	case tea.KeyEnter:
		parts := strings.Fields(m.regInput.Value())
		if len(parts) != 2 {
			m.regErr = "formato: CODIGO CANTIDAD"
			return m, nil
		}
		qty, err := strconv.Atoi(parts[1])
		if err != nil {
			m.regErr = "cantidad inválida"
			return m, nil
		}
		err = m.uc.Register(parts[0], qty)
		switch {
		case err == nil:
			m.pushMessage(fmt.Sprintf("Reloj %s registrado con %d unidades.", parts[0], qty))
		case isPersistence(err):
			m.pushMessage(fmt.Sprintf("Reloj %s registrado con %d unidades.", parts[0], qty))
			m.pushMessage("Advertencia: " + err.Error())
		default:
			// Error de validación: se queda en el modo con el buffer intacto.
			m.regErr = err.Error()
			return m, nil
		}
		return m.backToInventory()
	}
	var cmd tea.Cmd
	m.regInput, cmd = m.regInput.Update(msg)
	m.regErr = ""
	return m, cmd
}

// ── Búsqueda ──────────────────────────────────────────────────────────────────

func (m Model) enterSearch() (tea.Model, tea.Cmd) {
	m.mode = modeSearch
	m.searchInput.SetValue("")
	m.searchSelected = 0
	m.results = m.uc.Search("")
	return m, m.searchInput.Focus()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.backToInventory()
	case tea.KeyEnter:
		if len(m.results) == 0 {
			return m, nil
		}
		code := m.results[m.searchSelected].Item.Code
		for i, it := range m.uc.Items() {
			if it.Code == code {
				m.invSelected = i
				break
			}
		}
		m.pushMessage(fmt.Sprintf("Registro %s seleccionado. A compra, V vende.", code))
		return m.backToInventory()
	case tea.KeyUp:
		if m.searchSelected > 0 {
			m.searchSelected--
		}
		return m, nil
	case tea.KeyDown:
		if m.searchSelected+1 < len(m.results) {
			m.searchSelected++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Recalcular coincidencias en vivo con cada tecla.
	m.results = m.uc.Search(m.searchInput.Value())
	if m.searchSelected >= len(m.results) {
		m.searchSelected = 0
	}
	return m, cmd
}

// ── Historial ─────────────────────────────────────────────────────────────────

func (m Model) enterHistory() (tea.Model, tea.Cmd) {
	m.mode = modeHistory
	m.histTab = 0
	m.histSelected = 0
	m.histCode = ""
	m.histFiltering = false
	m.histInput.SetValue("")
	m.pushMessage("Historial: ↑/↓ navega, ←/→ pestañas, P filtra por código.")
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.histFiltering {
		return m.updateHistoryFilter(msg)
	}

	switch msg.String() {
	case "x", "X":
		return m, tea.Quit
	case "esc":
		return m.backToInventory()
	case "left":
		m.histTab = m.histTab.Prev()
		m.histSelected = 0
		return m, nil
	case "right":
		m.histTab = m.histTab.Next()
		m.histSelected = 0
		return m, nil
	case "up":
		if m.histSelected > 0 {
			m.histSelected--
		}
		return m, nil
	case "down":
		if m.histSelected+1 < len(m.visibleHistory()) {
			m.histSelected++
		}
		return m, nil
	case "p", "P":
		m.histFiltering = true
		m.histInput.SetValue("")
		m.sugSelected = 0
		m.suggestions = m.uc.SuggestHistoryCodes("")
		return m, m.histInput.Focus()
	}
	return m, nil
}

func (m Model) updateHistoryFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.histFiltering = false
		m.histInput.Blur()
		if m.histCode != "" {
			m.histCode = ""
			m.pushMessage("Filtro eliminado. Se muestra todo el historial.")
		}
		m.histSelected = 0
		return m, nil
	case tea.KeyEnter:
		code := strings.TrimSpace(m.histInput.Value())
		if len(m.suggestions) > 0 {
			code = m.suggestions[m.sugSelected].Item.Code
		}
		m.applyHistoryFilter(code)
		m.histFiltering = false
		m.histInput.Blur()
		return m, nil
	case tea.KeyUp:
		if m.sugSelected > 0 {
			m.sugSelected--
		}
		return m, nil
	case tea.KeyDown:
		if m.sugSelected+1 < len(m.suggestions) {
			m.sugSelected++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.histInput, cmd = m.histInput.Update(msg)
	m.suggestions = m.uc.SuggestHistoryCodes(m.histInput.Value())
	if m.sugSelected >= len(m.suggestions) {
		m.sugSelected = 0
	}
	return m, cmd
}

func (m *Model) applyHistoryFilter(code string) {
	m.histSelected = 0
	if code == "" {
		m.histCode = ""
		m.pushMessage("Filtro eliminado. Se muestra todo el historial.")
		return
	}
	if len(m.uc.History(dominv.Filter{Code: code})) == 0 {
		m.histCode = ""
		m.pushMessage("No hay historial para ese código.")
		return
	}
	m.histCode = code
	m.pushMessage("Historial filtrado por " + code + ".")
}

// ── Gráfico ───────────────────────────────────────────────────────────────────

func (m Model) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "x", "X":
		return m, tea.Quit
	case "esc":
		return m.backToInventory()
	}
	return m, nil
}

// ── Comunes ───────────────────────────────────────────────────────────────────

// backToInventory vuelve al modo inicial descartando todo input transitorio.
func (m Model) backToInventory() (tea.Model, tea.Cmd) {
	m.mode = modeInventory
	m.resetPending()
	m.regInput.SetValue("")
	m.regInput.Blur()
	m.regErr = ""
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.results = nil
	m.searchSelected = 0
	m.histCode = ""
	m.histFiltering = false
	m.histInput.SetValue("")
	m.histInput.Blur()
	m.suggestions = nil
	m.sugSelected = 0
	if n := len(m.uc.Items()); m.invSelected >= n && n > 0 {
		m.invSelected = n - 1
	}
	return m, nil
}

func isPersistence(err error) bool {
	var pe *domain.PersistenceError
	return errors.As(err, &pe)
}
