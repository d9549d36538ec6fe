// Package tui implementa la interfaz de terminal como un modelo Bubble Tea:
// Update es la función de transición del autómata modal (determinista:
// estado + tecla + input transitorio determinan el estado siguiente) y View
// el despachador de render (lectura pura del estado, sin mutación).
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tu-usuario/relojes/internal/application/report"
	"github.com/tu-usuario/relojes/internal/application/usecase"
	"github.com/tu-usuario/relojes/internal/domain/entity"
	dominv "github.com/tu-usuario/relojes/internal/domain/inventory"
	"github.com/tu-usuario/relojes/pkg/logger"
)

// mode es el modo activo de la interfaz. Cada modo posee su propio input
// transitorio, que se descarta al salir (sin fugas entre modos).
type mode int

const (
	modeInventory mode = iota // listado de stock (modo inicial)
	modeRegistration
	modeSearch
	modeHistory
	modeChart
)

// pendingOp es la operación pendiente sobre el item seleccionado del
// inventario: tras A/V se pide la cantidad sin salir del modo Inventory.
type pendingOp int

const (
	opNone pendingOp = iota
	opBuy
	opSell
)

const maxMessages = 50

// Model es el estado completo de la interfaz.
type Model struct {
	uc        *usecase.InventoryUseCase
	report    *report.UseCase
	log       *logger.Logger
	chartDays int

	mode     mode
	width    int
	height   int
	messages []string

	// Inventario
	invSelected int
	pending     pendingOp
	pendingCode string
	amountInput textinput.Model

	// Registro
	regInput textinput.Model
	regErr   string

	// Búsqueda
	searchInput    textinput.Model
	results        []dominv.SearchResult
	searchSelected int

	// Historial
	histTab       dominv.Tab
	histSelected  int
	histCode      string // filtro por código aplicado ("" = sin filtro)
	histFiltering bool   // sub-modo de entrada del filtro
	histInput     textinput.Model
	suggestions   []dominv.SearchResult
	sugSelected   int
}

// NewModel construye el modelo inicial (modo Inventario).
func NewModel(uc *usecase.InventoryUseCase, rep *report.UseCase, log *logger.Logger, chartDays int) Model {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		return ti
	}
	return Model{
		uc:          uc,
		report:      rep,
		log:         log,
		chartDays:   chartDays,
		mode:        modeInventory,
		messages:    []string{"¡Bienvenido al inventario de relojes!"},
		amountInput: newInput("cantidad"),
		regInput:    newInput("CODIGO CANTIDAD"),
		searchInput: newInput("código a buscar"),
		histInput:   newInput("código"),
	}
}

// Init arranca el parpadeo del cursor de los inputs.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// pushMessage agrega un mensaje al pie de la pantalla.
func (m *Model) pushMessage(s string) {
	m.messages = append(m.messages, s)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

// visibleHistory devuelve las entradas bajo el filtro activo (pestaña + código).
func (m Model) visibleHistory() []entity.HistoryEntry {
	return m.uc.History(dominv.Filter{Tab: m.histTab, Code: m.histCode})
}
