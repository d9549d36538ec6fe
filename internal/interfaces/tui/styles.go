package tui

import "github.com/charmbracelet/lipgloss"

// Estilos compartidos del render. Colores ANSI básicos para que la paleta
// funcione en cualquier terminal.
var (
	styleLogo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	styleHeader = lipgloss.NewStyle().
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.Color("7")).
			Foreground(lipgloss.Color("0"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	stylePurchase = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleSale     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleRegister = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))
)
