package inventory

import "github.com/tu-usuario/relojes/internal/domain/entity"

// Tab es la pestaña de filtro del historial.
type Tab int

const (
	TabAll Tab = iota
	TabPurchases
	TabSales
	TabRegistrations
)

// TabTitles devuelve los títulos de pestaña en orden de ciclo.
func TabTitles() []string {
	return []string{"Todos", "Compras", "Ventas", "Registros"}
}

// Title devuelve el título legible de la pestaña.
func (t Tab) Title() string { return TabTitles()[int(t)] }

// Next cicla a la pestaña siguiente (Todos→Compras→Ventas→Registros→Todos).
func (t Tab) Next() Tab { return (t + 1) % 4 }

// Prev cicla a la pestaña anterior.
func (t Tab) Prev() Tab { return (t + 3) % 4 }

func (t Tab) kind() (entity.Kind, bool) {
	switch t {
	case TabPurchases:
		return entity.KindPurchase, true
	case TabSales:
		return entity.KindSale, true
	case TabRegistrations:
		return entity.KindRegistration, true
	}
	return "", false
}

// Filter describe qué entradas de historial son visibles: una pestaña de
// tipo y, opcionalmente, un código exacto. El cero value no filtra nada.
type Filter struct {
	Tab  Tab
	Code string // vacío = sin filtro por código
}

// FilterHistory devuelve las entradas que pasan el filtro, conservando el
// orden cronológico original.
func FilterHistory(inv *entity.Inventory, f Filter) []entity.HistoryEntry {
	kind, byKind := f.Tab.kind()
	var out []entity.HistoryEntry
	for _, h := range inv.History() {
		if byKind && h.Kind != kind {
			continue
		}
		if f.Code != "" && h.Code != f.Code {
			continue
		}
		out = append(out, h)
	}
	return out
}
