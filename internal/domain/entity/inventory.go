package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/relojes/internal/domain"
)

// Inventory es la raíz de agregado: posee en exclusiva los items y el
// historial. Solo se muta a través de Register/Buy/Sell, que validan las
// invariantes y anexan la entrada de historial correspondiente. El reloj
// (now) se recibe como argumento para que los tests sean deterministas.
type Inventory struct {
	items   map[string]*Item
	history []HistoryEntry
}

// NewInventory crea un inventario vacío (bootstrap de primer arranque).
func NewInventory() *Inventory {
	return &Inventory{items: make(map[string]*Item)}
}

// RestoreInventory rehidrata el agregado desde la capa de persistencia.
func RestoreInventory(items []Item, history []HistoryEntry) *Inventory {
	inv := NewInventory()
	for i := range items {
		it := items[i]
		inv.items[it.Code] = &it
	}
	inv.history = append(inv.history, history...)
	return inv
}

// Get busca un item por código exacto. O(1).
func (inv *Inventory) Get(code string) (Item, bool) {
	it, ok := inv.items[code]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Items devuelve los items ordenados por código (listado estable).
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.items))
	for _, it := range inv.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Len devuelve la cantidad de items registrados.
func (inv *Inventory) Len() int { return len(inv.items) }

// History devuelve el historial completo en orden cronológico.
func (inv *Inventory) History() []HistoryEntry {
	out := make([]HistoryEntry, len(inv.history))
	copy(out, inv.history)
	return out
}

// HistoryCodes devuelve los códigos únicos presentes en el historial,
// ordenados. Alimenta las sugerencias del filtro de historial.
func (inv *Inventory) HistoryCodes() []string {
	seen := make(map[string]struct{})
	for _, h := range inv.history {
		seen[h.Code] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Register da de alta un modelo nuevo con su stock inicial (>= 0).
func (inv *Inventory) Register(code string, qty int, now time.Time) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.ErrInvalidCode
	}
	if qty < 0 {
		return domain.ErrInvalidQuantity
	}
	if _, ok := inv.items[code]; ok {
		return domain.ErrDuplicateCode
	}
	inv.items[code] = &Item{Code: code, Quantity: qty}
	inv.append(code, KindRegistration, qty, now)
	return nil
}

// Buy suma qty unidades (> 0) al stock de un modelo ya registrado.
func (inv *Inventory) Buy(code string, qty int, now time.Time) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	it, ok := inv.items[code]
	if !ok {
		return domain.ErrUnknownCode
	}
	it.Quantity += qty
	inv.append(code, KindPurchase, qty, now)
	return nil
}

// Sell resta qty unidades (> 0) del stock. Nunca deja el stock negativo:
// si qty supera el disponible falla con ErrInsufficientStock y no anexa
// entrada de historial.
func (inv *Inventory) Sell(code string, qty int, now time.Time) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	it, ok := inv.items[code]
	if !ok {
		return domain.ErrUnknownCode
	}
	if it.Quantity < qty {
		return domain.ErrInsufficientStock
	}
	it.Quantity -= qty
	inv.append(code, KindSale, qty, now)
	return nil
}

func (inv *Inventory) append(code string, kind Kind, qty int, now time.Time) {
	inv.history = append(inv.history, HistoryEntry{
		Code:      code,
		Kind:      kind,
		Quantity:  qty,
		Timestamp: now,
	})
}
