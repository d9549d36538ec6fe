package entity

import "time"

// Kind clasifica la operación que produjo una entrada de historial.
// Los literales son los que se persisten en el archivo de datos.
type Kind string

const (
	KindRegistration Kind = "REGISTRO" // alta de un modelo nuevo
	KindPurchase     Kind = "COMPRA"   // entrada de stock
	KindSale         Kind = "VENTA"    // salida de stock
)

// Valid indica si el literal corresponde a un tipo conocido.
func (k Kind) Valid() bool {
	switch k {
	case KindRegistration, KindPurchase, KindSale:
		return true
	}
	return false
}

// Label devuelve el nombre legible para la interfaz.
func (k Kind) Label() string {
	switch k {
	case KindRegistration:
		return "Registro"
	case KindPurchase:
		return "Compra"
	case KindSale:
		return "Venta"
	}
	return string(k)
}

// HistoryEntry es el registro inmutable de un movimiento de stock.
// Quantity es la magnitud del cambio; el signo lo da Kind (REGISTRO y
// COMPRA suman, VENTA resta). El historial es append-only: las entradas
// nunca se modifican ni se borran, y el orden de inserción es el orden
// cronológico.
type HistoryEntry struct {
	Code      string
	Kind      Kind
	Quantity  int
	Timestamp time.Time
}
