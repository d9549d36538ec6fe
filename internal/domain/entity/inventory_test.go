package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/relojes/internal/domain"
	"github.com/tu-usuario/relojes/internal/domain/entity"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaItemYEntradaDeHistorial(t *testing.T) {
	inv := entity.NewInventory()

	err := inv.Register("CLK-1", 10, testNow)
	require.NoError(t, err)

	it, ok := inv.Get("CLK-1")
	require.True(t, ok, "el item debe existir tras el registro")
	assert.Equal(t, 10, it.Quantity)

	hist := inv.History()
	require.Len(t, hist, 1)
	assert.Equal(t, entity.KindRegistration, hist[0].Kind)
	assert.Equal(t, 10, hist[0].Quantity)
	assert.Equal(t, testNow, hist[0].Timestamp)
}

func TestRegister_CodigoDuplicadoNoModificaElExistente(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 10, testNow))

	err := inv.Register("CLK-1", 99, testNow)
	require.ErrorIs(t, err, domain.ErrDuplicateCode)

	it, _ := inv.Get("CLK-1")
	assert.Equal(t, 10, it.Quantity, "el item existente no debe cambiar")
	assert.Len(t, inv.History(), 1, "no debe anexarse historial en un registro fallido")
}

func TestRegister_Invalidos(t *testing.T) {
	inv := entity.NewInventory()

	assert.ErrorIs(t, inv.Register("", 5, testNow), domain.ErrInvalidCode)
	assert.ErrorIs(t, inv.Register("   ", 5, testNow), domain.ErrInvalidCode)
	assert.ErrorIs(t, inv.Register("CLK-1", -1, testNow), domain.ErrInvalidQuantity)
	assert.Equal(t, 0, inv.Len())
}

func TestRegister_CantidadCeroEsValida(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 0, testNow))
	it, _ := inv.Get("CLK-1")
	assert.Equal(t, 0, it.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Buy / Sell
// ──────────────────────────────────────────────────────────────────────────────

func TestBuySell_SecuenciaDelEjemplo(t *testing.T) {
	// register(CLK-1, 10) → buy(CLK-1, 5) → sell(CLK-1, 3) ⇒ 12 unidades.
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 10, testNow))
	require.NoError(t, inv.Buy("CLK-1", 5, testNow))
	require.NoError(t, inv.Sell("CLK-1", 3, testNow))

	it, _ := inv.Get("CLK-1")
	assert.Equal(t, 12, it.Quantity)

	hist := inv.History()
	require.Len(t, hist, 3)
	assert.Equal(t, entity.KindRegistration, hist[0].Kind)
	assert.Equal(t, 10, hist[0].Quantity)
	assert.Equal(t, entity.KindPurchase, hist[1].Kind)
	assert.Equal(t, 5, hist[1].Quantity)
	assert.Equal(t, entity.KindSale, hist[2].Kind)
	assert.Equal(t, 3, hist[2].Quantity)
}

func TestBuy_CodigoDesconocido(t *testing.T) {
	inv := entity.NewInventory()
	err := inv.Buy("NADA", 5, testNow)
	assert.ErrorIs(t, err, domain.ErrUnknownCode)
	assert.Empty(t, inv.History())
}

func TestSell_StockInsuficienteNoCambiaNada(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 10, testNow))
	require.NoError(t, inv.Buy("CLK-1", 2, testNow))

	err := inv.Sell("CLK-1", 999, testNow)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	it, _ := inv.Get("CLK-1")
	assert.Equal(t, 12, it.Quantity, "la cantidad debe quedar intacta")
	assert.Len(t, inv.History(), 2, "la venta rechazada no anexa historial")
}

func TestSell_CantidadExactaDejaStockEnCero(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 7, testNow))
	require.NoError(t, inv.Sell("CLK-1", 7, testNow))
	it, _ := inv.Get("CLK-1")
	assert.Equal(t, 0, it.Quantity)
}

func TestBuySell_CantidadesNoPositivas(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 5, testNow))

	assert.ErrorIs(t, inv.Buy("CLK-1", 0, testNow), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, inv.Buy("CLK-1", -3, testNow), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, inv.Sell("CLK-1", 0, testNow), domain.ErrInvalidQuantity)
	assert.Len(t, inv.History(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consistencia agregado ↔ historial
// ──────────────────────────────────────────────────────────────────────────────

// La cantidad de cada item debe ser igual a reproducir su historial:
// registro + compras − ventas.
func TestHistory_ReproducirElHistorialDaElStockActual(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 10, testNow))
	require.NoError(t, inv.Register("CLK-2", 3, testNow))
	require.NoError(t, inv.Buy("CLK-1", 5, testNow))
	require.NoError(t, inv.Sell("CLK-1", 3, testNow))
	require.NoError(t, inv.Buy("CLK-2", 4, testNow))
	require.NoError(t, inv.Sell("CLK-2", 7, testNow))
	_ = inv.Sell("CLK-1", 999, testNow) // rechazada, no cuenta

	replayed := map[string]int{}
	for _, h := range inv.History() {
		switch h.Kind {
		case entity.KindRegistration, entity.KindPurchase:
			replayed[h.Code] += h.Quantity
		case entity.KindSale:
			replayed[h.Code] -= h.Quantity
		}
	}
	for _, it := range inv.Items() {
		assert.Equal(t, replayed[it.Code], it.Quantity, "replay de %s", it.Code)
	}
}

func TestItems_ListadoEstablePorCodigo(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("ZZZ-9", 1, testNow))
	require.NoError(t, inv.Register("ABC-1", 2, testNow))
	require.NoError(t, inv.Register("MMM-5", 3, testNow))

	items := inv.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "ABC-1", items[0].Code)
	assert.Equal(t, "MMM-5", items[1].Code)
	assert.Equal(t, "ZZZ-9", items[2].Code)
}

func TestHistoryCodes_UnicosYOrdenados(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("B-2", 5, testNow))
	require.NoError(t, inv.Register("A-1", 5, testNow))
	require.NoError(t, inv.Buy("B-2", 1, testNow))
	require.NoError(t, inv.Buy("B-2", 1, testNow))

	assert.Equal(t, []string{"A-1", "B-2"}, inv.HistoryCodes())
}
