package usecase_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/relojes/internal/application/usecase"
	"github.com/tu-usuario/relojes/internal/domain"
	"github.com/tu-usuario/relojes/internal/domain/entity"
	dominv "github.com/tu-usuario/relojes/internal/domain/inventory"
	"github.com/tu-usuario/relojes/internal/infrastructure/jsonfile"
	"github.com/tu-usuario/relojes/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Out: io.Discard})
}

// newUseCase construye el caso de uso con un store JSON real en un
// directorio temporal y devuelve también el store para verificar disco.
func newUseCase(t *testing.T) (*usecase.InventoryUseCase, *jsonfile.Store) {
	t.Helper()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "inventario.json"))
	inv, err := store.Load()
	require.NoError(t, err)
	return usecase.NewInventoryUseCase(inv, store, testLogger()), store
}

// failingRepo siempre falla al guardar; Load no se usa.
type failingRepo struct{}

func (failingRepo) Load() (*entity.Inventory, error) { return entity.NewInventory(), nil }
func (failingRepo) Save(*entity.Inventory) error {
	return &domain.PersistenceError{Op: "save", Err: errors.New("disco lleno")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacción lógica: validar → mutar → historial → guardar
// ──────────────────────────────────────────────────────────────────────────────

func TestUseCase_SecuenciaCompletaPersistida(t *testing.T) {
	uc, store := newUseCase(t)

	require.NoError(t, uc.Register("CLK-1", 10))
	require.NoError(t, uc.Buy("CLK-1", 5))
	require.NoError(t, uc.Sell("CLK-1", 3))

	it, ok := uc.Get("CLK-1")
	require.True(t, ok)
	assert.Equal(t, 12, it.Quantity)

	// Cada mutación guardó: recargar desde disco reproduce el estado.
	fromDisk, err := store.Load()
	require.NoError(t, err)
	loaded, ok := fromDisk.Get("CLK-1")
	require.True(t, ok)
	assert.Equal(t, 12, loaded.Quantity)
	assert.Len(t, fromDisk.History(), 3)
}

func TestUseCase_ValidacionRechazadaNoTocaDisco(t *testing.T) {
	uc, store := newUseCase(t)
	require.NoError(t, uc.Register("CLK-1", 10))

	require.ErrorIs(t, uc.Sell("CLK-1", 999), domain.ErrInsufficientStock)
	require.ErrorIs(t, uc.Register("CLK-1", 5), domain.ErrDuplicateCode)
	require.ErrorIs(t, uc.Buy("NADA", 1), domain.ErrUnknownCode)

	fromDisk, err := store.Load()
	require.NoError(t, err)
	it, _ := fromDisk.Get("CLK-1")
	assert.Equal(t, 10, it.Quantity)
	assert.Len(t, fromDisk.History(), 1, "solo el registro inicial llegó a disco")
}

// Si el guardado falla, la operación devuelve el error de persistencia
// pero la mutación en memoria se conserva (la sesión sigue siendo usable).
func TestUseCase_GuardadoFallidoConservaMutacionEnMemoria(t *testing.T) {
	inv := entity.NewInventory()
	uc := usecase.NewInventoryUseCase(inv, failingRepo{}, testLogger())

	err := uc.Register("CLK-1", 10)
	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)

	it, ok := uc.Get("CLK-1")
	require.True(t, ok, "la mutación debe quedar en memoria")
	assert.Equal(t, 10, it.Quantity)
	assert.Len(t, uc.History(dominv.Filter{}), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestUseCase_SearchEsPuro(t *testing.T) {
	uc, store := newUseCase(t)
	require.NoError(t, uc.Register("CLK-1", 10))
	require.NoError(t, uc.Register("CLK-2", 5))
	require.NoError(t, uc.Register("ABC-9", 1))

	results := uc.Search("clk")
	require.Len(t, results, 2)
	assert.Equal(t, "CLK-1", results[0].Item.Code)
	assert.Equal(t, "CLK-2", results[1].Item.Code)

	// Sin efectos: el historial no crece por buscar.
	fromDisk, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, fromDisk.History(), 3)
}

func TestUseCase_HistoryFiltradoPorPestanaYCodigo(t *testing.T) {
	uc, _ := newUseCase(t)
	require.NoError(t, uc.Register("CLK-1", 10))
	require.NoError(t, uc.Sell("CLK-1", 2))
	require.NoError(t, uc.Sell("CLK-1", 1))
	require.NoError(t, uc.Register("CLK-2", 4))
	require.NoError(t, uc.Sell("CLK-2", 3))

	got := uc.History(dominv.Filter{Tab: dominv.TabSales, Code: "CLK-1"})
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Quantity, "orden cronológico original")
	assert.Equal(t, 1, got[1].Quantity)
}

func TestUseCase_ChartDataVentanaVacia(t *testing.T) {
	uc, _ := newUseCase(t)

	points := uc.ChartData(7)
	require.Len(t, points, 7)
	for _, p := range points {
		assert.Zero(t, p.Purchases)
		assert.Zero(t, p.Sales)
	}
}

func TestUseCase_SuggestHistoryCodes(t *testing.T) {
	uc, _ := newUseCase(t)
	require.NoError(t, uc.Register("CLK-1", 1))
	require.NoError(t, uc.Register("AAA-7", 1))

	got := uc.SuggestHistoryCodes("CLK-2")
	require.Len(t, got, 2)
	assert.Equal(t, "CLK-1", got[0].Item.Code)
}
