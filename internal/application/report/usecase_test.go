package report_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/relojes/internal/application/report"
	"github.com/tu-usuario/relojes/internal/domain/entity"
	"github.com/tu-usuario/relojes/pkg/logger"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

// fakeGenerator registra lo que recibe y devuelve bytes fijos.
type fakeGenerator struct {
	items     []entity.Item
	movements []entity.HistoryEntry
	err       error
}

func (g *fakeGenerator) Generate(items []entity.Item, movements []entity.HistoryEntry, _ time.Time) ([]byte, error) {
	g.items = items
	g.movements = movements
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Out: io.Discard})
}

func TestExport_EscribeElArchivoEnElDirectorio(t *testing.T) {
	dir := t.TempDir()
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 10, testNow))

	gen := &fakeGenerator{}
	uc := report.NewUseCase(inv, gen, dir, testLogger())

	path, err := uc.Export()
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), "reporte-stock-")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))

	require.Len(t, gen.items, 1)
	assert.Equal(t, "CLK-1", gen.items[0].Code)
}

func TestExport_RecortaLosMovimientosRecientes(t *testing.T) {
	inv := entity.NewInventory()
	require.NoError(t, inv.Register("CLK-1", 1000, testNow))
	for i := 0; i < 30; i++ {
		require.NoError(t, inv.Sell("CLK-1", 1, testNow))
	}

	gen := &fakeGenerator{}
	uc := report.NewUseCase(inv, gen, t.TempDir(), testLogger())

	_, err := uc.Export()
	require.NoError(t, err)
	assert.Len(t, gen.movements, 20, "solo los últimos movimientos van al reporte")
	assert.Equal(t, entity.KindSale, gen.movements[0].Kind)
}

func TestExport_ErrorDelGenerador(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("sin fuente")}
	uc := report.NewUseCase(entity.NewInventory(), gen, t.TempDir(), testLogger())

	_, err := uc.Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generar reporte")
}

func TestExport_DirectorioInexistente(t *testing.T) {
	gen := &fakeGenerator{}
	uc := report.NewUseCase(entity.NewInventory(), gen, filepath.Join(t.TempDir(), "nope"), testLogger())

	_, err := uc.Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escribir reporte")
}
