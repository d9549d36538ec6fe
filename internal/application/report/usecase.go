package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/relojes/internal/domain/entity"
	"github.com/tu-usuario/relojes/pkg/logger"
)

// Cuántos movimientos recientes incluye el reporte.
const reportMovements = 20

// UseCase exporta el estado actual del inventario como PDF.
type UseCase struct {
	inv *entity.Inventory
	gen StockReportGenerator
	dir string
	log *logger.Logger
	now func() time.Time
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(inv *entity.Inventory, gen StockReportGenerator, outputDir string, log *logger.Logger) *UseCase {
	return &UseCase{inv: inv, gen: gen, dir: outputDir, log: log, now: time.Now}
}

// Export genera el PDF con el stock actual y los últimos movimientos y lo
// escribe en el directorio configurado. Devuelve la ruta del archivo.
func (uc *UseCase) Export() (string, error) {
	history := uc.inv.History()
	if len(history) > reportMovements {
		history = history[len(history)-reportMovements:]
	}

	data, err := uc.gen.Generate(uc.inv.Items(), history, uc.now())
	if err != nil {
		uc.log.Error().Err(err).Msg("no se pudo generar el reporte")
		return "", fmt.Errorf("generar reporte: %w", err)
	}

	name := fmt.Sprintf("reporte-stock-%s.pdf", uuid.New().String()[:8])
	path := filepath.Join(uc.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		uc.log.Error().Err(err).Str("path", path).Msg("no se pudo escribir el reporte")
		return "", fmt.Errorf("escribir reporte: %w", err)
	}

	uc.log.Info().Str("path", path).Int("items", uc.inv.Len()).Msg("reporte exportado")
	return path, nil
}
