package report

import (
	"time"

	"github.com/tu-usuario/relojes/internal/domain/entity"
)

// StockReportGenerator define el puerto de generación del reporte de stock.
// La implementación (Maroto) vive en infrastructure/pdf.
type StockReportGenerator interface {
	Generate(items []entity.Item, lastMovements []entity.HistoryEntry, generatedAt time.Time) ([]byte, error)
}
