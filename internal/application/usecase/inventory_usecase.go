package usecase

import (
	"time"

	"github.com/tu-usuario/relojes/internal/domain/entity"
	dominv "github.com/tu-usuario/relojes/internal/domain/inventory"
	"github.com/tu-usuario/relojes/internal/domain/repository"
	"github.com/tu-usuario/relojes/pkg/logger"
)

// InventoryUseCase orquesta las operaciones de dominio sobre el agregado y
// su persistencia. Cada mutación es una transacción lógica: validar →
// mutar en memoria → anexar historial → guardar. Si el guardado falla, la
// mutación en memoria se conserva (disponibilidad sobre consistencia con
// disco) y el error se devuelve para que la interfaz lo muestre.
type InventoryUseCase struct {
	inv  *entity.Inventory
	repo repository.InventoryRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewInventoryUseCase construye el caso de uso sobre un agregado ya cargado.
func NewInventoryUseCase(inv *entity.Inventory, repo repository.InventoryRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{inv: inv, repo: repo, log: log, now: time.Now}
}

// Register da de alta un modelo nuevo con stock inicial y lo persiste.
func (uc *InventoryUseCase) Register(code string, qty int) error {
	if err := uc.inv.Register(code, qty, uc.now()); err != nil {
		uc.log.Debug().Str("code", code).Int("qty", qty).Err(err).Msg("registro rechazado")
		return err
	}
	uc.log.Info().Str("code", code).Int("qty", qty).Msg("modelo registrado")
	return uc.persist()
}

// Buy suma stock a un modelo existente y persiste.
func (uc *InventoryUseCase) Buy(code string, qty int) error {
	if err := uc.inv.Buy(code, qty, uc.now()); err != nil {
		uc.log.Debug().Str("code", code).Int("qty", qty).Err(err).Msg("compra rechazada")
		return err
	}
	uc.log.Info().Str("code", code).Int("qty", qty).Msg("compra registrada")
	return uc.persist()
}

// Sell descuenta stock de un modelo existente y persiste.
func (uc *InventoryUseCase) Sell(code string, qty int) error {
	if err := uc.inv.Sell(code, qty, uc.now()); err != nil {
		uc.log.Debug().Str("code", code).Int("qty", qty).Err(err).Msg("venta rechazada")
		return err
	}
	uc.log.Info().Str("code", code).Int("qty", qty).Msg("venta registrada")
	return uc.persist()
}

// Items devuelve el listado estable (por código) del inventario.
func (uc *InventoryUseCase) Items() []entity.Item { return uc.inv.Items() }

// Get busca un item por código exacto.
func (uc *InventoryUseCase) Get(code string) (entity.Item, bool) { return uc.inv.Get(code) }

// Search rankea los items contra la consulta. Pura, sin efectos.
func (uc *InventoryUseCase) Search(query string) []dominv.SearchResult {
	return dominv.Search(uc.inv, query)
}

// History devuelve las entradas visibles bajo el filtro, en orden cronológico.
func (uc *InventoryUseCase) History(f dominv.Filter) []entity.HistoryEntry {
	return dominv.FilterHistory(uc.inv, f)
}

// HistoryCodes devuelve los códigos únicos del historial, ordenados.
func (uc *InventoryUseCase) HistoryCodes() []string { return uc.inv.HistoryCodes() }

// SuggestHistoryCodes rankea los códigos del historial contra la consulta.
func (uc *InventoryUseCase) SuggestHistoryCodes(query string) []dominv.SearchResult {
	return dominv.SuggestCodes(uc.inv.HistoryCodes(), query)
}

// ChartData agrega compras y ventas por día para los últimos days días.
func (uc *InventoryUseCase) ChartData(days int) []dominv.ChartPoint {
	return dominv.ChartData(uc.inv, days, uc.now())
}

func (uc *InventoryUseCase) persist() error {
	if err := uc.repo.Save(uc.inv); err != nil {
		// El estado en memoria queda como fuente de verdad; el siguiente
		// guardado exitoso reconcilia el archivo.
		uc.log.Warn().Err(err).Msg("no se pudo guardar el inventario")
		return err
	}
	return nil
}
