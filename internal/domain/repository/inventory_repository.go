package repository

import "github.com/tu-usuario/relojes/internal/domain/entity"

// InventoryRepository define el puerto de persistencia del agregado completo.
// Load devuelve un inventario vacío (sin error) si todavía no existe archivo;
// un archivo presente pero ilegible es *domain.PersistenceError. Save
// sobrescribe el archivo entero con el estado actual.
type InventoryRepository interface {
	Load() (*entity.Inventory, error)
	Save(inv *entity.Inventory) error
}
