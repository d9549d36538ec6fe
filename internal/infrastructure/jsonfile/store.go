// Package jsonfile implementa la pasarela de persistencia sobre un único
// archivo JSON. El archivo completo se reescribe en cada mutación; no hay
// escritura atómica (rename), un corte a mitad de escritura puede dejar el
// archivo corrupto. Limitación aceptada para una herramienta local de un
// solo usuario.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tu-usuario/relojes/internal/domain"
	"github.com/tu-usuario/relojes/internal/domain/entity"
	"github.com/tu-usuario/relojes/internal/domain/repository"
)

// TimeLayout es el formato de los timestamps persistidos.
const TimeLayout = "2006-01-02 15:04:05"

var _ repository.InventoryRepository = (*Store)(nil)

// Store persiste el agregado en un archivo JSON con dos colecciones:
// items (ordenados por código) e history (orden cronológico).
type Store struct {
	path string
}

// NewStore construye la pasarela sobre la ruta indicada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Esquema del archivo. Se mapea explícitamente desde/hacia las entidades
// para que el formato en disco no dependa de la forma interna del agregado.
type persistDoc struct {
	Items   []persistItem  `json:"items"`
	History []persistEntry `json:"history"`
}

type persistItem struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type persistEntry struct {
	Code      string `json:"code"`
	Kind      string `json:"kind"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"timestamp"`
}

// Load lee el archivo y rehidrata el agregado. La ausencia del archivo no
// es un error: es el bootstrap de primer arranque.
func (s *Store) Load() (*entity.Inventory, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entity.NewInventory(), nil
		}
		return nil, &domain.PersistenceError{Op: "load", Err: err}
	}

	var doc persistDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.PersistenceError{Op: "load", Err: fmt.Errorf("archivo malformado %s: %w", s.path, err)}
	}

	items := make([]entity.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, entity.Item{Code: it.Code, Quantity: it.Quantity})
	}

	history := make([]entity.HistoryEntry, 0, len(doc.History))
	for _, h := range doc.History {
		kind := entity.Kind(h.Kind)
		if !kind.Valid() {
			return nil, &domain.PersistenceError{Op: "load", Err: fmt.Errorf("tipo de movimiento desconocido %q", h.Kind)}
		}
		ts, err := time.ParseInLocation(TimeLayout, h.Timestamp, time.Local)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "load", Err: fmt.Errorf("timestamp inválido %q: %w", h.Timestamp, err)}
		}
		history = append(history, entity.HistoryEntry{
			Code:      h.Code,
			Kind:      kind,
			Quantity:  h.Quantity,
			Timestamp: ts,
		})
	}

	return entity.RestoreInventory(items, history), nil
}

// Save serializa el agregado completo y sobrescribe el archivo.
func (s *Store) Save(inv *entity.Inventory) error {
	items := inv.Items()
	history := inv.History()

	doc := persistDoc{
		Items:   make([]persistItem, 0, len(items)),
		History: make([]persistEntry, 0, len(history)),
	}
	for _, it := range items {
		doc.Items = append(doc.Items, persistItem{Code: it.Code, Quantity: it.Quantity})
	}
	for _, h := range history {
		doc.History = append(doc.History, persistEntry{
			Code:      h.Code,
			Kind:      string(h.Kind),
			Quantity:  h.Quantity,
			Timestamp: h.Timestamp.Format(TimeLayout),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	return nil
}
