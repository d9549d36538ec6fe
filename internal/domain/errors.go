package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Se recuperan localmente:
// la capa TUI los muestra como mensaje de estado y conserva el input.
var (
	ErrInvalidCode       = errors.New("código inválido")
	ErrDuplicateCode     = errors.New("el código ya está registrado")
	ErrUnknownCode       = errors.New("código no encontrado")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// PersistenceError envuelve un fallo de carga o guardado del archivo de datos.
// En Load es fatal (no se puede arrancar con estado desconocido); en Save es
// una advertencia: el estado en memoria sigue siendo la fuente de verdad.
type PersistenceError struct {
	Op  string // "load" o "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistencia (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
