package doses

import (
	"errors"
	"fmt"
)

// ErrInvalidMedication es un error del caller: el set de medicamentos es cerrado.
var ErrInvalidMedication = errors.New("invalid medication")

func invalidMedication(id string) error {
	return fmt.Errorf("%w: %q", ErrInvalidMedication, id)
}

// LoadError: el payload guardado no se pudo leer. Nunca sale de Load,
// solo se reporta al logger y el log arranca vacío.
type LoadError struct {
	Key string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PersistError: falló una escritura o borrado. La sesión sigue con el
// estado en memoria, el store queda con el valor anterior.
type PersistError struct {
	Op  string // "save" | "clear"
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
