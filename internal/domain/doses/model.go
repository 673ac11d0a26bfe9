package doses

import (
	"fmt"
	"time"
)

// DoseEvent es una toma registrada. Inmutable una vez creada.
type DoseEvent struct {
	ID         string
	Medication Medication
	Time       time.Time // precisión de milisegundos
}

// ElapsedState es lo que se muestra para un medicamento.
// Hours/Minutes solo tienen sentido con Kind == StateElapsed.
type ElapsedState struct {
	Kind    StateKind
	Hours   int
	Minutes int
}

const (
	placeholderNever   = "—"
	placeholderExpired = ">12h"
)

func (s ElapsedState) String() string {
	switch s.Kind {
	case StateElapsed:
		return fmt.Sprintf("%02d:%02d", s.Hours, s.Minutes)
	case StateExpired:
		return placeholderExpired
	default:
		return placeholderNever
	}
}

// MedicationState es el estado calculado de un slot.
type MedicationState struct {
	Medication Medication
	State      ElapsedState
	LastDose   *time.Time
}

// HistoryEntry es una fila del historial lista para mostrar.
type HistoryEntry struct {
	ID         string
	Medication Medication
	Time       time.Time
	Display    string
}

// View es lo que recibe el renderer después de cada operación.
type View struct {
	GeneratedAt time.Time
	History     []HistoryEntry
	States      []MedicationState
}

// StateOf devuelve el estado del medicamento; Never si no está en la vista.
func (v View) StateOf(m Medication) ElapsedState {
	for _, s := range v.States {
		if s.Medication == m {
			return s.State
		}
	}
	return ElapsedState{Kind: StateNever}
}
