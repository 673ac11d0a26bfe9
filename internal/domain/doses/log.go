package doses

import (
	"time"

	"github.com/google/uuid"
)

// DoseLog mantiene las tomas ordenadas de más reciente a más antigua.
// Se inserta siempre al principio; no reordena, no deduplica, no descarta.
// No es seguro para uso concurrente: lo protege Service.
type DoseLog struct {
	entries []DoseEvent
}

func NewDoseLog(entries []DoseEvent) *DoseLog {
	l := &DoseLog{}
	if len(entries) > 0 {
		l.entries = append(make([]DoseEvent, 0, len(entries)), entries...)
	}
	return l
}

// Record crea la toma con timestamp at (truncado a ms) y la pone al principio.
func (l *DoseLog) Record(m Medication, at time.Time) (DoseEvent, error) {
	if !m.Valid() {
		return DoseEvent{}, invalidMedication(string(m))
	}

	e := DoseEvent{
		ID:         uuid.NewString(),
		Medication: m,
		Time:       time.UnixMilli(at.UnixMilli()),
	}

	l.entries = append(l.entries, DoseEvent{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = e
	return e, nil
}

// MostRecent recorre desde el principio: la primera coincidencia es la última toma.
func (l *DoseLog) MostRecent(m Medication) (DoseEvent, bool) {
	for _, e := range l.entries {
		if e.Medication == m {
			return e, true
		}
	}
	return DoseEvent{}, false
}

// All devuelve una copia, más reciente primero.
func (l *DoseLog) All() []DoseEvent {
	out := make([]DoseEvent, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *DoseLog) Len() int { return len(l.entries) }

func (l *DoseLog) Clear() {
	l.entries = nil
}
