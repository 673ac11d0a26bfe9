package doses

import "strings"

// Medication es uno de los dos medicamentos que sigue el tracker.
// @Enum Paracetamol, Ibuprofen
type Medication string

const (
	MedicationParacetamol Medication = "Paracetamol"
	MedicationIbuprofen   Medication = "Ibuprofen"
)

// Medications en el orden en que se muestran.
var Medications = []Medication{MedicationParacetamol, MedicationIbuprofen}

func (m Medication) Valid() bool {
	return m == MedicationParacetamol || m == MedicationIbuprofen
}

// ParseMedication acepta el identificador sin distinguir mayúsculas.
func ParseMedication(s string) (Medication, error) {
	s = strings.TrimSpace(s)
	for _, m := range Medications {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", invalidMedication(s)
}

// StateKind clasifica el tiempo desde la última dosis.
type StateKind string

const (
	StateNever   StateKind = "never"
	StateElapsed StateKind = "elapsed"
	StateExpired StateKind = "expired"
)
