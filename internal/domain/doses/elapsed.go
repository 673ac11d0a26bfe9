package doses

import "time"

// ExpiryWindow: pasado este tiempo (estricto) se muestra ">12h".
const ExpiryWindow = 12 * time.Hour

// ElapsedDisplay calcula el estado a mostrar para la última toma.
// last == nil significa que nunca se tomó. Un delta negativo (reloj
// desfasado) cuenta como cero. Exactamente 12h todavía es "12:00".
func ElapsedDisplay(last *time.Time, now time.Time) ElapsedState {
	if last == nil {
		return ElapsedState{Kind: StateNever}
	}

	delta := now.Sub(*last)
	if delta < 0 {
		delta = 0
	}
	if delta > ExpiryWindow {
		return ElapsedState{Kind: StateExpired}
	}

	totalMinutes := int(delta / time.Minute)
	return ElapsedState{
		Kind:    StateElapsed,
		Hours:   totalMinutes / 60,
		Minutes: totalMinutes % 60,
	}
}
