package doses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/tracker", getTrackerHandler(svc))

	r.Route("/doses", func(dr chi.Router) {
		// Borrar historial (requiere confirm=true)
		dr.Post("/clear", clearDosesHandler(svc))

		// Registrar una toma
		dr.Post("/{medication}", recordDoseHandler(svc))
	})
}

// stateResponse es el contador de un medicamento.
type stateResponse struct {
	Medication Medication `json:"medication" enums:"Paracetamol,Ibuprofen"`
	State      StateKind  `json:"state" enums:"never,elapsed,expired"`
	Display    string     `json:"display"` // "—", "HH:MM" o ">12h"
	LastDoseAt *time.Time `json:"last_dose_at,omitempty"`
}

// historyEntryResponse es una fila del historial, más reciente primero.
type historyEntryResponse struct {
	ID         string     `json:"id"`
	Medication Medication `json:"medication"`
	Time       time.Time  `json:"time"`
	TimeMS     int64      `json:"time_ms"`
	Display    string     `json:"display"`
}

// viewResponse es la vista completa: contadores + historial.
type viewResponse struct {
	GeneratedAt time.Time              `json:"generated_at"`
	States      []stateResponse        `json:"states"`
	History     []historyEntryResponse `json:"history"`
}

// doseEventResponse es la toma recién registrada.
type doseEventResponse struct {
	ID         string     `json:"id"`
	Medication Medication `json:"medication"`
	Time       time.Time  `json:"time"`
	TimeMS     int64      `json:"time_ms"`
}

type recordDoseResponse struct {
	Event doseEventResponse `json:"event"`
	View  viewResponse      `json:"view"`
}

// getTrackerHandler godoc
// @Summary Ver estado del tracker
// @Description Devuelve el tiempo transcurrido desde la última toma de cada medicamento y el historial completo (más reciente primero).
// @Tags doses
// @Produce json
// @Success 200 {object} viewResponse
// @Router /tracker [get]
func getTrackerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toViewResponse(svc.View()))
	}
}

// recordDoseHandler godoc
// @Summary Registrar una toma
// @Description Registra una toma del medicamento con la hora actual, persiste el historial y devuelve la vista actualizada.
// @Tags doses
// @Produce json
// @Param medication path string true "Medicamento" Enums(Paracetamol, Ibuprofen)
// @Success 201 {object} recordDoseResponse
// @Failure 400 {string} string "unknown medication"
// @Router /doses/{medication} [post]
func recordDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMedication(chi.URLParam(r, "medication"))
		if err != nil {
			http.Error(w, "unknown medication", http.StatusBadRequest)
			return
		}

		e, v, err := svc.RecordDose(r.Context(), m)
		if err != nil {
			if errors.Is(err, ErrInvalidMedication) {
				http.Error(w, "unknown medication", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, recordDoseResponse{
			Event: doseEventResponse{
				ID:         e.ID,
				Medication: e.Medication,
				Time:       e.Time,
				TimeMS:     e.Time.UnixMilli(),
			},
			View: toViewResponse(v),
		})
	}
}

// clearDosesHandler godoc
// @Summary Borrar historial
// @Description Borra todas las tomas registradas. No se puede deshacer, por eso exige `confirm=true`.
// @Tags doses
// @Produce json
// @Param confirm query bool true "Confirmación explícita"
// @Success 200 {object} viewResponse
// @Failure 400 {string} string "confirmation required"
// @Router /doses/clear [post]
func clearDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirmed, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("confirm")))
		if !confirmed {
			http.Error(w, "confirmation required", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toViewResponse(svc.ClearAll(r.Context())))
	}
}

func toViewResponse(v View) viewResponse {
	out := viewResponse{
		GeneratedAt: v.GeneratedAt,
		States:      make([]stateResponse, 0, len(v.States)),
		History:     make([]historyEntryResponse, 0, len(v.History)),
	}
	for _, s := range v.States {
		out.States = append(out.States, stateResponse{
			Medication: s.Medication,
			State:      s.State.Kind,
			Display:    s.State.String(),
			LastDoseAt: s.LastDose,
		})
	}
	for _, h := range v.History {
		out.History = append(out.History, historyEntryResponse{
			ID:         h.ID,
			Medication: h.Medication,
			Time:       h.Time,
			TimeMS:     h.Time.UnixMilli(),
			Display:    h.Display,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
