package doses

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"medication-tracker/internal/platform/logger"
)

// Renderer consume la vista después de cada operación. Se llama con el
// lock del servicio tomado: no debe volver a llamar al Service.
type Renderer interface {
	Render(ctx context.Context, v View)
}

type Options struct {
	Clock    clockwork.Clock
	Renderer Renderer
	Location *time.Location // para los timestamps del historial; default time.Local
	Logger   logger.Logger
	Metrics  Recorder
}

// Service es dueño del único DoseLog. Todas las operaciones se serializan
// con mu, así el ticker nunca corre en medio de un record/clear.
type Service struct {
	mu sync.Mutex

	log         *DoseLog
	persistence Persistence

	clock    clockwork.Clock
	renderer Renderer
	loc      *time.Location
	logger   logger.Logger
	metrics  Recorder
}

func NewService(persistence Persistence, opts Options) *Service {
	s := &Service{
		log:         NewDoseLog(nil),
		persistence: persistence,
		clock:       opts.Clock,
		renderer:    opts.Renderer,
		loc:         opts.Location,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	if s.metrics == nil {
		s.metrics = nopRecorder{}
	}
	s.logger = s.logger.With(map[string]any{"component": "tracker"})
	return s
}

// Initialize carga el log persistido (vacío si falta o está corrupto).
func (s *Service) Initialize(ctx context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = NewDoseLog(s.persistence.Load(ctx))
	s.logger.Info("dose log loaded", map[string]any{"entries": s.log.Len()})

	return s.emit(ctx, s.clock.Now())
}

// RecordDose registra una toma ahora y persiste el log completo.
// Si falla la persistencia la toma queda igual en memoria; el único error
// que devuelve es ErrInvalidMedication.
func (s *Service) RecordDose(ctx context.Context, m Medication) (DoseEvent, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	e, err := s.log.Record(m, now)
	if err != nil {
		s.logger.Error("rejected dose for unknown medication", map[string]any{"medication": string(m)})
		return DoseEvent{}, View{}, err
	}
	s.metrics.DoseRecorded(string(m))

	if err := s.persistence.Save(ctx, s.log.All()); err != nil {
		s.logger.Warn("dose kept in memory only", map[string]any{"dose_id": e.ID})
	}

	s.logger.Debug("dose recorded", map[string]any{"dose_id": e.ID, "medication": string(m)})
	return e, s.emit(ctx, now), nil
}

// Tick recalcula ambos estados contra now sin tocar el log.
func (s *Service) Tick(ctx context.Context, now time.Time) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.emit(ctx, now)
}

// ClearAll borra todo el historial. La confirmación es responsabilidad del caller.
func (s *Service) ClearAll(ctx context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := s.log.Len()
	s.log.Clear()
	s.persistence.Clear(ctx)

	s.logger.Info("dose log cleared", map[string]any{"entries": cleared})
	return s.emit(ctx, s.clock.Now())
}

// View devuelve la vista actual sin emitirla al renderer.
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buildView(s.clock.Now())
}

// MostRecent expone la última toma de m.
func (s *Service) MostRecent(m Medication) (DoseEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.log.MostRecent(m)
}

func (s *Service) emit(ctx context.Context, now time.Time) View {
	v := s.buildView(now)
	if s.renderer != nil {
		s.renderer.Render(ctx, v)
	}
	return v
}

// buildView recalcula siempre los dos medicamentos, no solo el que cambió.
func (s *Service) buildView(now time.Time) View {
	entries := s.log.All()

	history := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		history = append(history, HistoryEntry{
			ID:         e.ID,
			Medication: e.Medication,
			Time:       e.Time,
			Display:    e.Time.In(s.loc).Format(time.DateTime),
		})
	}

	states := make([]MedicationState, 0, len(Medications))
	for _, m := range Medications {
		st := MedicationState{Medication: m}
		if last, ok := s.log.MostRecent(m); ok {
			t := last.Time
			st.LastDose = &t
		}
		st.State = ElapsedDisplay(st.LastDose, now)
		states = append(states, st)
	}

	return View{
		GeneratedAt: now,
		History:     history,
		States:      states,
	}
}
