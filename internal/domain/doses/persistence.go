package doses

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/kvstore"
)

const (
	// StorageKey es la única key que usa el tracker (misma que la versión web).
	StorageKey = "medicationTrackerLog"

	schemaVersion = 1
)

// Persistence guarda snapshots del log completo. No retiene copias.
type Persistence interface {
	Load(ctx context.Context) []DoseEvent
	Save(ctx context.Context, entries []DoseEvent) error
	Clear(ctx context.Context)
}

// Recorder recibe contadores de operaciones; ver internal/metrics.
type Recorder interface {
	DoseRecorded(medication string)
	LoadFailed()
	PersistFailed(op string)
}

type nopRecorder struct{}

func (nopRecorder) DoseRecorded(string)  {}
func (nopRecorder) LoadFailed()          {}
func (nopRecorder) PersistFailed(string) {}

// payload v1: {"version":1,"entries":[{"id":"…","medication":"Paracetamol","time":1700000000000}]}
type payload struct {
	Version int            `json:"version"`
	Entries []payloadEntry `json:"entries"`
}

type payloadEntry struct {
	ID         string     `json:"id,omitempty"`
	Medication Medication `json:"medication"`
	Time       int64      `json:"time"` // epoch ms
}

type kvPersistence struct {
	store   kvstore.Store
	log     logger.Logger
	metrics Recorder
}

func NewKVPersistence(store kvstore.Store, log logger.Logger, metrics Recorder) Persistence {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &kvPersistence{
		store:   store,
		log:     log.With(map[string]any{"component": "persistence", "key": StorageKey}),
		metrics: metrics,
	}
}

func (p *kvPersistence) Load(ctx context.Context) []DoseEvent {
	raw, err := p.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return []DoseEvent{}
		}
		p.loadFailed(&LoadError{Key: StorageKey, Err: err})
		return []DoseEvent{}
	}

	entries, err := decodePayload(raw)
	if err != nil {
		p.loadFailed(&LoadError{Key: StorageKey, Err: err})
		return []DoseEvent{}
	}
	return entries
}

func (p *kvPersistence) Save(ctx context.Context, entries []DoseEvent) error {
	raw, err := encodePayload(entries)
	if err == nil {
		err = p.store.Set(ctx, StorageKey, raw)
	}
	if err != nil {
		perr := &PersistError{Op: "save", Key: StorageKey, Err: err}
		p.metrics.PersistFailed(perr.Op)
		p.log.Error("could not save dose log", map[string]any{"error": perr, "entries": len(entries)})
		return perr
	}
	return nil
}

func (p *kvPersistence) Clear(ctx context.Context) {
	if err := p.store.Delete(ctx, StorageKey); err != nil {
		perr := &PersistError{Op: "clear", Key: StorageKey, Err: err}
		p.metrics.PersistFailed(perr.Op)
		p.log.Error("could not clear dose log", map[string]any{"error": perr})
	}
}

func (p *kvPersistence) loadFailed(err *LoadError) {
	p.metrics.LoadFailed()
	p.log.Error("could not load dose log, starting empty", map[string]any{"error": err})
}

func encodePayload(entries []DoseEvent) ([]byte, error) {
	out := payload{
		Version: schemaVersion,
		Entries: make([]payloadEntry, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, payloadEntry{
			ID:         e.ID,
			Medication: e.Medication,
			Time:       e.Time.UnixMilli(),
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return b, nil
}

// decodePayload acepta v1 y el formato viejo (array suelto sin versión),
// que se migra al vuelo. Cualquier entrada inválida invalida todo el payload.
func decodePayload(raw []byte) ([]DoseEvent, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty payload")
	}

	var entries []payloadEntry
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("decode legacy payload: %w", err)
		}
	} else {
		var in payload
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		if in.Version != schemaVersion {
			return nil, fmt.Errorf("unsupported schema version %d", in.Version)
		}
		entries = in.Entries
	}

	out := make([]DoseEvent, 0, len(entries))
	for i, e := range entries {
		if !e.Medication.Valid() {
			return nil, fmt.Errorf("entry %d: %w", i, invalidMedication(string(e.Medication)))
		}
		if e.Time <= 0 {
			return nil, fmt.Errorf("entry %d: invalid time %d", i, e.Time)
		}
		out = append(out, DoseEvent{
			ID:         e.ID,
			Medication: e.Medication,
			Time:       time.UnixMilli(e.Time),
		})
	}
	return out, nil
}
