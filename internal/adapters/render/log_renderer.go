package render

import (
	"context"

	"medication-tracker/internal/domain/doses"
	"medication-tracker/internal/platform/logger"
)

// LogRenderer vuelca cada vista al logger. Sirve como consumidor por
// defecto cuando no hay UI conectada (la UI consulta GET /tracker).
type LogRenderer struct {
	log logger.Logger
}

func NewLogRenderer(log logger.Logger) *LogRenderer {
	if log == nil {
		log = logger.Nop()
	}
	return &LogRenderer{log: log.With(map[string]any{"component": "render"})}
}

func (r *LogRenderer) Render(_ context.Context, v doses.View) {
	fields := map[string]any{"history": len(v.History)}
	for _, s := range v.States {
		fields[string(s.Medication)] = s.State.String()
	}
	if len(v.History) > 0 {
		fields["last_dose"] = v.History[0].Display
	}
	r.log.Info("tracker view", fields)
}
