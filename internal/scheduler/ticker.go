// Package scheduler dispara el tick periódico del tracker.
package scheduler

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"medication-tracker/internal/domain/doses"
	"medication-tracker/internal/platform/logger"
)

// DefaultInterval: los contadores muestran minutos, alcanza con uno por minuto.
const DefaultInterval = 60 * time.Second

// Tickable es lo que se refresca en cada tick (doses.Service lo cumple).
type Tickable interface {
	Tick(ctx context.Context, now time.Time) doses.View
}

type Ticker struct {
	target   Tickable
	clock    clockwork.Clock
	interval time.Duration
	log      logger.Logger
}

func New(target Tickable, clock clockwork.Clock, interval time.Duration, log logger.Logger) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Ticker{
		target:   target,
		clock:    clock,
		interval: interval,
		log:      log.With(map[string]any{"component": "scheduler"}),
	}
}

// Run bloquea hasta que se cancele ctx.
func (t *Ticker) Run(ctx context.Context) error {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	t.log.Info("ticker started", map[string]any{"interval": t.interval.String()})

	for {
		select {
		case <-ctx.Done():
			t.log.Info("ticker stopped", nil)
			return nil
		case now := <-ticker.Chan():
			v := t.target.Tick(ctx, now)
			t.log.Debug("tick", map[string]any{"states": len(v.States)})
		}
	}
}
