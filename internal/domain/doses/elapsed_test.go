package doses

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedDisplay(t *testing.T) {
	base := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		delta time.Duration
		want  ElapsedState
		shown string
	}{
		{"same instant", 0, ElapsedState{Kind: StateElapsed}, "00:00"},
		{"under a minute", 59 * time.Second, ElapsedState{Kind: StateElapsed}, "00:00"},
		{"one minute", time.Minute, ElapsedState{Kind: StateElapsed, Minutes: 1}, "00:01"},
		{"hour and five", 65 * time.Minute, ElapsedState{Kind: StateElapsed, Hours: 1, Minutes: 5}, "01:05"},
		{"just below 12h", 12*time.Hour - time.Millisecond, ElapsedState{Kind: StateElapsed, Hours: 11, Minutes: 59}, "11:59"},
		{"exactly 12h", 12 * time.Hour, ElapsedState{Kind: StateElapsed, Hours: 12}, "12:00"},
		{"12h plus 1ms", 12*time.Hour + time.Millisecond, ElapsedState{Kind: StateExpired}, ">12h"},
		{"days later", 72 * time.Hour, ElapsedState{Kind: StateExpired}, ">12h"},
		{"clock skew", -5 * time.Minute, ElapsedState{Kind: StateElapsed}, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElapsedDisplay(&base, base.Add(tt.delta))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.shown, got.String())
		})
	}
}

func TestElapsedDisplay_NeverDosed(t *testing.T) {
	for _, now := range []time.Time{{}, time.Unix(0, 0), time.Now()} {
		got := ElapsedDisplay(nil, now)
		assert.Equal(t, StateNever, got.Kind)
		assert.Equal(t, "—", got.String())
	}
}
