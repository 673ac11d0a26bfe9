package render

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medication-tracker/internal/domain/doses"
	"medication-tracker/internal/platform/logger"
)

func TestLogRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogRenderer(logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf}))

	at := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	r.Render(context.Background(), doses.View{
		History: []doses.HistoryEntry{
			{Medication: doses.MedicationParacetamol, Time: at, Display: "2026-01-10 08:00:00"},
		},
		States: []doses.MedicationState{
			{Medication: doses.MedicationParacetamol, State: doses.ElapsedState{Kind: doses.StateElapsed, Hours: 1, Minutes: 5}},
			{Medication: doses.MedicationIbuprofen, State: doses.ElapsedState{Kind: doses.StateNever}},
		},
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "tracker view", entry["msg"])
	assert.Equal(t, "render", entry["component"])
	assert.Equal(t, "01:05", entry["Paracetamol"])
	assert.Equal(t, "—", entry["Ibuprofen"])
	assert.Equal(t, "2026-01-10 08:00:00", entry["last_dose"])
	assert.EqualValues(t, 1, entry["history"])
}

func TestLogRenderer_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogRenderer(nil).Render(context.Background(), doses.View{})
	})
}
