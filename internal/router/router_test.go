package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medication-tracker/internal/adapters/storage/memory"
	"medication-tracker/internal/domain/doses"
	"medication-tracker/internal/metrics"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := doses.NewService(doses.NewKVPersistence(memory.NewKVStore(), nil, m), doses.Options{
		Clock:   clockwork.NewFakeClock(),
		Metrics: m,
	})
	svc.Initialize(context.Background())

	return NewRouter(Options{Tracker: svc, Gatherer: reg})
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestHandler(t), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_MetricsAfterDose(t *testing.T) {
	h := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/doses/Ibuprofen")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `medtracker_doses_recorded_total{medication="Ibuprofen"} 1`)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	rec := serve(newTestHandler(t), http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/doses/{medication}")
}

func TestRouter_TrackerMounted(t *testing.T) {
	rec := serve(newTestHandler(t), http.MethodGet, "/tracker")
	assert.Equal(t, http.StatusOK, rec.Code)
}
