package doses

import (
	"bytes"
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"medication-tracker/internal/platform/logger"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type fakeRecorder struct {
	mu       sync.Mutex
	doses    map[string]int
	loads    int
	persists map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{doses: map[string]int{}, persists: map[string]int{}}
}

func (r *fakeRecorder) DoseRecorded(m string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doses[m]++
}

func (r *fakeRecorder) LoadFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
}

func (r *fakeRecorder) PersistFailed(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persists[op]++
}

type recordingRenderer struct {
	views []View
}

func (r *recordingRenderer) Render(_ context.Context, v View) {
	r.views = append(r.views, v)
}

func (r *recordingRenderer) last() View {
	return r.views[len(r.views)-1]
}

func bufferLogger() (logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf}), &buf
}
