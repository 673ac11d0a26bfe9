package memory

import (
	"context"
	"strings"
	"sync"

	"medication-tracker/internal/ports/kvstore"
)

// kvStore guarda los valores en memoria del proceso (modo dev, se pierde al reiniciar).
type kvStore struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewKVStore() kvstore.Store {
	return &kvStore{
		byKey: make(map[string][]byte),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return nil, kvstore.ErrNotFound
	}
	// copia para que el caller no mute el valor guardado
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errKeyRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.byKey[key] = v
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byKey, key)
	return nil
}
