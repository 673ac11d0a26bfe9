package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound se devuelve cuando la key no existe en el store.
var ErrNotFound = errors.New("kvstore: key not found")

// Store es la capacidad opaca de almacenamiento clave-valor.
// Delete sobre una key inexistente no es error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
