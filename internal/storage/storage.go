package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound reports that no blob exists under the requested key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a keyed blob store. Each collection in the system is persisted as
// a single JSON document under its own key, and every mutation is a full
// read-modify-write of that document.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Open builds a Store from a backend name. Supported kinds are "memory",
// "file" and "redis".
func Open(kind, dir, redisAddr string) (Store, error) {
	switch kind {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFileStore(dir), nil
	case "redis":
		return NewRedis(redisAddr), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
