package storage

import (
	"context"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value of a key, ok is false when the key is not set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores the value of a key replacing the previous one.
	Set(ctx context.Context, key, value string) error
}

//go:generate mockery --case underscore --output storagemock --outpkg storagemock --name KV --structname MockKV --filename kv.go
