package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/tasks/internal/log"
)

// KVConfig is the configuration for the memory KV.
type KVConfig struct {
	Logger log.Logger
}

func (c *KVConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// KV is an in-memory implementation of storage.KV.
type KV struct {
	values map[string]string
	mu     sync.RWMutex
	logger log.Logger
}

// NewKV creates a new memory KV.
func NewKV(cfg KVConfig) (*KV, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &KV{
		values: make(map[string]string),
		logger: cfg.Logger,
	}, nil
}

// Get retrieves the value of a key.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	v, ok := k.values[key]
	return v, ok, nil
}

// Set stores the value of a key.
func (k *KV) Set(ctx context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.values[key] = value
	k.logger.Debugf("Stored key %s (%d bytes)", key, len(value))

	return nil
}
