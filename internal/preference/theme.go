package preference

import (
	"context"
	"fmt"

	"github.com/slok/tasks/internal/conventions"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/storage"
)

// ThemeStoreConfig is the configuration for the theme store.
type ThemeStoreConfig struct {
	KV     storage.KV
	Key    string
	Logger log.Logger
}

func (c *ThemeStoreConfig) defaults() error {
	if c.KV == nil {
		return fmt.Errorf("kv is required")
	}
	if c.Key == "" {
		c.Key = conventions.ThemeKey
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "preference.ThemeStore"})
	return nil
}

// ThemeStore persists the UI color scheme preference.
type ThemeStore struct {
	kv     storage.KV
	key    string
	logger log.Logger
}

// NewThemeStore returns a new theme store.
func NewThemeStore(cfg ThemeStoreConfig) (*ThemeStore, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &ThemeStore{
		kv:     cfg.KV,
		key:    cfg.Key,
		logger: cfg.Logger,
	}, nil
}

// Get returns the stored theme, light when missing or unknown.
func (t *ThemeStore) Get(ctx context.Context) (model.Theme, error) {
	v, ok, err := t.kv.Get(ctx, t.key)
	if err != nil {
		return "", fmt.Errorf("could not read theme: %w", err)
	}
	if !ok {
		return model.ThemeLight, nil
	}

	theme := model.Theme(v)
	if !theme.Valid() {
		t.logger.Warningf("Unknown stored theme %q, using %s", v, model.ThemeLight)
		return model.ThemeLight, nil
	}

	return theme, nil
}

// Set stores the theme, unknown themes are rejected with model.ErrNotValid.
func (t *ThemeStore) Set(ctx context.Context, theme model.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q: %w", theme, model.ErrNotValid)
	}

	if err := t.kv.Set(ctx, t.key, string(theme)); err != nil {
		return fmt.Errorf("could not save theme: %w", err)
	}
	t.logger.Debugf("Theme set to %s", theme)

	return nil
}

// Toggle switches between light and dark and returns the new theme.
func (t *ThemeStore) Toggle(ctx context.Context) (model.Theme, error) {
	current, err := t.Get(ctx)
	if err != nil {
		return "", err
	}

	next := current.Toggled()
	if err := t.Set(ctx, next); err != nil {
		return "", err
	}

	return next, nil
}
