package preference_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/preference"
	"github.com/slok/tasks/internal/storage/memory"
	"github.com/slok/tasks/internal/storage/storagemock"
)

func TestThemeStore(t *testing.T) {
	tests := map[string]struct {
		stored   string
		actions  func(ctx context.Context, t *testing.T, ts *preference.ThemeStore)
		expTheme model.Theme
	}{
		"Missing theme should default to light.": {
			actions:  func(ctx context.Context, t *testing.T, ts *preference.ThemeStore) {},
			expTheme: model.ThemeLight,
		},

		"Unknown stored theme should default to light.": {
			stored:   "solarized",
			actions:  func(ctx context.Context, t *testing.T, ts *preference.ThemeStore) {},
			expTheme: model.ThemeLight,
		},

		"Setting a theme should persist it.": {
			actions: func(ctx context.Context, t *testing.T, ts *preference.ThemeStore) {
				require.NoError(t, ts.Set(ctx, model.ThemeDark))
			},
			expTheme: model.ThemeDark,
		},

		"Setting an unknown theme should fail.": {
			stored: "dark",
			actions: func(ctx context.Context, t *testing.T, ts *preference.ThemeStore) {
				err := ts.Set(ctx, model.Theme("blue"))
				assert.ErrorIs(t, err, model.ErrNotValid)
			},
			expTheme: model.ThemeDark,
		},

		"Toggling should alternate themes.": {
			actions: func(ctx context.Context, t *testing.T, ts *preference.ThemeStore) {
				got, err := ts.Toggle(ctx)
				require.NoError(t, err)
				assert.Equal(t, model.ThemeDark, got)

				got, err = ts.Toggle(ctx)
				require.NoError(t, err)
				assert.Equal(t, model.ThemeLight, got)

				got, err = ts.Toggle(ctx)
				require.NoError(t, err)
				assert.Equal(t, model.ThemeDark, got)
			},
			expTheme: model.ThemeDark,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.TODO()

			kv, err := memory.NewKV(memory.KVConfig{})
			require.NoError(err)
			if test.stored != "" {
				require.NoError(kv.Set(ctx, "mantine-color-scheme", test.stored))
			}

			ts, err := preference.NewThemeStore(preference.ThemeStoreConfig{KV: kv})
			require.NoError(err)

			test.actions(ctx, t, ts)

			gotTheme, err := ts.Get(ctx)
			require.NoError(err)
			assert.Equal(t, test.expTheme, gotTheme)
		})
	}
}

func TestThemeStoreStorageError(t *testing.T) {
	mkv := storagemock.NewMockKV(t)
	mkv.On("Get", mock.Anything, "mantine-color-scheme").Once().Return("", false, errors.New("whatever"))

	ts, err := preference.NewThemeStore(preference.ThemeStoreConfig{KV: mkv})
	require.NoError(t, err)

	_, err = ts.Toggle(context.TODO())
	assert.Error(t, err)
}

func TestThemeStoreStoredKey(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()

	kv, err := memory.NewKV(memory.KVConfig{})
	require.NoError(err)
	ts, err := preference.NewThemeStore(preference.ThemeStoreConfig{KV: kv})
	require.NoError(err)

	require.NoError(ts.Set(ctx, model.ThemeDark))

	v, ok, err := kv.Get(ctx, "mantine-color-scheme")
	require.NoError(err)
	require.True(ok)
	assert.Equal(t, "dark", v)
}
