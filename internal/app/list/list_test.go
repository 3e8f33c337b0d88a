package list_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasks/internal/app/list"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/storage/memory"
	"github.com/slok/tasks/internal/taskstore"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config func(t *testing.T) list.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: func(t *testing.T) list.ServiceConfig {
				return list.ServiceConfig{Store: newStore(t), Logger: log.Noop}
			},
		},
		"missing store should fail": {
			config: func(t *testing.T) list.ServiceConfig { return list.ServiceConfig{Logger: log.Noop} },
			expErr: true,
		},
		"nil logger should default to noop": {
			config: func(t *testing.T) list.ServiceConfig { return list.ServiceConfig{Store: newStore(t)} },
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := list.NewService(test.config(t))
			if test.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newStore(t *testing.T) *taskstore.Store {
	t.Helper()
	kv, err := memory.NewKV(memory.KVConfig{})
	require.NoError(t, err)
	s, err := taskstore.NewStore(taskstore.StoreConfig{KV: kv})
	require.NoError(t, err)

	for _, d := range []model.Draft{
		{Title: "a", State: model.TaskStateNotDone, Deadline: "2024-05-01"},
		{Title: "b", State: model.TaskStateDone, Deadline: "2024-01-01"},
		{Title: "c", State: model.TaskStateDoing},
	} {
		_, err := s.Create(context.Background(), d)
		require.NoError(t, err)
	}
	return s
}

func TestService_Run(t *testing.T) {
	tests := map[string]struct {
		req       list.Request
		expTitles []string
		expErr    bool
	}{
		"list all tasks without options": {
			req:       list.Request{},
			expTitles: []string{"a", "b", "c"},
		},
		"filter by state": {
			req:       list.Request{ViewOptions: model.ViewOptions{FilterState: model.TaskStateDoing}},
			expTitles: []string{"c"},
		},
		"sort by deadline": {
			req:       list.Request{ViewOptions: model.ViewOptions{SortKey: model.SortKeyDeadline}},
			expTitles: []string{"b", "a", "c"},
		},
		"unknown state filter should fail": {
			req:    list.Request{ViewOptions: model.ViewOptions{FilterState: "Someday"}},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			svc, err := list.NewService(list.ServiceConfig{Store: newStore(t)})
			require.NoError(err)

			view, err := svc.Run(context.Background(), test.req)
			if test.expErr {
				assert.ErrorIs(err, model.ErrNotValid)
				return
			}
			require.NoError(err)

			gotTitles := []string{}
			for _, t := range view.All() {
				gotTitles = append(gotTitles, t.Title)
			}
			assert.Equal(test.expTitles, gotTitles)
		})
	}
}
