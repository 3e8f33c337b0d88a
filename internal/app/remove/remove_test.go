package remove_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasks/internal/app/remove"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/storage/memory"
	"github.com/slok/tasks/internal/taskstore"
)

func newStore(t *testing.T) *taskstore.Store {
	t.Helper()
	kv, err := memory.NewKV(memory.KVConfig{})
	require.NoError(t, err)
	s, err := taskstore.NewStore(taskstore.StoreConfig{KV: kv})
	require.NoError(t, err)

	for _, d := range []model.Draft{
		{Title: "a", State: model.TaskStateNotDone},
		{Title: "b", State: model.TaskStateDone},
		{Title: "c", State: model.TaskStateNotDone},
	} {
		_, err := s.Create(context.Background(), d)
		require.NoError(t, err)
	}
	return s
}

func TestService_Run(t *testing.T) {
	tests := map[string]struct {
		req        func(tasks []model.Task) remove.Request
		expRemoved string
		expTitles  []string
	}{
		"Removing by index should shift the following tasks.": {
			req:        func(_ []model.Task) remove.Request { return remove.Request{Target: "1"} },
			expRemoved: "b",
			expTitles:  []string{"a", "c"},
		},
		"Removing by view index should use the sorted view.": {
			req: func(_ []model.Task) remove.Request {
				return remove.Request{Target: "0", ViewOptions: model.ViewOptions{SortKey: model.SortKeyDone}}
			},
			expRemoved: "b",
			expTitles:  []string{"a", "c"},
		},
		"Removing by ID should remove the task.": {
			req:        func(tasks []model.Task) remove.Request { return remove.Request{Target: tasks[2].ID} },
			expRemoved: "c",
			expTitles:  []string{"a", "b"},
		},
		"Removing an out of bounds index should be a no-op.": {
			req:       func(_ []model.Task) remove.Request { return remove.Request{Target: "3"} },
			expTitles: []string{"a", "b", "c"},
		},
		"Removing a missing ID should be a no-op.": {
			req:       func(_ []model.Task) remove.Request { return remove.Request{Target: "missing"} },
			expTitles: []string{"a", "b", "c"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)
			ctx := context.Background()

			store := newStore(t)
			svc, err := remove.NewService(remove.ServiceConfig{Store: store})
			require.NoError(err)

			removed, err := svc.Run(ctx, test.req(store.Tasks(ctx)))
			require.NoError(err)
			if test.expRemoved == "" {
				assert.Nil(removed)
			} else if assert.NotNil(removed) {
				assert.Equal(test.expRemoved, removed.Title)
			}

			gotTitles := []string{}
			for _, t := range store.Tasks(ctx) {
				gotTitles = append(gotTitles, t.Title)
			}
			assert.Equal(test.expTitles, gotTitles)
		})
	}
}
