package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/tasks/internal/app/target"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

func TestResolve(t *testing.T) {
	view := taskstore.NewView([]model.Task{
		{ID: "id-a", Title: "a", State: model.TaskStateNotDone},
		{ID: "id-b", Title: "b", State: model.TaskStateDone},
	}, model.ViewOptions{SortKey: model.SortKeyDone})

	tests := map[string]struct {
		target string
		expID  string
		expOK  bool
	}{
		"An index should resolve to the task at the view position.": {
			target: "0",
			expID:  "id-b",
			expOK:  true,
		},
		"An index with spaces should resolve.": {
			target: " 1 ",
			expID:  "id-a",
			expOK:  true,
		},
		"An out of bounds index should not resolve.": {
			target: "2",
			expOK:  false,
		},
		"A negative index should not resolve.": {
			target: "-1",
			expOK:  false,
		},
		"A non numeric target should be used as ID.": {
			target: "01HZZZZZZZZZZZZZZZZZZZZZZA",
			expID:  "01HZZZZZZZZZZZZZZZZZZZZZZA",
			expOK:  true,
		},
		"An empty target should not resolve.": {
			target: "",
			expOK:  false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			gotID, gotOK := target.Resolve(view, test.target)
			assert.Equal(test.expOK, gotOK)
			assert.Equal(test.expID, gotID)
		})
	}
}
