package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasks/internal/model"
)

func ptr(s string) *string { return &s }

func TestDraftValidate(t *testing.T) {
	tests := map[string]struct {
		draft  model.Draft
		expErr bool
	}{
		"A draft with only a title should be valid": {
			draft: model.Draft{Title: "Write report"},
		},

		"A complete draft should be valid": {
			draft: model.Draft{
				Title:    "Write report",
				Summary:  "Q1 numbers",
				State:    model.TaskStateDoing,
				Deadline: "2024-03-01",
			},
		},

		"Missing title should fail": {
			draft:  model.Draft{Summary: "something"},
			expErr: true,
		},

		"Unknown state should fail": {
			draft:  model.Draft{Title: "a", State: "Maybe"},
			expErr: true,
		},

		"Wrong deadline format should fail": {
			draft:  model.Draft{Title: "a", Deadline: "01/03/2024"},
			expErr: true,
		},

		"Impossible deadline date should fail": {
			draft:  model.Draft{Title: "a", Deadline: "2024-02-30"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.draft.Validate()

			if test.expErr {
				assert.ErrorIs(t, err, model.ErrNotValid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDraftToTask(t *testing.T) {
	tests := map[string]struct {
		draft   model.Draft
		expTask model.Task
	}{
		"Missing state and deadline should use the defaults": {
			draft:   model.Draft{Title: "Write report"},
			expTask: model.Task{Title: "Write report", State: model.TaskStateNotDone},
		},

		"Set fields should be kept": {
			draft: model.Draft{Title: "a", Summary: "b", State: model.TaskStateDone, Deadline: "2024-01-15"},
			expTask: model.Task{
				Title:    "a",
				Summary:  "b",
				State:    model.TaskStateDone,
				Deadline: ptr("2024-01-15"),
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.draft.ToTask()
			assert.Equal(t, test.expTask, got)
			assert.Equal(t, test.draft.Title, model.DraftFromTask(got).Title)
		})
	}
}

func TestTaskDeadlineDate(t *testing.T) {
	_, ok := model.Task{}.DeadlineDate()
	assert.False(t, ok)

	_, ok = model.Task{Deadline: ptr("not a date")}.DeadlineDate()
	assert.False(t, ok)

	d, ok := model.Task{Deadline: ptr("2024-01-15")}.DeadlineDate()
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 15, d.Day())
}

func TestThemeToggled(t *testing.T) {
	assert.Equal(t, model.ThemeDark, model.ThemeLight.Toggled())
	assert.Equal(t, model.ThemeLight, model.ThemeDark.Toggled())
	assert.True(t, model.ThemeDark.Valid())
	assert.False(t, model.Theme("blue").Valid())
}

func TestHasErrors(t *testing.T) {
	results := []model.CheckResult{
		{ID: "a", Status: model.CheckStatusOK},
		{ID: "b", Status: model.CheckStatusWarning},
	}
	assert.False(t, model.HasErrors(results))
	assert.Equal(t, 1, model.CountStatus(results, model.CheckStatusWarning))

	results = append(results, model.CheckResult{ID: "c", Status: model.CheckStatusError})
	assert.True(t, model.HasErrors(results))
}
