package taskstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/slok/tasks/internal/model"
)

// wireTask is the persisted representation of a task. The field order is part
// of the format.
type wireTask struct {
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	State    string  `json:"state"`
	Deadline *string `json:"deadline"`
}

// EncodeTasks serializes a task collection into its persisted JSON form.
func EncodeTasks(tasks []model.Task) (string, error) {
	wts := make([]wireTask, 0, len(tasks))
	for _, t := range tasks {
		wts = append(wts, wireTask{
			Title:    t.Title,
			Summary:  t.Summary,
			State:    string(t.State),
			Deadline: t.Deadline,
		})
	}

	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wts); err != nil {
		return "", fmt.Errorf("could not encode tasks: %w", err)
	}

	return string(bytes.TrimSuffix(b.Bytes(), []byte("\n"))), nil
}

// DecodeTasks parses a persisted JSON task collection. A JSON null decodes into a
// nil collection. The returned tasks don't have IDs.
func DecodeTasks(data string) ([]model.Task, error) {
	var wts []wireTask
	if err := json.Unmarshal([]byte(data), &wts); err != nil {
		return nil, fmt.Errorf("could not decode tasks: %w", err)
	}
	if wts == nil {
		return nil, nil
	}

	tasks := make([]model.Task, 0, len(wts))
	for _, wt := range wts {
		t := model.Task{
			Title:    wt.Title,
			Summary:  wt.Summary,
			State:    model.TaskState(wt.State),
			Deadline: wt.Deadline,
		}
		if t.State == "" {
			t.State = model.TaskStateNotDone
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
