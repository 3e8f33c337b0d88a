package io

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// TaskFileRepository loads task drafts from JSON or YAML files.
type TaskFileRepository struct {
	fs fs.FS
}

// NewTaskFileRepository creates a new task file repository.
func NewTaskFileRepository(filesystem fs.FS) *TaskFileRepository {
	return &TaskFileRepository{fs: filesystem}
}

// GetDrafts loads the tasks of a file as validated drafts. The format is selected by the
// file extension: `.json` uses the persisted collection format and `.yaml`/`.yml` the
// TaskFile structure.
func (r *TaskFileRepository) GetDrafts(ctx context.Context, path string) ([]model.Draft, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading tasks file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var drafts []model.Draft
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		tasks, err := taskstore.DecodeTasks(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		for _, t := range tasks {
			drafts = append(drafts, model.DraftFromTask(t))
		}
	case ".yaml", ".yml":
		var tf TaskFile
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		for _, t := range tf.Tasks {
			drafts = append(drafts, t.toModel())
		}
	default:
		return nil, fmt.Errorf("unsupported tasks file extension %q: %w", ext, model.ErrNotValid)
	}

	for i, d := range drafts {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid task %d: %w", i, err)
		}
	}

	return drafts, nil
}

// TaskFile represents the YAML structure of a tasks file.
type TaskFile struct {
	Tasks []TaskEntry `yaml:"tasks"`
}

// TaskEntry represents the YAML structure of a single task.
type TaskEntry struct {
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary,omitempty"`
	State    string `yaml:"state,omitempty"`
	Deadline string `yaml:"deadline,omitempty"`
}

func (e TaskEntry) toModel() model.Draft {
	return model.Draft{
		Title:    e.Title,
		Summary:  e.Summary,
		State:    model.TaskState(e.State),
		Deadline: e.Deadline,
	}
}

func taskEntryFromModel(t model.Task) TaskEntry {
	e := TaskEntry{
		Title:   t.Title,
		Summary: t.Summary,
		State:   string(t.State),
	}
	if t.Deadline != nil {
		e.Deadline = *t.Deadline
	}
	return e
}
