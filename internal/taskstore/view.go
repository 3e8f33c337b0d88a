package taskstore

import (
	"iter"
	"slices"

	"github.com/slok/tasks/internal/model"
)

// View is a filtered and sorted read-only snapshot of the task collection.
// Indexes are positions inside the view, not inside the collection.
type View struct {
	tasks []model.Task
}

// NewView derives a view from a task collection, the collection is not modified.
func NewView(tasks []model.Task, opts model.ViewOptions) View {
	filtered := filterTasks(tasks, opts.FilterState)

	switch opts.SortKey {
	case model.SortKeyNone:
	case model.SortKeyDone, model.SortKeyDoing, model.SortKeyNotDone:
		filtered = partitionByState(filtered, model.TaskState(opts.SortKey))
	case model.SortKeyDeadline:
		slices.SortStableFunc(filtered, compareDeadlines)
	}

	return View{tasks: filtered}
}

// All iterates the view in order, it can be iterated multiple times.
func (v View) All() iter.Seq2[int, model.Task] {
	return func(yield func(int, model.Task) bool) {
		for i, t := range v.tasks {
			if !yield(i, cloneTask(t)) {
				return
			}
		}
	}
}

// Len returns the number of tasks in the view.
func (v View) Len() int { return len(v.tasks) }

// At returns the task at a view index.
func (v View) At(i int) (model.Task, bool) {
	if i < 0 || i >= len(v.tasks) {
		return model.Task{}, false
	}
	return cloneTask(v.tasks[i]), true
}

// IDAt returns the ID of the task at a view index.
func (v View) IDAt(i int) (string, bool) {
	t, ok := v.At(i)
	if !ok {
		return "", false
	}
	return t.ID, true
}

// Tasks returns a copy of the view tasks.
func (v View) Tasks() []model.Task {
	return cloneTasks(v.tasks)
}

func filterTasks(tasks []model.Task, state model.TaskState) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if state == "" || t.State == state {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// partitionByState moves the tasks in a state before the rest, keeping the relative
// order inside both groups.
func partitionByState(tasks []model.Task, state model.TaskState) []model.Task {
	matching := make([]model.Task, 0, len(tasks))
	rest := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.State == state {
			matching = append(matching, t)
		} else {
			rest = append(rest, t)
		}
	}
	return append(matching, rest...)
}

// compareDeadlines orders by ascending deadline, missing or invalid deadlines go last.
func compareDeadlines(a, b model.Task) int {
	da, okA := a.DeadlineDate()
	db, okB := b.DeadlineDate()
	switch {
	case okA && okB:
		return da.Compare(db)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

func cloneTask(t model.Task) model.Task {
	if t.Deadline != nil {
		d := *t.Deadline
		t.Deadline = &d
	}
	return t
}

func cloneTasks(tasks []model.Task) []model.Task {
	cloned := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		cloned = append(cloned, cloneTask(t))
	}
	return cloned
}
