// Package target resolves the task references users type on the command line.
package target

import (
	"strconv"
	"strings"

	"github.com/slok/tasks/internal/taskstore"
)

// Resolve returns the task ID referenced by a target. A numeric target is an index into
// the view, anything else is taken as a task ID. ok is false when the index is out of
// bounds.
func Resolve(view taskstore.View, target string) (id string, ok bool) {
	target = strings.TrimSpace(target)

	index, err := strconv.Atoi(target)
	if err != nil {
		return target, target != ""
	}

	return view.IDAt(index)
}
