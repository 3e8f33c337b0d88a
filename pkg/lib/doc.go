// Package lib provides a Go SDK for managing the tasks list programmatically.
//
// This package allows applications to create, edit, list and remove tasks
// without shelling out to the tasks CLI binary. It uses the same database as
// the CLI, so both can be used at the same time on the same task list.
//
// # Quick Start
//
// Create a client and manage tasks:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	task, err := client.CreateTask(ctx, lib.TaskDraft{
//	    Title:    "Buy milk",
//	    Deadline: "2024-06-01",
//	})
//
//	client.UpdateTask(ctx, task.ID, lib.TaskDraft{Title: "Buy milk", State: lib.TaskStateDone})
//	client.DeleteTask(ctx, task.ID)
//
// # Listing
//
// [Client.ListTasks] returns a filtered and sorted copy of the list. The
// position of a task in the returned slice is its index in that view:
//
//	done := lib.TaskStateDone
//	tasks, _ := client.ListTasks(ctx, &lib.ListTasksOpts{
//	    State:  &done,
//	    SortBy: lib.SortByDeadline,
//	})
//
// # Theme
//
// The color theme used by the CLI card output is stored with the tasks:
//
//	theme, _ := client.ToggleTheme(ctx)
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: The task does not exist.
//   - [ErrNotValid]: Invalid input (e.g. a task without title or a bad deadline).
//
// # Testing
//
// Use an ephemeral client to write tests without touching the disk:
//
//	client, _ := lib.New(ctx, lib.Config{Ephemeral: true})
//	defer client.Close()
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines.
package lib
