package lib_test

import (
	"context"
	"fmt"

	"github.com/slok/tasks/pkg/lib"
)

func Example() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{Ephemeral: true})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	task, err := client.CreateTask(ctx, lib.TaskDraft{Title: "Buy milk", Deadline: "2024-06-01"})
	if err != nil {
		panic(err)
	}

	_, err = client.UpdateTask(ctx, task.ID, lib.TaskDraft{Title: "Buy milk", State: lib.TaskStateDone})
	if err != nil {
		panic(err)
	}

	tasks, err := client.ListTasks(ctx, nil)
	if err != nil {
		panic(err)
	}

	for i, t := range tasks {
		fmt.Printf("%d: %s [%s]\n", i, t.Title, t.State)
	}

	// Output:
	// 0: Buy milk [Done]
}

func ExampleClient_ListTasks() {
	ctx := context.Background()

	client, _ := lib.New(ctx, lib.Config{Ephemeral: true})
	defer client.Close()

	_, _ = client.CreateTask(ctx, lib.TaskDraft{Title: "Later", Deadline: "2024-09-01"})
	_, _ = client.CreateTask(ctx, lib.TaskDraft{Title: "Someday"})
	_, _ = client.CreateTask(ctx, lib.TaskDraft{Title: "Soon", Deadline: "2024-02-01"})

	tasks, _ := client.ListTasks(ctx, &lib.ListTasksOpts{SortBy: lib.SortByDeadline})
	for _, t := range tasks {
		fmt.Println(t.Title)
	}

	// Output:
	// Soon
	// Later
	// Someday
}
