package metrics

import (
	"context"
	"time"
)

// Recorder knows how to record task metrics.
type Recorder interface {
	// ObserveTaskStoreOp records a task store operation.
	ObserveTaskStoreOp(ctx context.Context, op string, success bool, duration time.Duration)
	// SetTaskCount sets the current size of the task collection.
	SetTaskCount(ctx context.Context, n int)
}

// Noop is a recorder that doesn't record anything.
const Noop = noop(0)

type noop int

func (noop) ObserveTaskStoreOp(_ context.Context, _ string, _ bool, _ time.Duration) {}
func (noop) SetTaskCount(_ context.Context, _ int)                                   {}
