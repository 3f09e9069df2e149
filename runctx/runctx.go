// Package runctx carries a read-only snapshot of the currently executing
// task run through context.Context. The orchestrator attaches one run
// context per execution; code running inside the task reads it back without
// the run being passed explicitly.
package runctx

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TaskRun describes one execution instance of a task.
type TaskRun struct {
	ID        uuid.UUID
	Name      string
	Tags      []string
	RunCount  int
	StartTime time.Time
}

// Task describes the task definition a run was created from.
type Task struct {
	Name string
}

// RunContext is the ambient state of one task run. It is created and owned
// by the orchestrator; consumers only read from it.
type RunContext struct {
	TaskRun    TaskRun
	Task       Task
	Parameters map[string]any

	// Logger is pre-configured with run metadata.
	Logger zerolog.Logger
}

type runContextKey struct{}

// With returns a context carrying rc. A nil rc returns ctx unchanged.
func With(ctx context.Context, rc *RunContext) context.Context {
	if rc == nil {
		return ctx
	}
	return context.WithValue(ctx, runContextKey{}, rc)
}

// FromContext extracts the run context active on ctx.
// Returns (nil, false) when no task run is active.
func FromContext(ctx context.Context) (*RunContext, bool) {
	rc, ok := ctx.Value(runContextKey{}).(*RunContext)
	if !ok || rc == nil {
		return nil, false
	}
	return rc, true
}
