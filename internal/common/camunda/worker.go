// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// JobHandler is implemented by every worker in internal/workers.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
	Register() error
	Close()
	GetTaskType() string
	IsEnabled() bool
	HealthCheck(ctx context.Context) error
}

// WorkerGroup registers and shuts down a set of job handlers as a unit.
type WorkerGroup struct {
	handlers []JobHandler
}

func NewWorkerGroup(handlers ...JobHandler) *WorkerGroup {
	return &WorkerGroup{handlers: handlers}
}

// Register opens a job worker for every enabled handler. The first failure
// aborts registration; already-registered handlers stay open and should be
// closed by the caller.
func (g *WorkerGroup) Register() error {
	for _, h := range g.handlers {
		if err := h.Register(); err != nil {
			return fmt.Errorf("failed to register worker %s: %w", h.GetTaskType(), err)
		}
	}
	return nil
}

// TaskTypes returns the task types of the enabled handlers.
func (g *WorkerGroup) TaskTypes() []string {
	var types []string
	for _, h := range g.handlers {
		if h.IsEnabled() {
			types = append(types, h.GetTaskType())
		}
	}
	return types
}

// HealthCheck fails if any enabled handler reports unhealthy.
func (g *WorkerGroup) HealthCheck(ctx context.Context) error {
	for _, h := range g.handlers {
		if !h.IsEnabled() {
			continue
		}
		if err := h.HealthCheck(ctx); err != nil {
			return fmt.Errorf("worker %s unhealthy: %w", h.GetTaskType(), err)
		}
	}
	return nil
}

// Close shuts down every handler's job worker.
func (g *WorkerGroup) Close() {
	for _, h := range g.handlers {
		h.Close()
	}
}
