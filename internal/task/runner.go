package task

import (
	"log"
	"sync"
)

// Runner accepts fire-and-forget work. The sync orchestrator depends only on
// this capability, not on any particular scheduler.
type Runner interface {
	Submit(fn func())
}

// GoRunner executes each submitted task on its own goroutine and tracks
// completion so the process can drain in-flight work on shutdown.
type GoRunner struct {
	wg sync.WaitGroup
}

func NewGoRunner() *GoRunner {
	return &GoRunner{}
}

func (r *GoRunner) Submit(fn func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("ERROR [task.Runner] background task panicked: %v", rec)
			}
		}()
		fn()
	}()
}

// Wait blocks until all submitted tasks have finished.
func (r *GoRunner) Wait() {
	r.wg.Wait()
}
