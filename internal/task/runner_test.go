package task

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoRunner_RunsSubmittedTasks(t *testing.T) {
	runner := NewGoRunner()

	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		runner.Submit(func() {
			ran.Add(1)
		})
	}
	runner.Wait()

	assert.Equal(t, int32(10), ran.Load())
}

func TestGoRunner_RecoversPanics(t *testing.T) {
	runner := NewGoRunner()

	var ran atomic.Int32
	runner.Submit(func() {
		panic("boom")
	})
	runner.Submit(func() {
		ran.Add(1)
	})
	runner.Wait()

	assert.Equal(t, int32(1), ran.Load())
}
