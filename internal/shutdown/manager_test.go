package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"shell-game/internal/logger"
)

func TestShutdownRunsComponentsInReverseOnce(t *testing.T) {
	m := NewManager(logger.Nop())

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	m.Register(record("logger"))
	m.Register(record("window"))

	m.Shutdown()
	m.Shutdown()

	if diff := cmp.Diff([]string{"window", "logger"}, order); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	select {
	case <-m.Done():
	default:
		t.Error("Done not closed")
	}
	if m.Context().Err() == nil {
		t.Error("context not cancelled")
	}
}

func TestShutdownDoesNotWaitForeverOnStuckComponent(t *testing.T) {
	m := NewManager(logger.Nop())
	m.timeout = 20 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	m.Register(Func(func() { <-block }))

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown blocked on a stuck component")
	}
}
