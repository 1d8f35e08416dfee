package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"music-chat/domain/event"
)

type countingWorker struct {
	runs    atomic.Int32
	panics  int32
	done    chan struct{}
	blocked bool
}

func (w *countingWorker) Run(ctx context.Context) error {
	run := w.runs.Add(1)
	if run <= w.panics {
		panic("worker exploded")
	}
	if w.done != nil {
		close(w.done)
	}
	if w.blocked {
		<-ctx.Done()
	}
	return nil
}

func Test_Supervisor_Restarts_Panicking_Worker(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	telemetry := make(chan event.Event, 10)
	sup := NewSupervisor(log, telemetry, 10*time.Millisecond)

	worker := &countingWorker{panics: 2, done: make(chan struct{})}
	sup.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	finished := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(finished)
	}()

	select {
	case <-worker.done:
	case <-time.After(2 * time.Second):
		req.Fail("worker never recovered from its panics")
	}
	req.Equal(int32(3), worker.runs.Load())

	// Each panic emits a restart event for the stats counters.
	req.Len(telemetry, 2)
	evt := <-telemetry
	req.Equal(event.RestartedAfterPanicType, evt.Type)

	select {
	case <-finished:
	case <-time.After(time.Second):
		req.Fail("supervisor did not drain after workers finished")
	}
}

func Test_Supervisor_Stop_Cancels_Blocked_Workers(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	sup := NewSupervisor(log, make(chan event.Event, 1), time.Second)

	worker := &countingWorker{blocked: true, done: make(chan struct{})}
	sup.Add(worker)

	finished := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(finished)
	}()

	// Wait until the worker is actually running before stopping.
	select {
	case <-worker.done:
	case <-time.After(time.Second):
		req.Fail("worker never started")
	}
	sup.Stop()

	select {
	case <-finished:
	case <-time.After(time.Second):
		req.Fail("supervisor did not stop")
	}
}

func Test_Supervisor_Leaves_Finished_Workers_Alone(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	sup := NewSupervisor(log, make(chan event.Event, 1), time.Millisecond)

	worker := &countingWorker{}
	sup.Add(worker)

	finished := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		req.Fail("supervisor did not finish")
	}
	req.Equal(int32(1), worker.runs.Load())
}
