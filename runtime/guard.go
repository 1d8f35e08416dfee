// Package runtime handles the infrastructure-level concerns of the chat
// node: the state guard, connected-participant bookkeeping, and loading
// of embedded resources. It contains no domain rules.
package runtime

import (
	"context"
	"time"

	"music-chat/errors"
)

// Guard is the single coarse-grained lock serializing every state
// mutation and every snapshot read. It is a one-slot semaphore instead
// of a sync.Mutex so acquisition can be bounded by a context or a
// timeout: under contention a public call fails fast with
// ErrGuardTimeout instead of blocking indefinitely.
//
// Hold times are bounded by the in-memory mutation cost; no I/O ever
// runs while the guard is held.
type Guard struct {
	slot chan struct{}
}

func NewGuard() *Guard {
	return &Guard{slot: make(chan struct{}, 1)}
}

// Acquire blocks until the guard is free, the context is canceled, or
// the timeout elapses. A non-positive timeout means the context alone
// bounds the wait.
func (g *Guard) Acquire(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	select {
	case g.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return errors.ErrGuardTimeout
	}
}

// Release must only be called after a successful Acquire.
func (g *Guard) Release() {
	select {
	case <-g.slot:
	default:
		panic("guard: release without acquire")
	}
}
