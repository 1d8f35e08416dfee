package runtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"music-chat/errors"
)

func Test_Acquire_Release(t *testing.T) {
	req := require.New(t)
	guard := NewGuard()

	req.NoError(guard.Acquire(context.Background(), time.Second))
	guard.Release()
	req.NoError(guard.Acquire(context.Background(), time.Second))
	guard.Release()
}

func Test_Acquire_Times_Out_Under_Contention(t *testing.T) {
	req := require.New(t)
	guard := NewGuard()

	req.NoError(guard.Acquire(context.Background(), time.Second))
	defer guard.Release()

	err := guard.Acquire(context.Background(), 20*time.Millisecond)
	req.ErrorIs(err, errors.ErrGuardTimeout)
}

func Test_Acquire_Honors_Context_Cancellation(t *testing.T) {
	req := require.New(t)
	guard := NewGuard()

	req.NoError(guard.Acquire(context.Background(), time.Second))
	defer guard.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := guard.Acquire(ctx, 0)
	req.ErrorIs(err, errors.ErrGuardTimeout)
}

func Test_Guard_Serializes_Critical_Sections(t *testing.T) {
	req := require.New(t)
	guard := NewGuard()

	const goroutines = 50
	const iterations = 20
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if err := guard.Acquire(context.Background(), time.Second); err != nil {
					return
				}
				counter++
				guard.Release()
			}
		}()
	}
	wg.Wait()
	req.Equal(goroutines*iterations, counter)
}

func Test_Release_Without_Acquire_Panics(t *testing.T) {
	req := require.New(t)
	guard := NewGuard()

	req.Panics(func() { guard.Release() })
}
